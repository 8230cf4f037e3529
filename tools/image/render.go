package image

import (
	"strconv"

	"golang.org/x/net/html"

	"constructor-script-editor/pkg/dom"
)

// Class names stamped on the elements the tool owns. The host finds saved
// fields by these classes, so they are part of the persisted-markup shape.
const (
	wrapperClass   = "image-tool"
	preloaderClass = "image-tool__preloader"
	holderClass    = "image-tool__picture"
	imageClass     = "image-tool__picture-img"
	captionClass   = "image-tool__caption"
	widthClass     = "image-tool__width"
	altClass       = "image-tool__alt"
	licenseClass   = "image-tool__license"
	linkClass      = "image-tool__link"
	settingsClass  = "image-tool__settings"
)

// Licenses is the closed set the license selector offers, in order.
var Licenses = []string{"none", "publiczna", "cc2", "cc3", "cc4", "ccs2", "ccs3", "ccs4"}

func validLicense(name string) bool {
	for _, l := range Licenses {
		if l == name {
			return true
		}
	}
	return false
}

// nodeSet caches the elements built by Render. They are mutated for the
// rest of the tool's life, never recreated.
type nodeSet struct {
	wrapper   *html.Node
	preloader *html.Node
	holder    *html.Node
	image     *html.Node
	caption   *html.Node
	width     *html.Node
	alt       *html.Node
	license   *html.Node
	link      *html.Node
}

// fields returns the editable elements in the order they attach.
func (n *nodeSet) fields() []*html.Node {
	return []*html.Node{n.caption, n.width, n.alt, n.license, n.link}
}

// Render returns the block's container element. The container comes back
// holding only the preloader; the image and field elements attach once the
// current source finishes loading.
func (t *Tool) Render() *html.Node {
	t.mu.Lock()
	defer t.mu.Unlock()

	styles := t.Styles()

	wrapper := dom.Element("div", styles.Block, wrapperClass)
	dom.SetAttr(wrapper, "data-tool-id", t.id)

	preloader := dom.Element("div", styles.Loader, preloaderClass)
	wrapper.AppendChild(preloader)

	img := dom.Element("img", imageClass)
	if t.record.URL != "" {
		dom.SetAttr(img, "src", t.record.URL)
	}

	t.nodes = nodeSet{
		wrapper:   wrapper,
		preloader: preloader,
		holder:    dom.Element("div", holderClass),
		image:     img,
		caption:   t.newField(captionClass, "Caption", t.record.Caption),
		width:     t.newField(widthClass, "Width", t.record.Width),
		alt:       t.newField(altClass, "Alt text", t.record.Alt),
		license:   t.newLicenseSelect(t.record.License),
		link:      t.newField(linkClass, "Link", t.record.Link),
	}

	t.restartLoadLocked()
	return wrapper
}

// newField builds one contenteditable element. The read-only flag decides
// whether the user can edit it.
func (t *Tool) newField(class, placeholder, value string) *html.Node {
	el := dom.Element("div", t.Styles().Input, class)
	dom.SetAttr(el, "data-placeholder", placeholder)
	dom.SetAttr(el, "contenteditable", strconv.FormatBool(!t.ReadOnly()))
	if value != "" {
		_ = dom.SetInnerHTML(el, value)
	}
	return el
}

// newLicenseSelect builds the selector over the closed license set, with
// the record's license selected. Unknown values fall back to the first
// option.
func (t *Tool) newLicenseSelect(current string) *html.Node {
	sel := dom.Element("select", t.Styles().Input, licenseClass)
	if t.ReadOnly() {
		dom.SetAttr(sel, "disabled", "")
	}

	if !validLicense(current) {
		current = Licenses[0]
	}
	for _, name := range Licenses {
		opt := dom.Element("option")
		dom.SetAttr(opt, "value", name)
		opt.AppendChild(dom.Text(name))
		if name == current {
			dom.SetAttr(opt, "selected", "")
		}
		sel.AppendChild(opt)
	}
	return sel
}

// attachLocked moves the built elements into the wrapper once a load
// succeeds: image into holder, holder into wrapper, then the fields in
// their fixed order. Repeated completions leave an attached tree as is.
func (t *Tool) attachLocked() {
	n := &t.nodes
	if n.wrapper == nil {
		return
	}

	dom.Detach(n.preloader)
	if n.image.Parent == nil {
		n.holder.AppendChild(n.image)
	}
	if n.holder.Parent == nil {
		n.wrapper.AppendChild(n.holder)
	}
	for _, field := range n.fields() {
		if field.Parent == nil {
			n.wrapper.AppendChild(field)
		}
	}
	t.applyTuneClassesLocked()
}

// mirrorLocked pushes the record into the built elements. The tree is the
// live surface the user edits; programmatic writes land there too.
func (t *Tool) mirrorLocked() {
	n := &t.nodes
	if n.wrapper == nil {
		return
	}

	dom.SetAttr(n.image, "src", t.record.URL)
	_ = dom.SetInnerHTML(n.caption, t.record.Caption)
	_ = dom.SetInnerHTML(n.width, t.record.Width)
	_ = dom.SetInnerHTML(n.alt, t.record.Alt)
	_ = dom.SetInnerHTML(n.link, t.record.Link)
	t.selectLicenseLocked(t.record.License)
}

func (t *Tool) selectLicenseLocked(license string) {
	if !validLicense(license) {
		license = Licenses[0]
	}
	for opt := t.nodes.license.FirstChild; opt != nil; opt = opt.NextSibling {
		if dom.Attr(opt, "value") == license {
			dom.SetAttr(opt, "selected", "")
		} else {
			dom.RemoveAttr(opt, "selected")
		}
	}
}

// RenderSettings returns the settings panel: one toggle per registered
// tune, carrying the tune name as data-tune.
func (t *Tool) RenderSettings() *html.Node {
	t.mu.Lock()
	defer t.mu.Unlock()

	styles := t.Styles()
	panel := dom.Element("div", settingsClass)
	for _, tune := range t.tunes {
		button := dom.Element("div", styles.SettingsButton)
		dom.SetAttr(button, "data-tune", tune.Name)
		dom.SetAttr(button, "title", tune.Name)
		if t.record.Tunes[tune.Name] {
			dom.AddClass(button, styles.SettingsButtonActive)
		}
		panel.AppendChild(button)
	}
	return panel
}
