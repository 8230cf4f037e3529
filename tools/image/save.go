package image

import (
	"golang.org/x/net/html"

	"constructor-script-editor/pkg/dom"
)

// SaveRecord reads the live values under root back into the record and
// returns the result. A tree without an image element means the load never
// finished; the record is returned as it was. Fields missing from the tree
// keep their current record values.
func (t *Tool) SaveRecord(root *html.Node) Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	img := dom.Find(root, dom.ByTag("img"))
	if img == nil {
		return t.record.clone()
	}

	rec := t.record
	rec.URL = dom.Attr(img, "src")
	if el := dom.Find(root, dom.ByClass(captionClass)); el != nil {
		rec.Caption = dom.InnerHTML(el)
	}
	if el := dom.Find(root, dom.ByClass(widthClass)); el != nil {
		rec.Width = dom.InnerHTML(el)
	}
	if el := dom.Find(root, dom.ByClass(altClass)); el != nil {
		rec.Alt = dom.InnerHTML(el)
	}
	if el := dom.Find(root, dom.ByClass(licenseClass)); el != nil {
		rec.License = selectedOption(el)
	}
	if el := dom.Find(root, dom.ByClass(linkClass)); el != nil {
		rec.Link = dom.InnerHTML(el)
	}

	t.record = rec
	return rec.clone()
}

// Save implements toolsdk.Tool.
func (t *Tool) Save(root *html.Node) (any, error) {
	return t.SaveRecord(root), nil
}

// selectedOption returns the value of the selected option, falling back to
// the first option the way a select element does.
func selectedOption(sel *html.Node) string {
	var first *html.Node
	for opt := sel.FirstChild; opt != nil; opt = opt.NextSibling {
		if opt.Type != html.ElementNode || opt.Data != "option" {
			continue
		}
		if first == nil {
			first = opt
		}
		if dom.HasAttr(opt, "selected") {
			return dom.Attr(opt, "value")
		}
	}
	return dom.Attr(first, "value")
}
