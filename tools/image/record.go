package image

// DefaultWidth is the width a block gets when none was supplied.
const DefaultWidth = "600"

// Record is one image block's persisted state. Tunes carries the enabled
// visual toggles keyed by tune name.
type Record struct {
	URL     string          `json:"url"`
	Caption string          `json:"caption"`
	Width   string          `json:"width"`
	Alt     string          `json:"alt"`
	License string          `json:"license"`
	Link    string          `json:"link"`
	Tunes   map[string]bool `json:"tunes,omitempty"`
}

// withDefaults fills empty fields with their construction defaults.
func (r Record) withDefaults() Record {
	if r.Width == "" {
		r.Width = DefaultWidth
	}
	return r
}

// clone returns a copy that shares no state with the receiver.
func (r Record) clone() Record {
	r.Tunes = cloneTunes(r.Tunes)
	return r
}

// Patch carries a partial record; nil fields keep their current values.
type Patch struct {
	URL     *string         `json:"url,omitempty"`
	Caption *string         `json:"caption,omitempty"`
	Width   *string         `json:"width,omitempty"`
	Alt     *string         `json:"alt,omitempty"`
	License *string         `json:"license,omitempty"`
	Link    *string         `json:"link,omitempty"`
	Tunes   map[string]bool `json:"tunes,omitempty"`
}

// merge returns r with every present patch field applied.
func (r Record) merge(p Patch) Record {
	if p.URL != nil {
		r.URL = *p.URL
	}
	if p.Caption != nil {
		r.Caption = *p.Caption
	}
	if p.Width != nil {
		r.Width = *p.Width
	}
	if p.Alt != nil {
		r.Alt = *p.Alt
	}
	if p.License != nil {
		r.License = *p.License
	}
	if p.Link != nil {
		r.Link = *p.Link
	}
	if len(p.Tunes) > 0 {
		merged := cloneTunes(r.Tunes)
		if merged == nil {
			merged = make(map[string]bool, len(p.Tunes))
		}
		for name, enabled := range p.Tunes {
			merged[name] = enabled
		}
		r.Tunes = merged
	}
	return r
}

func cloneTunes(src map[string]bool) map[string]bool {
	if src == nil {
		return nil
	}
	cloned := make(map[string]bool, len(src))
	for name, enabled := range src {
		cloned[name] = enabled
	}
	return cloned
}
