package styled

// Style holds the formatting of a Component. Unset fields are inherited from the parent.
type Style struct {
	Color       *Color                `json:"color,omitempty"`
	Decorations [NumDecorations]State `json:"decorations"`
	Click       *ClickEvent           `json:"click,omitempty"`
	Hover       *HoverEvent           `json:"hover,omitempty"`
	Insertion   string                `json:"insertion,omitempty"`
	Font        string                `json:"font,omitempty"`
}

// IsEmpty reports whether no attribute of the style is set.
func (s Style) IsEmpty() bool {
	if s.Color != nil || s.Click != nil || s.Hover != nil || s.Insertion != "" || s.Font != "" {
		return false
	}

	for _, d := range s.Decorations {
		if d != NotSet {
			return false
		}
	}

	return true
}

// Decoration returns the state of the decoration d.
func (s Style) Decoration(d Decoration) State {
	return s.Decorations[d]
}

// WithColor returns a copy of the style with the color set.
func (s Style) WithColor(c Color) Style {
	s.Color = &c
	return s
}

// WithDecoration returns a copy of the style with the decoration state set.
func (s Style) WithDecoration(d Decoration, st State) Style {
	s.Decorations[d] = st
	return s
}

// Merge returns s with every unset attribute taken from parent.
func (s Style) Merge(parent Style) Style {
	if s.Color == nil {
		s.Color = parent.Color
	}

	for i, d := range s.Decorations {
		if d == NotSet {
			s.Decorations[i] = parent.Decorations[i]
		}
	}

	if s.Click == nil {
		s.Click = parent.Click
	}

	if s.Hover == nil {
		s.Hover = parent.Hover
	}

	if s.Insertion == "" {
		s.Insertion = parent.Insertion
	}

	if s.Font == "" {
		s.Font = parent.Font
	}

	return s
}
