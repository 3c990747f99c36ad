package layout

import "fmt"

// DefaultClassName is the CSS class given to label text when none is set.
const DefaultClassName = "labels"

// Label is a piece of text drawn inside a region.
type Label struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Labels holds the text for every label slot of a chart.
// A nil Subheader means no sub-header is drawn.
type Labels struct {
	ClassName string `json:"class_name"`
	Header    Label  `json:"header"`
	Subheader *Label `json:"subheader,omitempty"`
	Footer    Label  `json:"footer"`
	Left      Label  `json:"left"`
	Right     Label  `json:"right"`
}

// DefaultLabels returns the placeholder labels used when a chart is
// configured without any.
func DefaultLabels() Labels {
	return Labels{
		ClassName: DefaultClassName,
		Header:    Label{ID: "header", Text: "Header"},
		Footer:    Label{ID: "footer", Text: "Footer"},
		Left:      Label{ID: "left-label", Text: "Left Label"},
		Right:     Label{ID: "right-label", Text: "Right Label"},
	}
}

// clone returns a deep copy so callers never share the Subheader pointer.
func (ls Labels) clone() Labels {
	if ls.Subheader != nil {
		sub := *ls.Subheader
		ls.Subheader = &sub
	}
	return ls
}

// Get returns the label in slot, or false if the slot is empty.
func (ls Labels) Get(slot LabelSlot) (Label, bool) {
	switch slot {
	case SlotHeader:
		return ls.Header, true
	case SlotSubheader:
		if ls.Subheader == nil {
			return Label{}, false
		}
		return *ls.Subheader, true
	case SlotFooter:
		return ls.Footer, true
	case SlotLeft:
		return ls.Left, true
	case SlotRight:
		return ls.Right, true
	}
	return Label{}, false
}

// LabelSlot names a position a label can occupy.
type LabelSlot int

const (
	SlotHeader LabelSlot = iota
	SlotSubheader
	SlotFooter
	SlotLeft
	SlotRight
)

// Slots returns the label slots in drawing order. The sub-header comes last
// so it is drawn on top of the header region.
func Slots() []LabelSlot {
	return []LabelSlot{SlotHeader, SlotFooter, SlotLeft, SlotRight, SlotSubheader}
}

func (s LabelSlot) String() string {
	switch s {
	case SlotHeader:
		return "header"
	case SlotSubheader:
		return "subheader"
	case SlotFooter:
		return "footer"
	case SlotLeft:
		return "left"
	case SlotRight:
		return "right"
	}
	return fmt.Sprintf("LabelSlot(%d)", int(s))
}

// MarshalText encodes the slot by name.
func (s LabelSlot) MarshalText() ([]byte, error) {
	if s < SlotHeader || s > SlotRight {
		return nil, fmt.Errorf("invalid label slot %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a slot name.
func (s *LabelSlot) UnmarshalText(b []byte) error {
	for _, slot := range Slots() {
		if slot.String() == string(b) {
			*s = slot
			return nil
		}
	}
	return fmt.Errorf("unknown label slot %q", b)
}

// Region returns the region a slot's label is drawn in.
func (s LabelSlot) Region() Region {
	switch s {
	case SlotFooter:
		return RegionFooter
	case SlotLeft:
		return RegionLeftLabel
	case SlotRight:
		return RegionRightLabel
	}
	return RegionHeader
}

// LabelPatch overrides some fields of one label. Nil fields are kept.
type LabelPatch struct {
	ID   *string `json:"id,omitempty"`
	Text *string `json:"text,omitempty"`
}

func (p *LabelPatch) apply(l Label) Label {
	if p == nil {
		return l
	}
	if p.ID != nil {
		l.ID = *p.ID
	}
	if p.Text != nil {
		l.Text = *p.Text
	}
	return l
}

// LabelsUpdate is a partial update for [Layout.SetLabels]. Each slot and each
// field within it is overridden independently.
type LabelsUpdate struct {
	ClassName *string     `json:"class_name,omitempty"`
	Header    *LabelPatch `json:"header,omitempty"`
	Subheader *LabelPatch `json:"subheader,omitempty"`
	Footer    *LabelPatch `json:"footer,omitempty"`
	Left      *LabelPatch `json:"left,omitempty"`
	Right     *LabelPatch `json:"right,omitempty"`
}

// Merge returns a copy of ls with u applied. A sub-header patch is ignored
// when ls has no sub-header; set [Labels.Subheader] to add one.
func (ls Labels) Merge(u LabelsUpdate) Labels {
	out := ls.clone()
	if u.ClassName != nil {
		out.ClassName = *u.ClassName
	}
	out.Header = u.Header.apply(out.Header)
	out.Footer = u.Footer.apply(out.Footer)
	out.Left = u.Left.apply(out.Left)
	out.Right = u.Right.apply(out.Right)
	if out.Subheader != nil {
		sub := u.Subheader.apply(*out.Subheader)
		out.Subheader = &sub
	}
	return out
}

func withLabelDefaults(ls *Labels) Labels {
	if ls == nil {
		return DefaultLabels()
	}
	out := ls.clone()
	if out.ClassName == "" {
		out.ClassName = DefaultClassName
	}
	return out
}
