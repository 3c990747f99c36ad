package sink

import "github.com/matzehuels/chartframe/pkg/layout"

// scene records the drawing operations shared by the document sinks: one
// group per region and at most one text per region and slot.
type scene struct {
	container string
	className string
	width     float64
	height    float64
	groups    map[layout.Region]*sceneGroup
}

type sceneGroup struct {
	area  layout.Area
	texts map[layout.LabelSlot]sceneText
}

type sceneText struct {
	placement layout.Placement
	label     layout.Label
	className string
}

func newScene() scene {
	return scene{groups: make(map[layout.Region]*sceneGroup)}
}

func (s *scene) reset(container, className string, width, height float64) {
	s.container = container
	s.className = className
	s.width = width
	s.height = height
	s.groups = make(map[layout.Region]*sceneGroup)
}

func (s *scene) appendGroup(region layout.Region, area layout.Area) {
	if g, ok := s.groups[region]; ok {
		g.area = area
		return
	}
	s.groups[region] = &sceneGroup{area: area, texts: make(map[layout.LabelSlot]sceneText)}
}

func (s *scene) drawLabel(region layout.Region, slot layout.LabelSlot, p layout.Placement, l layout.Label, className string) {
	g, ok := s.groups[region]
	if !ok || l.Text == "" {
		return
	}
	g.texts[slot] = sceneText{placement: p, label: l, className: className}
}

func (s *scene) count() int {
	n := 0
	for _, g := range s.groups {
		n += len(g.texts)
	}
	return n
}

// finite reports whether the canvas, every group area and every placement
// are finite numbers.
func (s *scene) finite() bool {
	if !(layout.Area{Width: s.width, Height: s.height}).IsFinite() {
		return false
	}
	for _, g := range s.groups {
		if !g.area.IsFinite() {
			return false
		}
		for _, t := range g.texts {
			if !t.placement.IsFinite() {
				return false
			}
		}
	}
	return true
}

// each visits the groups in drawing order.
func (s *scene) each(fn func(layout.Region, *sceneGroup)) {
	for _, r := range layout.Regions() {
		if g, ok := s.groups[r]; ok {
			fn(r, g)
		}
	}
}

// eachText visits the group's texts in slot order.
func (g *sceneGroup) eachText(fn func(sceneText)) {
	for _, slot := range layout.Slots() {
		if t, ok := g.texts[slot]; ok {
			fn(t)
		}
	}
}
