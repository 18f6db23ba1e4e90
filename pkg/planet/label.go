package planet

import (
	"strings"

	"github.com/google/uuid"
	"github.com/taigrr/planet/pkg/effects"
	"github.com/taigrr/planet/pkg/math3d"
)

// Color is an 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Item describes one label. Only Title is required; the renderer decides
// what to do with the optional fields.
type Item struct {
	Title    string
	Subtitle string
	Color    *Color
	Icon     string
	// Data is carried through untouched for the host.
	Data any
}

// Label is a loaded Item with its identity and anchor on the sphere.
type Label struct {
	ID       uuid.UUID
	Index    int
	Item     Item
	Position math3d.Vec3
}

// LoadLabels replaces all labels with items, anchored in item order.
func (p *Planet) LoadLabels(items []Item) {
	p.labels = make([]Label, len(items))
	for i, it := range items {
		p.labels[i] = Label{ID: uuid.New(), Item: it}
	}
	p.relayout()
	Logf("planet: loaded %d labels", len(items))
}

// LoadTitles is LoadLabels for plain titles.
func (p *Planet) LoadTitles(titles ...string) {
	items := make([]Item, len(titles))
	for i, t := range titles {
		items[i] = Item{Title: t}
	}
	p.LoadLabels(items)
}

// AddLabel appends item and returns its index. Every label is re-anchored
// since the distribution depends on the count.
func (p *Planet) AddLabel(item Item) int {
	p.labels = append(p.labels, Label{ID: uuid.New(), Item: item})
	p.relayout()
	return len(p.labels) - 1
}

// RemoveLabel deletes the label at index. Out-of-range indices are ignored.
func (p *Planet) RemoveLabel(index int) bool {
	if index < 0 || index >= len(p.labels) {
		Logf("planet: remove label %d: index out of range [0, %d)", index, len(p.labels))
		return false
	}
	p.labels = append(p.labels[:index], p.labels[index+1:]...)
	p.relayout()
	return true
}

// Clear removes every label.
func (p *Planet) Clear() {
	p.labels = nil
	p.relayout()
}

// Len returns the number of labels.
func (p *Planet) Len() int { return len(p.labels) }

// Label returns the label at index.
func (p *Planet) Label(index int) (Label, bool) {
	if index < 0 || index >= len(p.labels) {
		return Label{}, false
	}
	return p.labels[index], true
}

// LabelByID returns the label with the given ID. IDs survive re-anchoring,
// so a host can hold one across AddLabel and RemoveLabel where an index
// would shift.
func (p *Planet) LabelByID(id uuid.UUID) (Label, bool) {
	for _, l := range p.labels {
		if l.ID == id {
			return l, true
		}
	}
	return Label{}, false
}

// Labels returns a copy of all labels in order.
func (p *Planet) Labels() []Label {
	out := make([]Label, len(p.labels))
	copy(out, p.labels)
	return out
}

// FindLabels returns the indices of labels whose title contains text,
// ignoring case.
func (p *Planet) FindLabels(text string) []int {
	needle := strings.ToLower(text)
	var out []int
	for i, l := range p.labels {
		if strings.Contains(strings.ToLower(l.Item.Title), needle) {
			out = append(out, i)
		}
	}
	return out
}

// relayout re-anchors labels, resizes the sphere for the new count and
// rebuilds per-label state.
func (p *Planet) relayout() {
	positions := p.layout.Positions(len(p.labels))
	p.anchors = append(p.anchors[:0], positions...)
	for i := range p.labels {
		p.labels[i].Index = i
		p.labels[i].Position = positions[i]
	}

	p.pulses = p.pulses[:0]
	for range p.labels {
		p.pulses = append(p.pulses, effects.NewPulse(p.cfg.Tap))
	}
	p.resize()
	p.refresh()
}
