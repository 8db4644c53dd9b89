package chart

import "fmt"

// Kind selects how a series is drawn.
type Kind int

// Chart kinds.
const (
	KindLine Kind = iota
	KindRatio
)

// Chart is an acquired chart handle. A destroyed chart renders nothing.
type Chart interface {
	Render(width, height int) string
	Destroy()
}

// Factory creates chart handles.
type Factory interface {
	New(kind Kind, s Series) (Chart, error)
}

// Registry owns at most one chart handle per slot.
type Registry struct {
	factory Factory
	handles map[string]Chart
}

// NewRegistry returns a Registry backed by factory. A nil factory uses TextFactory.
func NewRegistry(factory Factory) *Registry {
	if factory == nil {
		factory = TextFactory{}
	}
	return &Registry{factory: factory, handles: map[string]Chart{}}
}

// Refresh disposes the slot's current chart and acquires a new one for s.
// On error the slot is left empty.
func (r *Registry) Refresh(slot string, kind Kind, s Series) (Chart, error) {
	r.release(slot)
	c, err := r.factory.New(kind, s)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", slot, err)
	}
	r.handles[slot] = c
	return c, nil
}

// Get returns the live chart for slot.
func (r *Registry) Get(slot string) (Chart, bool) {
	c, ok := r.handles[slot]
	return c, ok
}

// Close disposes every chart.
func (r *Registry) Close() {
	for slot := range r.handles {
		r.release(slot)
	}
}

func (r *Registry) release(slot string) {
	if old, ok := r.handles[slot]; ok {
		old.Destroy()
		delete(r.handles, slot)
	}
}

// TextFactory builds terminal text charts.
type TextFactory struct{}

// New implements Factory.
func (TextFactory) New(kind Kind, s Series) (Chart, error) {
	switch kind {
	case KindLine:
		if len(s.Values) == 0 {
			return nil, fmt.Errorf("line chart needs values")
		}
	case KindRatio:
		if len(s.Values) < 2 {
			return nil, fmt.Errorf("ratio chart needs two values, got %d", len(s.Values))
		}
	default:
		return nil, fmt.Errorf("unknown chart kind %d", kind)
	}
	return &textChart{kind: kind, series: s}, nil
}

type textChart struct {
	kind      Kind
	series    Series
	destroyed bool
}

func (c *textChart) Render(width, height int) string {
	if c.destroyed {
		return ""
	}
	if c.kind == KindRatio {
		return PlotRatio(c.series, width)
	}
	return PlotLine(c.series, width, height)
}

func (c *textChart) Destroy() {
	c.destroyed = true
}
