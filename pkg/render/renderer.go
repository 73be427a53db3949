package render

// UpdateMode selects how a sink applies a polyhedron update.
type UpdateMode int

const (
	// UpdateSet replaces the stored shape state immediately.
	UpdateSet UpdateMode = iota
	// UpdateAnimate transitions from the currently displayed state to the
	// new one. Sinks without animation support treat it as UpdateSet.
	UpdateAnimate
)

// Renderer consumes polyhedron updates keyed by shape name. Implementations
// are not safe for concurrent use; the pipeline runs on a single goroutine.
type Renderer interface {
	Update(p Polyhedron, mode UpdateMode)
}

// Collector is an in-memory sink that keeps the latest state of every shape
// and steps animated updates on demand. It backs the interactive viewer and
// the tests.
type Collector struct {
	order   []string
	current map[string]Polyhedron
	pending map[string]*shapeTween
}

type shapeTween struct {
	from Polyhedron
	to   Polyhedron
	pos  float64
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{
		current: make(map[string]Polyhedron),
		pending: make(map[string]*shapeTween),
	}
}

// Update stores the new state of a shape. The first update of a name always
// lands immediately; afterwards UpdateAnimate starts a transition from the
// displayed state, restarting any transition already underway.
func (c *Collector) Update(p Polyhedron, mode UpdateMode) {
	_, known := c.current[p.Name]
	if !known {
		c.order = append(c.order, p.Name)
	}
	if !known || mode == UpdateSet {
		c.current[p.Name] = p
		delete(c.pending, p.Name)
		return
	}
	c.pending[p.Name] = &shapeTween{from: c.Shape(p.Name), to: p}
}

// Step advances every running transition by d, a fraction of the total
// transition, and reports whether any transition is still running.
func (c *Collector) Step(d float64) bool {
	for name, tw := range c.pending {
		tw.pos += d
		if tw.pos >= 1 {
			c.current[name] = tw.to
			delete(c.pending, name)
		}
	}
	return len(c.pending) > 0
}

// Shape returns the displayed state of the named shape, mid-transition
// states included. Unknown names return a zero polyhedron.
func (c *Collector) Shape(name string) Polyhedron {
	if tw, ok := c.pending[name]; ok {
		return tw.from.Lerp(tw.to, tw.pos)
	}
	return c.current[name]
}

// Snapshot returns the displayed state of every shape in first-update
// order.
func (c *Collector) Snapshot() []Polyhedron {
	out := make([]Polyhedron, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.Shape(name))
	}
	return out
}
