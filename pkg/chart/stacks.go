package chart

import "strconv"

// Stack is one depth layer of series.
type Stack struct {
	Series   []*Series
	Position int
}

// StackRegistry groups the chart's series into depth-ordered stacks.
type StackRegistry struct {
	// Stacks maps stack keys, explicit series ids or positional
	// fallbacks, to their layers.
	Stacks map[string]*Stack
	// TotalStacks is one past the highest assigned position and sizes
	// the depth subdivision for stacked columns.
	TotalStacks int
}

// GetStacks groups series into stacks. A series without an explicit stack
// id falls back to bucket "0" when stacking is on, or to its reverse
// positional index otherwise, which puts earlier series into deeper
// layers. Buckets take positions 1, 2, ... in first-seen order. The
// registry is rebuilt from scratch on every call.
func (c *Chart) GetStacks(stacking bool) *StackRegistry {
	reg := &StackRegistry{Stacks: make(map[string]*Stack)}
	position := 0
	for _, s := range c.series {
		key := s.Stack
		if key == "" {
			if stacking {
				key = "0"
			} else {
				key = strconv.Itoa(len(c.series) - 1 - s.Index)
			}
		}
		st, ok := reg.Stacks[key]
		if !ok {
			position++
			st = &Stack{Position: position}
			reg.Stacks[key] = st
		}
		st.Series = append(st.Series, s)
	}
	reg.TotalStacks = position + 1
	return reg
}
