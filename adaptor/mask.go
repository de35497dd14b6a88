package adaptor

import "github.com/katalvlaran/flux/seq"

// maskCur pairs the value cursor with the mask cursor.
type maskCur struct {
	value seq.Cur
	mask  seq.Cur
}

// Mask keeps Values[i] only where Selectors[i] is truthy
// (SPEC_FULL.md §6, the compress/mask family familiar from itertools).
// Both inputs are walked in lockstep; traversal stops when either is
// exhausted, matching Zip's short-circuit contract.
type Mask[E any] struct {
	Values    seq.Sequence[E]
	Selectors seq.Sequence[bool]
}

func NewMask[E any](values seq.Sequence[E], selectors seq.Sequence[bool]) *Mask[E] {
	return &Mask[E]{Values: values, Selectors: selectors}
}

func (m *Mask[E]) First() seq.Cur {
	c := maskCur{value: m.Values.First(), mask: m.Selectors.First()}
	m.skip(&c)
	return c
}

func (m *Mask[E]) IsLast(c seq.Cur) bool {
	mc := c.(maskCur)
	return m.Values.IsLast(mc.value) || m.Selectors.IsLast(mc.mask)
}

func (m *Mask[E]) ReadAt(c seq.Cur) E {
	return m.Values.ReadAt(c.(maskCur).value)
}

func (m *Mask[E]) Inc(c *seq.Cur) {
	mc := (*c).(maskCur)
	m.Values.Inc(&mc.value)
	m.Selectors.Inc(&mc.mask)
	*c = mc
	m.skip(c)
}

func (m *Mask[E]) skip(c *seq.Cur) {
	for {
		mc := (*c).(maskCur)
		if m.Values.IsLast(mc.value) || m.Selectors.IsLast(mc.mask) {
			return
		}
		if m.Selectors.ReadAt(mc.mask) {
			return
		}
		m.Values.Inc(&mc.value)
		m.Selectors.Inc(&mc.mask)
		*c = mc
	}
}
