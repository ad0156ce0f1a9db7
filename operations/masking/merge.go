package masking

import "gitgub.com/cam-per/hypnagogic/dmi"

type slot struct {
	anchor int
	index  int
}

// merge places derived states relative to a fixed snapshot of the input's
// states, so the result does not depend on the order pairs are processed in.
//
// A state whose name already exists in the snapshot replaces it in place.
// Otherwise it goes after the snapshot index it is anchored to, following any
// state inserted there before it.
type merge struct {
	snapshot []dmi.State
	replaced map[int]dmi.State
	inserts  map[int][]dmi.State
	pending  map[string]slot
}

func newMerge(snapshot []dmi.State) *merge {
	return &merge{
		snapshot: snapshot,
		replaced: make(map[int]dmi.State),
		inserts:  make(map[int][]dmi.State),
		pending:  make(map[string]slot),
	}
}

func (m *merge) put(state dmi.State, anchor int) {
	if i, ok := m.indexOf(state.Name); ok {
		m.replaced[i] = state
		return
	}
	if s, ok := m.pending[state.Name]; ok {
		m.inserts[s.anchor][s.index] = state
		return
	}
	m.pending[state.Name] = slot{anchor: anchor, index: len(m.inserts[anchor])}
	m.inserts[anchor] = append(m.inserts[anchor], state)
}

func (m *merge) indexOf(name string) (int, bool) {
	for i := range m.snapshot {
		if m.snapshot[i].Name == name {
			return i, true
		}
	}
	return 0, false
}

// states returns the merged list. Untouched states are deep copies.
func (m *merge) states() []dmi.State {
	out := make([]dmi.State, 0, len(m.snapshot)+len(m.pending))
	for i := range m.snapshot {
		if state, ok := m.replaced[i]; ok {
			out = append(out, state)
		} else {
			out = append(out, m.snapshot[i].Clone())
		}
		out = append(out, m.inserts[i]...)
	}
	return out
}
