// Package selection tracks the transient set of history entries marked for
// bulk deletion. The set is never persisted: it lives only while delete mode
// is active and is cleared when the mode is exited or a deletion completes.
package selection

// State is the in-memory selection. The CLI runs it from a single goroutine,
// so no locking is needed.
type State struct {
	selected map[string]struct{}
}

func New() *State {
	return &State{selected: make(map[string]struct{})}
}

// Toggle flips membership of ip.
func (s *State) Toggle(ip string) {
	if _, ok := s.selected[ip]; ok {
		delete(s.selected, ip)
		return
	}
	s.selected[ip] = struct{}{}
}

// Has reports whether ip is currently selected.
func (s *State) Has(ip string) bool {
	_, ok := s.selected[ip]
	return ok
}

// Count returns the number of selected entries.
func (s *State) Count() int {
	return len(s.selected)
}

// Selected returns a copy of the selection.
func (s *State) Selected() map[string]struct{} {
	out := make(map[string]struct{}, len(s.selected))
	for ip := range s.selected {
		out[ip] = struct{}{}
	}
	return out
}

// Clear empties the selection.
func (s *State) Clear() {
	s.selected = make(map[string]struct{})
}

// Prune drops selected values that are no longer part of valid, keeping the
// invariant that a selection never references an entry absent from history.
func (s *State) Prune(valid []string) {
	keep := make(map[string]struct{}, len(valid))
	for _, ip := range valid {
		keep[ip] = struct{}{}
	}
	for ip := range s.selected {
		if _, ok := keep[ip]; !ok {
			delete(s.selected, ip)
		}
	}
}
