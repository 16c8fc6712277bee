package automaton

// State is an immutable snapshot of where the dialog is and what has
// been collected so far. Methods return fresh copies; a State handed out
// is never written to again.
type State struct {
	// Location is the id of the node currently being worked on. It must
	// always resolve in the automaton's index.
	Location string `json:"location_id"`
	// Information maps node ids to collected values.
	Information map[string]any `json:"information"`
}

// NewState creates a state at the given location with nothing collected.
func NewState(location string) State {
	return State{Location: location, Information: map[string]any{}}
}

// Update returns a copy with info merged into Information. New keys
// overwrite old ones for the same id; the receiver is left untouched.
func (s State) Update(info map[string]any) State {
	merged := make(map[string]any, len(s.Information)+len(info))
	for k, v := range s.Information {
		merged[k] = v
	}
	for k, v := range info {
		merged[k] = v
	}
	return State{Location: s.Location, Information: merged}
}

// Value returns the collected value for id.
func (s State) Value(id string) (any, bool) {
	v, ok := s.Information[id]
	return v, ok
}

// clone deep-copies the state so snapshots cannot alias live maps.
func (s State) clone() State {
	info := make(map[string]any, len(s.Information))
	for k, v := range s.Information {
		info[k] = v
	}
	return State{Location: s.Location, Information: info}
}
