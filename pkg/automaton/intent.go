package automaton

// Intent describes what should happen to the session state this turn.
// The set is closed: *UpdateIntent and *NoOpIntent are the only variants,
// and Update switches over them exhaustively.
type Intent interface {
	isIntent()
}

// UpdateIntent merges new information into the session state.
type UpdateIntent struct {
	// LocationID names the node the information was collected for.
	LocationID string
	// Information maps node ids to their newly resolved values.
	Information map[string]any
}

func (*UpdateIntent) isIntent() {}

// NoOpIntent leaves the state untouched; the model's answer could not be
// turned into anything actionable.
type NoOpIntent struct{}

func (*NoOpIntent) isIntent() {}

// Message is the user-facing outcome of one state update.
type Message struct {
	Content string `json:"content"`
	Success bool   `json:"success"`
}
