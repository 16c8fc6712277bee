package interp

import (
	"time"

	"github.com/aretw0/sift/pkg/extract"
)

// TurnEvent describes one completed Interact call.
type TurnEvent struct {
	Location string
	Input    string
	Success  bool
	Duration time.Duration
}

// TransitionEvent describes a location change caused by a successful
// update.
type TransitionEvent struct {
	From string
	To   string
}

// ExtractionEvent fires when the interpreter had to fall back to the
// extraction pipeline because the completion did not name an option
// directly.
type ExtractionEvent struct {
	Location string
	Result   extract.Extraction
}

// Hooks receives lifecycle callbacks from the interpreter. Any field may
// be nil; hooks must be fast and must not call back into the
// interpreter.
type Hooks struct {
	OnTurn       func(TurnEvent)
	OnTransition func(TransitionEvent)
	OnExtraction func(ExtractionEvent)
}

func (h Hooks) turn(e TurnEvent) {
	if h.OnTurn != nil {
		h.OnTurn(e)
	}
}

func (h Hooks) transition(e TransitionEvent) {
	if h.OnTransition != nil {
		h.OnTransition(e)
	}
}

func (h Hooks) extraction(e ExtractionEvent) {
	if h.OnExtraction != nil {
		h.OnExtraction(e)
	}
}
