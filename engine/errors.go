package engine

import "errors"

var (
	// ErrInvalidGeometry rejects playfield dimensions that are not finite and positive
	ErrInvalidGeometry = errors.New("invalid playfield geometry")

	// ErrInvalidPoint rejects non-finite pointer coordinates
	ErrInvalidPoint = errors.New("invalid pointer coordinate")

	// ErrInvalidTuning rejects tuning values that break state invariants
	ErrInvalidTuning = errors.New("invalid tuning")
)
