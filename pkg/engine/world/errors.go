package world

import "errors"

// Errors returned by chunk operations. Callers must treat them as fatal for
// the current level: the chunk state is inconsistent once one is seen.
var (
	ErrAllocation   = errors.New("chunk allocation failed")
	ErrObjectList   = errors.New("object list corrupt")
	ErrMonsterSlots = errors.New("no free monster slot")
	ErrOutOfBounds  = errors.New("location out of bounds")
)
