package services

// LookupState separates "nothing there" from "could not look".
type LookupState int

const (
	LookupFound LookupState = iota
	LookupNotFound
	LookupFailed
)

func (s LookupState) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupNotFound:
		return "not_found"
	default:
		return "error"
	}
}

// Lookup is the outcome of a read that may legitimately find nothing.
// Err is only set when State is LookupFailed.
type Lookup[T any] struct {
	State LookupState
	Value T
	Err   error
}

func Found[T any](v T) Lookup[T] {
	return Lookup[T]{State: LookupFound, Value: v}
}

func NotFound[T any]() Lookup[T] {
	return Lookup[T]{State: LookupNotFound}
}

func Failed[T any](err error) Lookup[T] {
	return Lookup[T]{State: LookupFailed, Err: err}
}

func (l Lookup[T]) Ok() bool { return l.State == LookupFound }
