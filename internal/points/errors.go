package points

import (
	"errors"
	"fmt"
)

// Kind classifies a points ledger failure for retry decisions
type Kind int

const (
	// KindTransient failures may succeed on retry: transport errors, timeouts, 5xx, 429.
	KindTransient Kind = iota + 1
	// KindPermanent failures will not change on retry: insufficient points, unknown user.
	KindPermanent
)

func (k Kind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindPermanent:
		return "permanent"
	}
	return "unknown"
}

// Error is a classified points ledger failure
type Error struct {
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("points ledger %s failure (status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("points ledger %s failure: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is worth retrying
func IsTransient(err error) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind == KindTransient
	}
	return false
}
