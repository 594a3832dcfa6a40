package domain

import (
	"errors"
	"time"
)

// ErrNoPendingBinding is returned when an ack finds nothing to acknowledge.
var ErrNoPendingBinding = errors.New("no pending binding")

// BindingStatus is the lifecycle state of a binding cache entry.
type BindingStatus int

const (
	BindingPending BindingStatus = iota
	BindingAcknowledged
)

func (s BindingStatus) String() string {
	switch s {
	case BindingPending:
		return "pending"
	case BindingAcknowledged:
		return "acknowledged"
	default:
		return "unknown"
	}
}

// Binding is one entry in the mobile binding cache. Sequence increases
// monotonically across updates.
type Binding struct {
	ID         string
	MobileNode string
	Sequence   int64
	Status     BindingStatus
	UpdatedAt  time.Time
}
