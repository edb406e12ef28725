package recovery

import (
	"context"
	"fmt"
)

// StrictStrategy implements a fail-fast recovery strategy: every recoverable
// condition escalates to fatal.
type StrictStrategy struct{}

func NewStrictStrategy() *StrictStrategy {
	return &StrictStrategy{}
}

func (s *StrictStrategy) OnError(ctx context.Context, err error, location Location) Action {
	return ActionFail
}

// LenientStrategy is a best-effort recovery strategy: it accumulates errors
// and always continues with the spec default (spec §7).
type LenientStrategy struct {
	Errors []error
}

func NewLenientStrategy() *LenientStrategy {
	return &LenientStrategy{}
}

func (s *LenientStrategy) OnError(ctx context.Context, err error, location Location) Action {
	s.Errors = append(s.Errors, fmt.Errorf("[%s] node %s page %d: %w", location.Component, location.NodeID, location.Page, err))
	return ActionWarn
}
