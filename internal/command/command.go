package command

import (
	"context"
	"time"
)

// Command is the generic interface for all commands.
// Req is the request type and Res is the result type.
type Command[Req, Res any] interface {
	Execute(ctx context.Context, req Req) (Res, error)
}

// Empty is used as the result type for commands that only return an error.
type Empty struct{}

// Clock returns the current time. A nil Clock means time.Now.
type Clock func() time.Time

func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}
