package config

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	runIDKey   ctxKey = "run_id"
	commandKey ctxKey = "command"
)

// NewRunContext tags ctx with a fresh run id and the command being executed.
func NewRunContext(ctx context.Context, command string) context.Context {
	ctx = context.WithValue(ctx, runIDKey, uuid.NewString())
	return context.WithValue(ctx, commandKey, command)
}

func RunIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}
