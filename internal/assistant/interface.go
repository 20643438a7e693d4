package assistant

import (
	"context"

	"calendar-assistant/internal/model"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// InferRange decides the minimal calendar window(s) needed to answer the
	// query. It never hard-fails: when the model path is unusable it falls
	// back to a deterministic heuristic.
	InferRange(ctx context.Context, sc model.Scope, input RangeInput) (RangeResult, error)

	// StreamChat runs one chat turn: prose deltas first, then at most one
	// actions frame. Failures surface as a single error frame; the emitter
	// is always left in a cleanly terminable state.
	StreamChat(ctx context.Context, sc model.Scope, input StreamInput, emit EmitFunc) error

	// ExecuteActions resolves and dispatches the action list against the
	// calendar backend with best-effort, per-action isolation.
	ExecuteActions(ctx context.Context, sc model.Scope, input ExecuteInput) (ExecutionLog, error)
}
