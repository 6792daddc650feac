package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RunIDKey carries the plan run id through a solve so timing lines can be correlated.
const RunIDKey ctxKey = "run_id"

// WithRunID returns a context tagged with the given run id.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// Time logs the duration of an operation when the returned func is deferred.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	runID, _ := ctx.Value(RunIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("run_id=%s op=%s dur=%dms err=%v", runID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("run_id=%s op=%s dur=%dms", runID, name, dur.Milliseconds())
	}
}
