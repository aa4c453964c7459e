package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

const RunIDKey ctxKey = "run_id"

// WithRunID stamps a run identifier onto the context so every timed
// operation of the run logs under the same id.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RunIDKey, id)
}

// RunID returns the run identifier carried by ctx, or "" when unset.
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(RunIDKey).(string)
	return id
}

func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	runID := RunID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("run_id=%s op=%s dur=%dms err=%v", runID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("run_id=%s op=%s dur=%dms", runID, name, dur.Milliseconds())
	}
}
