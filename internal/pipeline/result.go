package pipeline

import (
	"time"

	"github.com/FuriaPaladins/Hoyoverse-Data/internal/domain"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/event"
	"github.com/FuriaPaladins/Hoyoverse-Data/internal/store"
)

// TaskFailure is a banner whose detail could not be fetched or normalized.
type TaskFailure struct {
	BannerID string `json:"banner_id"`
	Error    string `json:"error"`
}

// RunResult is the outcome of one game run.
type RunResult struct {
	Game             domain.Game         `json:"game"`
	RunID            string              `json:"run_id"`
	Status           string              `json:"status"`
	StartedAt        time.Time           `json:"started_at"`
	Duration         time.Duration       `json:"duration_ns"`
	NewStubs         int                 `json:"new_stubs"`
	Fetched          int                 `json:"details_fetched"`
	Skipped          int                 `json:"skipped"`
	Added            []store.KeyedRecord `json:"-"`
	Merged           []store.KeyedRecord `json:"-"`
	AddedCount       int                 `json:"added"`
	MergedCount      int                 `json:"merged"`
	Duplicates       int                 `json:"duplicates"`
	UnknownDrops     int                 `json:"unknown_drops"`
	UnparsedNames    int                 `json:"unparsed_names"`
	ImagesSaved      int                 `json:"images_saved"`
	CatalogRefreshed bool                `json:"catalog_refreshed"`
	Failures         []TaskFailure       `json:"failures,omitempty"`
	Err              error               `json:"-"`
	Error            string              `json:"error,omitempty"`
}

// Failed reports whether the run aborted.
func (r RunResult) Failed() bool {
	return r.Err != nil
}

func (r *RunResult) finish(err error) {
	r.Duration = time.Since(r.StartedAt)
	r.AddedCount = len(r.Added)
	r.MergedCount = len(r.Merged)
	switch {
	case err != nil:
		r.Err = err
		r.Error = err.Error()
		r.Status = event.RunStatusFailed
	case r.Status != "":
	case len(r.Failures) > 0:
		r.Status = event.RunStatusPartial
	default:
		r.Status = event.RunStatusOK
	}
}

func (r RunResult) completedPayload() event.RunCompletedPayloadV1 {
	return event.RunCompletedPayloadV1{
		Game:       r.Game,
		Status:     r.Status,
		NewStubs:   r.NewStubs,
		Added:      r.AddedCount,
		Merged:     r.MergedCount,
		Duplicates: r.Duplicates,
		Skipped:    r.Skipped,
		Failed:     len(r.Failures),
		Unknown:    r.UnknownDrops,
		Duration:   r.Duration.Seconds(),
		Error:      r.Error,
		Timestamp:  r.StartedAt.Add(r.Duration).Unix(),
	}
}
