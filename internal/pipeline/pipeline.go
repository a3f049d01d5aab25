package pipeline

import (
	"context"

	"github.com/clipfetch/clipfetch-bot/internal/models"
)

// Extractor pulls a single media file for a URL into destDir and returns the
// produced file path plus a best-effort title.
type Extractor interface {
	Extract(ctx context.Context, url string, platform models.Platform, destDir string) (path string, title string, err error)
}

// MediaInfo is the probed geometry of a media file.
type MediaInfo struct {
	Width    int
	Height   int
	Duration float64
}

// Transcoder re-encodes src into dst, scaling to the target vertical
// resolution with the given CRF quality value.
type Transcoder interface {
	Transcode(ctx context.Context, src, dst string, height, crf int) error
	Probe(ctx context.Context, path string) (*MediaInfo, error)
}

// StatusSink receives in-place status updates for one job. Edits are best
// effort; a failed edit must not fail the job.
type StatusSink interface {
	Edit(text string)
}

// Uploader is the outbound chat surface used for final delivery.
type Uploader interface {
	UploadVideo(ctx context.Context, chatID int64, path, caption string, info *MediaInfo) error
	UploadDocument(ctx context.Context, chatID int64, path, caption string) error
}

// Stats are process-lifetime pipeline counters.
type Stats struct {
	Active    int64 `json:"active"`
	Queued    int64 `json:"queued"`
	Processed int64 `json:"processed"`
	Failed    int64 `json:"failed"`
}

// UseCase runs one job through admission, extraction, shrinking and
// delivery. Process never lets a stage error escape to the caller without
// first reporting a terminal status to the user.
type UseCase interface {
	Process(ctx context.Context, job *models.Job, status StatusSink) error
	Stats() Stats
}
