package usecase

import (
	"context"
	"os"
	"sync/atomic"

	"github.com/clipfetch/clipfetch-bot/internal/config"
	"github.com/clipfetch/clipfetch-bot/internal/models"
	"github.com/clipfetch/clipfetch-bot/internal/pipeline"
	"github.com/clipfetch/clipfetch-bot/pkg/logger"
	"github.com/clipfetch/clipfetch-bot/pkg/utils"
)

type pipelineUC struct {
	cfg        *config.Config
	extractor  pipeline.Extractor
	transcoder pipeline.Transcoder
	uploader   pipeline.Uploader
	logger     logger.Logger

	// permits bounds how many jobs run the heavy extraction/shrink/delivery
	// span at once; excess jobs wait on the channel in arrival order.
	permits chan struct{}

	active    atomic.Int64
	queued    atomic.Int64
	processed atomic.Int64
	failed    atomic.Int64
}

func NewPipelineUC(
	cfg *config.Config,
	extractor pipeline.Extractor,
	transcoder pipeline.Transcoder,
	uploader pipeline.Uploader,
	log logger.Logger,
) pipeline.UseCase {
	return &pipelineUC{
		cfg:        cfg,
		extractor:  extractor,
		transcoder: transcoder,
		uploader:   uploader,
		logger:     log,
		permits:    make(chan struct{}, cfg.Worker.Concurrency),
	}
}

// Process runs one job to a terminal outcome: file delivered, size-exceeded
// notice, or an explained failure. The job's scratch directory is removed on
// every exit path. The returned error is for the caller's logs only; the
// user has already been told.
func (u *pipelineUC) Process(ctx context.Context, job *models.Job, status pipeline.StatusSink) error {
	if err := u.acquire(ctx, status); err != nil {
		return err
	}
	defer func() { <-u.permits }()

	u.active.Add(1)
	defer u.active.Add(-1)

	if ok, usage := utils.CheckCPUUsage(u.cfg.Worker.MaxCPUUsage); !ok {
		u.logger.Warnf("job %s admitted with CPU usage at %.1f%%", job.ID, usage)
	}

	workDir, err := os.MkdirTemp("", "clipfetch-*")
	if err != nil {
		u.fail(job, status, err)
		return err
	}
	job.WorkDir = workDir
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			u.logger.Errorf("job %s: failed to clean scratch dir: %v", job.ID, err)
		}
	}()

	status.Edit(msgDownloading(string(job.Platform)))
	path, title, err := u.extractor.Extract(ctx, job.URL, job.Platform, workDir)
	if err != nil {
		u.fail(job, status, err)
		return err
	}
	job.ArtifactPath = path
	job.Title = title

	size, err := utils.FileSize(path)
	if err != nil {
		u.fail(job, status, err)
		return err
	}
	u.logger.Infof("job %s: downloaded ~%.2f MB from %s", job.ID, utils.ToMB(size), job.Platform)

	if size > utils.MBToBytes(u.cfg.Limits.SafeLimitMB) {
		path, err = u.shrink(ctx, job, status)
		if err != nil {
			u.fail(job, status, err)
			return err
		}
		job.ArtifactPath = path
		if size, err = utils.FileSize(path); err != nil {
			u.fail(job, status, err)
			return err
		}
	}

	u.deliver(ctx, job, status, size)
	u.processed.Add(1)
	return nil
}

// acquire takes a permit, telling the user when the job has to queue first.
func (u *pipelineUC) acquire(ctx context.Context, status pipeline.StatusSink) error {
	select {
	case u.permits <- struct{}{}:
		return nil
	default:
	}

	status.Edit(msgQueued)
	u.queued.Add(1)
	defer u.queued.Add(-1)
	select {
	case u.permits <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (u *pipelineUC) deliver(ctx context.Context, job *models.Job, status pipeline.StatusSink, size int64) {
	job.Delivery = SelectDelivery(size, u.cfg.Limits)
	if job.Delivery == models.DeliveryRejected {
		u.logger.Warnf("job %s: final artifact %.2f MB over hard ceiling, not uploading", job.ID, utils.ToMB(size))
		status.Edit(msgTooLarge)
		return
	}

	status.Edit(msgUploading)
	caption := Caption(job.Title)

	var err error
	switch job.Delivery {
	case models.DeliveryVideo:
		info, probeErr := u.transcoder.Probe(ctx, job.ArtifactPath)
		if probeErr != nil {
			// Geometry is cosmetic for the upload; send without it.
			u.logger.Warnf("job %s: probe failed: %v", job.ID, probeErr)
			info = nil
		}
		err = u.uploader.UploadVideo(ctx, job.ChatID, job.ArtifactPath, caption, info)
	case models.DeliveryDocument:
		err = u.uploader.UploadDocument(ctx, job.ChatID, job.ArtifactPath, caption)
	}
	if err != nil {
		u.logger.Errorf("job %s: %v", job.ID, err)
		status.Edit(msgDeliveryFailed(err))
	}
}

// fail reports a terminal failure to the user with the raw cause attached.
func (u *pipelineUC) fail(job *models.Job, status pipeline.StatusSink, err error) {
	u.failed.Add(1)
	u.logger.Errorf("job %s failed: %v", job.ID, err)
	status.Edit(msgFailed(err))
}

func (u *pipelineUC) Stats() pipeline.Stats {
	return pipeline.Stats{
		Active:    u.active.Load(),
		Queued:    u.queued.Load(),
		Processed: u.processed.Load(),
		Failed:    u.failed.Load(),
	}
}
