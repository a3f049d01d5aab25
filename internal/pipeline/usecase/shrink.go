package usecase

import (
	"context"
	"fmt"

	"github.com/clipfetch/clipfetch-bot/internal/models"
	"github.com/clipfetch/clipfetch-bot/internal/pipeline"
	"github.com/clipfetch/clipfetch-bot/pkg/utils"
)

type shrinkAttempt struct {
	height int
	crf    int
}

// ladder is the fixed, ordered list of compression attempts. It is always
// consulted front to back; only reaching the safe threshold stops it early.
func (u *pipelineUC) ladder() []shrinkAttempt {
	target := u.cfg.Limits.TargetHeight
	reduced := u.cfg.Limits.ReducedHeight
	return []shrinkAttempt{
		{target, 28},
		{target, 30},
		{reduced, 28},
		{reduced, 30},
	}
}

// shrink brings the job's current artifact down to the safe threshold, or as
// close as the ladder gets. An artifact already at or under the threshold is
// returned unchanged with zero transcode invocations. When the ladder is
// exhausted the last produced artifact is returned even if still over; the
// delivery selector downstream owns the hard-ceiling rejection. An engine
// failure aborts the job instead of advancing the ladder.
func (u *pipelineUC) shrink(ctx context.Context, job *models.Job, status pipeline.StatusSink) (string, error) {
	current := job.ArtifactPath
	size, err := utils.FileSize(current)
	if err != nil {
		return "", err
	}
	safe := utils.MBToBytes(u.cfg.Limits.SafeLimitMB)
	if size <= safe {
		return current, nil
	}

	for _, att := range u.ladder() {
		status.Edit(msgCompressing(att.height, att.crf))

		candidate := fmt.Sprintf("%s.%dp.crf%d.mp4", current, att.height, att.crf)
		if err := u.transcoder.Transcode(ctx, current, candidate, att.height, att.crf); err != nil {
			return "", err
		}
		current = candidate

		size, err = utils.FileSize(current)
		if err != nil {
			return "", err
		}
		u.logger.Infof("job %s: compressed to ~%.2f MB at %dp crf %d", job.ID, utils.ToMB(size), att.height, att.crf)
		if size <= safe {
			break
		}
	}
	return current, nil
}
