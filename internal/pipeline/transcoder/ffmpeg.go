package transcoder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/clipfetch/clipfetch-bot/internal/config"
	"github.com/clipfetch/clipfetch-bot/internal/pipeline"
	"github.com/clipfetch/clipfetch-bot/pkg/logger"
)

const (
	videoCodec = "libx264"
	audioCodec = "aac"

	stderrTailLen = 512
)

// FFmpegTranscoder re-encodes video with libx264/aac through the ffmpeg
// binary, one invocation per shrink attempt.
type FFmpegTranscoder struct {
	cfg    *config.Config
	logger logger.Logger
}

func NewFFmpegTranscoder(cfg *config.Config, log logger.Logger) *FFmpegTranscoder {
	return &FFmpegTranscoder{cfg: cfg, logger: log}
}

// Transcode scales src so the vertical dimension equals height (width is
// derived, forced even for the encoder) and writes the result to dst. A
// non-zero exit or a missing dst is a TranscodeError; no partial-output
// recovery is attempted.
func (t *FFmpegTranscoder) Transcode(ctx context.Context, src, dst string, height, crf int) error {
	args := t.buildArgs(src, dst, height, crf)

	cmd := exec.CommandContext(ctx, t.cfg.Transcoder.FFmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	t.logger.Infof("transcoding %s to %dp crf %d", src, height, crf)
	if err := cmd.Run(); err != nil {
		return &pipeline.TranscodeError{
			Height: height,
			CRF:    crf,
			Err:    errors.Wrap(err, tail(stderr.String(), stderrTailLen)),
		}
	}
	if _, err := os.Stat(dst); err != nil {
		return &pipeline.TranscodeError{
			Height: height,
			CRF:    crf,
			Err:    errors.Wrap(err, "output file missing after encode"),
		}
	}
	return nil
}

func (t *FFmpegTranscoder) buildArgs(src, dst string, height, crf int) []string {
	return []string{
		"-y",
		"-i", src,
		// -2 keeps aspect ratio and forces an even width, a hard libx264
		// requirement.
		"-vf", fmt.Sprintf("scale=-2:%d", height),
		"-c:v", videoCodec,
		"-preset", t.cfg.Transcoder.Preset,
		"-crf", strconv.Itoa(crf),
		"-c:a", audioCodec,
		"-b:a", t.cfg.Transcoder.AudioRate,
		dst,
	}
}

// Probe returns width, height and duration of the first video stream.
func (t *FFmpegTranscoder) Probe(ctx context.Context, path string) (*pipeline.MediaInfo, error) {
	cmd := exec.CommandContext(ctx, t.cfg.Transcoder.FFprobePath,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "format=duration:stream=width,height",
		"-of", "json", path,
	)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffprobe error: %v output: %s", err, tail(out.String(), stderrTailLen))
	}

	var obj struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
		Streams []struct{ Width, Height int } `json:"streams"`
	}
	if err := json.Unmarshal(out.Bytes(), &obj); err != nil {
		return nil, fmt.Errorf("unexpected ffprobe output: %w", err)
	}
	if len(obj.Streams) == 0 {
		return nil, errors.New("no video stream")
	}

	duration, _ := strconv.ParseFloat(obj.Format.Duration, 64)
	return &pipeline.MediaInfo{
		Width:    obj.Streams[0].Width,
		Height:   obj.Streams[0].Height,
		Duration: duration,
	}, nil
}

func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "engine exited with error"
	}
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
