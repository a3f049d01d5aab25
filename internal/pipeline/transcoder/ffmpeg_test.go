package transcoder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clipfetch/clipfetch-bot/internal/config"
)

func TestBuildArgs(t *testing.T) {
	tr := &FFmpegTranscoder{cfg: &config.Config{
		Transcoder: config.TranscoderConfig{
			FFmpegPath: "ffmpeg",
			Preset:     "veryfast",
			AudioRate:  "128k",
		},
	}}

	args := tr.buildArgs("/work/in.mp4", "/work/out.mp4", 480, 28)
	assert.Equal(t, []string{
		"-y",
		"-i", "/work/in.mp4",
		"-vf", "scale=-2:480",
		"-c:v", "libx264",
		"-preset", "veryfast",
		"-crf", "28",
		"-c:a", "aac",
		"-b:a", "128k",
		"/work/out.mp4",
	}, args)
}

func TestBuildArgsReducedRung(t *testing.T) {
	tr := &FFmpegTranscoder{cfg: &config.Config{
		Transcoder: config.TranscoderConfig{Preset: "veryfast", AudioRate: "128k"},
	}}

	args := tr.buildArgs("/work/in.mp4", "/work/out.mp4", 360, 30)
	assert.Contains(t, args, "scale=-2:360")
	assert.Contains(t, args, "30")
}
