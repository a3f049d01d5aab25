package extractor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/clipfetch/clipfetch-bot/internal/config"
	"github.com/clipfetch/clipfetch-bot/internal/models"
	"github.com/clipfetch/clipfetch-bot/internal/pipeline"
	"github.com/clipfetch/clipfetch-bot/pkg/logger"
)

const (
	// Format preference chain: best mp4 pair under the height cap, then a
	// single mp4 under the cap, then best mp4 of any height, then anything.
	formatChainTmpl = "bv*[height<=%d][ext=mp4]+ba[ext=m4a]/b[height<=%d][ext=mp4]/best[ext=mp4]/best"

	stderrTailLen = 512
)

// YtDlpExtractor invokes the yt-dlp binary for single-item extraction.
type YtDlpExtractor struct {
	cfg    *config.Config
	logger logger.Logger
}

func NewYtDlpExtractor(cfg *config.Config, log logger.Logger) *YtDlpExtractor {
	return &YtDlpExtractor{cfg: cfg, logger: log}
}

// Extract downloads the media for url into destDir and resolves the produced
// file path and title from the engine's own prints. The engine performs its
// configured number of internal retries; Extract itself never retries.
func (e *YtDlpExtractor) Extract(ctx context.Context, url string, platform models.Platform, destDir string) (string, string, error) {
	args := e.buildArgs(url, platform, destDir)

	cmd := exec.CommandContext(ctx, e.cfg.Extractor.BinPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	e.logger.Infof("extracting %s from %s", url, platform)
	if err := cmd.Run(); err != nil {
		return "", "", &pipeline.ExtractionError{
			URL: url,
			Err: errors.Wrap(err, tail(stderr.String(), stderrTailLen)),
		}
	}

	path, title, err := parsePrints(stdout.String())
	if err != nil {
		return "", "", &pipeline.ExtractionError{URL: url, Err: err}
	}
	if _, err := os.Stat(path); err != nil {
		return "", "", &pipeline.ExtractionError{
			URL: url,
			Err: errors.Wrapf(err, "downloaded file not found at %q", path),
		}
	}
	return path, title, nil
}

func (e *YtDlpExtractor) buildArgs(url string, platform models.Platform, destDir string) []string {
	maxHeight := e.cfg.Limits.TargetHeight
	outTmpl := filepath.Join(destDir, fmt.Sprintf("%%(title).%dB.%%(ext)s", e.cfg.Extractor.MaxTitleLen))

	args := []string{
		"--format", fmt.Sprintf(formatChainTmpl, maxHeight, maxHeight),
		"--merge-output-format", "mp4",
		"--no-playlist",
		"--quiet", "--no-warnings",
		"--retries", strconv.Itoa(e.cfg.Extractor.Retries),
		"--output", outTmpl,
		// --print implies simulate unless countermanded; both prints fire at
		// the after_move stage so the filepath line always comes first.
		"--no-simulate",
		"--print", "after_move:filepath",
		"--print", "after_move:title",
	}
	if platform == models.PlatformInstagram && e.cfg.Extractor.CookiesPath != "" {
		args = append(args, "--cookies", e.cfg.Extractor.CookiesPath)
	}
	return append(args, url)
}

// parsePrints reads the two printed lines: resolved filepath, then title.
func parsePrints(out string) (string, string, error) {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return "", "", errors.New("engine reported no output file")
	}
	path := strings.TrimSpace(lines[0])
	title := "video"
	if len(lines) > 1 && strings.TrimSpace(lines[1]) != "" {
		title = strings.TrimSpace(lines[1])
	}
	return path, title, nil
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
