package providers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	"setpiece-service/internal/metrics"
)

// FileProvider reads the report from a path on disk.
type FileProvider struct {
	path    string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewFileProvider constructs a provider reading from path.
func NewFileProvider(path string, logger *slog.Logger, recorder *metrics.Recorder) *FileProvider {
	return &FileProvider{
		path:    path,
		logger:  logger,
		metrics: recorder,
	}
}

// Name identifies this provider in logs and metrics.
func (p *FileProvider) Name() string { return "file" }

// Path returns the report path this provider reads.
func (p *FileProvider) Path() string { return p.path }

// FetchReport reads the full report file. It fails when the file is missing
// or the content is not valid UTF-8.
func (p *FileProvider) FetchReport(ctx context.Context) (string, error) {
	start := time.Now()
	content, err := p.read(ctx)
	if p.metrics != nil {
		p.metrics.RecordReportRead(p.Name(), time.Since(start), err)
	}
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.Name(), "report read failed", "err", err)
		return "", err
	}
	return content, nil
}

func (p *FileProvider) read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(p.path)
	if err != nil {
		return "", fmt.Errorf("read report %s: %w", p.path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read report %s: content is not valid UTF-8", p.path)
	}
	return string(data), nil
}
