package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/faizmokh/laporan/internal/config"
	"github.com/faizmokh/laporan/internal/files"
	"github.com/faizmokh/laporan/internal/worklog"
)

func buildReport(ctx context.Context, cfg config.Config, logger *zap.Logger) (string, error) {
	file, err := files.Open(cfg.Path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	logger.Debug("reading work log", zap.String("path", file.Name()))

	rows, err := worklog.ReadRows(ctx, file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", cfg.Path, err)
	}

	groups, err := worklog.Collect(rows, worklog.CollectOptions{
		Filter:      cfg.Filter,
		EagerDecode: cfg.EagerDecode,
		Logger:      logger,
	})
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", cfg.Path, err)
	}

	return worklog.RenderHTML(groups), nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	level, err := config.ResolveLogLevel(verbose)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	return logger, nil
}
