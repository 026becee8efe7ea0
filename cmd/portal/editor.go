package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"pkt.systems/pslog"

	"github.com/iw2rmb/portal/config"
	"github.com/iw2rmb/portal/internal/logx"
	"github.com/iw2rmb/portal/viewport"
)

type editorOptions struct {
	configPath string
	backend    string
	logFile    string
	height     int
	path       string
}

func runEditor(ctx context.Context, opts editorOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.backend != "" {
		cfg.UI.Backend = opts.backend
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	// The terminal belongs to the UI from here on; logs go to the file.
	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())

	vp, err := openViewport(ctx, opts.path, cfg.ViewportOptions(opts.height))
	if err != nil {
		return err
	}
	logx.WithBackend(logx.WithPath(logger, opts.path), cfg.UI.Backend).Info("editor started", "lines", vp.LineCount())

	switch cfg.UI.Backend {
	case config.BackendTcell:
		err = runTcell(ctx, vp, cfg)
	default:
		err = runBubbleTea(ctx, vp, cfg)
	}
	logx.WithPath(logger, opts.path).Info("editor closed")
	return err
}

func openViewport(ctx context.Context, path string, opts viewport.Options) (*viewport.Viewport, error) {
	if path == "" {
		return viewport.FromText("", opts), nil
	}
	return viewport.Open(ctx, path, opts)
}

func openLogger(lc config.LogConfig) (pslog.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if lc.File != "" {
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open log file")
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	opts := pslog.Options{Mode: pslog.ModeStructured, NoColor: true}
	logx.ApplyLevel(&opts, lc.Level)
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(w),
		pslog.WithEnvOptions(opts),
	)
	return logger, closeFn, nil
}
