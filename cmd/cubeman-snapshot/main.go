// Command cubeman-snapshot renders the figure without a display and writes
// a still, a numbered frame sequence or an animated WebP loop.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cubeman/internal/config"
	"github.com/Faultbox/cubeman/internal/logger"
	"github.com/Faultbox/cubeman/internal/scene"
	"github.com/Faultbox/cubeman/internal/snapshot"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("snapshot failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	sc := cfg.Snapshot
	format, err := snapshot.ParseFormat(sc.Format)
	if err != nil {
		return err
	}

	log := logger.Named("snapshot")
	figure := scene.New()
	view := cfg.StartPreset()
	r := snapshot.NewRenderer(figure, view, sc.Size, sc.Supersample)
	prefix := "cubeman_" + view.String()

	if sc.Frames == 1 && !sc.Animated {
		img, err := r.Frame(sc.Time)
		if err != nil {
			return err
		}
		path := filepath.Join(sc.OutputDir, prefix+format.Ext())
		if err := snapshot.WriteFile(path, img, format); err != nil {
			return err
		}
		log.Info("still written", zap.String("path", path), zap.Float64("time", sc.Time))
		return nil
	}

	started := time.Now()
	times := snapshot.FrameTimes(figure.Clock().Cycle, sc.Frames)
	frames, err := r.RenderSequence(ctx, times, sc.Workers)
	if err != nil {
		return err
	}
	log.Info("frames rendered",
		zap.Int("count", len(frames)),
		zap.Int("workers", sc.Workers),
		zap.Duration("elapsed", time.Since(started)),
	)

	if sc.Animated {
		path := filepath.Join(sc.OutputDir, prefix+".webp")
		if err := snapshot.WriteAnimation(path, snapshot.Images(frames), sc.FrameMs); err != nil {
			return err
		}
		log.Info("animation written", zap.String("path", path), zap.Int("frame_ms", sc.FrameMs))
		return nil
	}

	paths, err := snapshot.WriteSequence(sc.OutputDir, prefix, frames, format)
	if err != nil {
		return err
	}
	log.Info("sequence written", zap.String("first", paths[0]), zap.Int("count", len(paths)))
	return nil
}
