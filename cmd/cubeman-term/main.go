// Command cubeman-term shows the animated figure in a text terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/cubeman/internal/config"
	"github.com/Faultbox/cubeman/internal/logger"
	"github.com/Faultbox/cubeman/internal/scene"
	"github.com/Faultbox/cubeman/internal/terminal"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// The terminal owns stdout; logs go to the file only
	if cfg.Logging.LogFile != "" {
		fileCfg := logger.DefaultFileConfig(cfg.Logging.LogFile)
		if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, false); err != nil {
			fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Terminal error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Terminal error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	p := terminal.New(screen, scene.New(), cfg.StartPreset(), cfg.Terminal.FPS)
	err = p.Run(ctx)
	stop()
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("preview error", zap.Error(err))
		os.Exit(1)
	}
}
