package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Carmen-Shannon/oxy-sleeve/engine"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/backdrop"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/camera"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/mailbox"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/renderer"
	"github.com/Carmen-Shannon/oxy-sleeve/engine/window"
	"github.com/Carmen-Shannon/oxy-sleeve/internal/appconfig"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var headless bool
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the sleeve viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			prov, err := ctx.newProvisioner(logger)
			if err != nil {
				return err
			}
			store, closeStore, err := ctx.openStore(prov, logger)
			if err != nil {
				return err
			}
			defer closeStore()

			options := engineOptions(cfg.Config, logger)
			if headless {
				r, err := renderer.NewRenderer(renderer.BackendTypeHeadless, nil,
					renderer.WithSize(cfg.Window.Width, cfg.Window.Height),
					renderer.WithRenderScale(float32(cfg.Window.RenderScale)),
					renderer.WithLogger(logger),
				)
				if err != nil {
					return err
				}
				options = append(options, engine.WithRenderer(r))
			} else {
				win, r, err := openWindow(cfg.Config, logger)
				if err != nil {
					return err
				}
				options = append(options, engine.WithWindow(win), engine.WithRenderer(r))
			}

			e := engine.NewEngine(store, prov, options...)
			defer e.Release()

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if duration > 0 {
				var cancel context.CancelFunc
				runCtx, cancel = context.WithTimeout(runCtx, duration)
				defer cancel()
			}

			logger.Info("sleeve viewer started",
				slog.String("session", e.SessionID()),
				slog.Bool("headless", headless),
				slog.String("config", cfg.path),
			)
			err = e.Run(runCtx)
			if errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&headless, "headless", false, "Run the frame loop without opening a window")
	cmd.Flags().DurationVar(&duration, "duration", 0, "Stop after the given duration (0 runs until closed)")
	return cmd
}

func openWindow(cfg *appconfig.Config, logger *slog.Logger) (window.Window, renderer.Renderer, error) {
	win, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("open window: %w", err)
	}

	mode := renderer.PresentModeVSync
	if cfg.Window.PresentMode == appconfig.PresentUncapped {
		mode = renderer.PresentModeUncapped
	}
	r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, win,
		renderer.WithPresentMode(mode),
		renderer.WithRenderScale(float32(cfg.Window.RenderScale)),
		renderer.WithForceSoftwareRenderer(cfg.Window.Software),
		renderer.WithLogger(logger),
	)
	if err != nil {
		win.Close()
		return nil, nil, fmt.Errorf("create renderer: %w", err)
	}
	return win, r, nil
}

// engineOptions maps the application config onto engine options shared by every command that builds an engine.
func engineOptions(cfg *appconfig.Config, logger *slog.Logger) []engine.EngineBuilderOption {
	controller := camera.NewCameraController(
		camera.WithZoomSpeed(float32(cfg.Camera.ZoomSpeed)),
		camera.WithRadiusBounds(float32(cfg.Camera.MinDistance), float32(cfg.Camera.MaxDistance)),
	)
	return []engine.EngineBuilderOption{
		engine.WithLogger(logger),
		engine.WithExecutor(mailbox.NewPoolExecutor(cfg.Backdrop.Workers)),
		engine.WithCamera(camera.NewCamera(camera.WithController(controller))),
		engine.WithOrbitHeight(float32(cfg.Camera.OrbitHeight)),
		engine.WithDragSensitivity(float32(cfg.Camera.DragSensitivity)),
		engine.WithBackdropOptions(
			backdrop.WithScale(cfg.Backdrop.Scale),
			backdrop.WithBlurRadius(cfg.Backdrop.BlurRadius),
			backdrop.WithBrightness(cfg.Backdrop.Brightness),
			backdrop.WithFloorRepeat(float32(cfg.Backdrop.FloorRepeat)),
		),
		engine.WithSnapshotDir(cfg.Snapshot.Dir),
		engine.WithSnapshotSize(cfg.Snapshot.Width, cfg.Snapshot.Height),
		engine.WithRenderFrameLimit(cfg.Render.FrameLimit),
		engine.WithProfiling(cfg.Render.Profiling),
	}
}
