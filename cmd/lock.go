package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/cursorlock/internal/app"
	"github.com/bnema/cursorlock/internal/chime"
	"github.com/bnema/cursorlock/internal/clip"
	"github.com/bnema/cursorlock/internal/config"
	"github.com/bnema/cursorlock/internal/display"
	"github.com/bnema/cursorlock/internal/errs"
	"github.com/bnema/cursorlock/internal/foreground"
	"github.com/bnema/cursorlock/internal/hotkey"
	"github.com/bnema/cursorlock/internal/logger"
	"github.com/bnema/cursorlock/internal/shutdown"
	"github.com/bnema/cursorlock/internal/ui"
)

func runLock(cmd *cobra.Command, args []string) error {
	if err := config.Init(); err != nil {
		return errs.Init("configuration", err)
	}
	cfg := config.Get()
	logger.SetLevel(cfg.Logging.LogLevel)

	monitor, err := chooseMonitor(cfg.Monitor.Index)
	if err != nil {
		return errs.Init("display selection", err)
	}
	region, err := monitor.Region()
	if err != nil {
		return errs.Init("display selection", err)
	}

	binding, err := chooseBinding(cfg)
	if err != nil {
		return errs.Init("toggle key", err)
	}

	player := chime.NewPlayer(cfg.Chime.Enabled)
	platform, stopSignals, err := newPlatform(cfg, player)
	if err != nil {
		return err
	}
	defer stopSignals()

	fmt.Println(ui.FormatLocking(monitor))
	fmt.Println(ui.FormatBanner(binding.String(), player.Enabled()))

	a := app.New(app.Options{
		Region:          region,
		Binding:         binding,
		Reassert:        cfg.Foreground.Reassert,
		ShutdownTimeout: cfg.Shutdown.Timeout,
		OnToggle: func(enabled bool) {
			fmt.Println(ui.FormatToggle(enabled))
		},
	}, platform)

	if err := a.Run(cmd.Context()); err != nil {
		return err
	}
	if a.Released() {
		fmt.Println(ui.FormatToggle(false))
	}
	return nil
}

// chooseMonitor uses the configured index or asks
func chooseMonitor(index int) (*display.Monitor, error) {
	disp, err := display.New()
	if err != nil {
		return nil, err
	}
	defer disp.Close()

	if index == 0 {
		index, err = ui.SelectMonitor(disp)
		if err != nil {
			return nil, err
		}
	}
	return disp.Select(index)
}

// chooseBinding applies the optional interactive key capture on top of the
// configured binding
func chooseBinding(cfg *config.Config) (hotkey.Binding, error) {
	binding, err := cfg.Binding()
	if err != nil {
		return hotkey.Binding{}, err
	}
	if !cfg.Hotkey.Capture {
		return binding, nil
	}

	custom, err := ui.ConfirmKeyCapture(binding.String())
	if err != nil || !custom {
		return binding, err
	}

	vk, err := ui.CaptureKey(binding.Key)
	if err != nil {
		return hotkey.Binding{}, err
	}
	binding.Key = vk
	return binding, nil
}

// newPlatform builds the OS backends selected by cfg
func newPlatform(cfg *config.Config, notifier clip.Notifier) (app.Platform, func(), error) {
	clipper, err := clip.NewClipper()
	if err != nil {
		return app.Platform{}, nil, errs.Init("pointer confinement", err)
	}

	backend, err := hotkey.NewBackend(cfg.Hotkey.Backend)
	if err != nil {
		return app.Platform{}, nil, errs.Init("hotkey backend", err)
	}

	var hook foreground.Hook
	if cfg.Foreground.Reassert {
		hook, err = foreground.NewHook()
		if err != nil {
			return app.Platform{}, nil, errs.Init("foreground hook", err)
		}
	}

	signals, stop := shutdown.Notify()
	return app.Platform{
		Clipper:    clipper,
		Notifier:   notifier,
		Hotkey:     backend,
		Foreground: hook,
		Signals:    signals,
	}, stop, nil
}
