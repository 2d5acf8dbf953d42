// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Example of the AppCore layer: a native window with an HTML overlay, a Go
// function bound into the page and console output forwarded to zap.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/YindSoft/ultralight-go"
	"go.uber.org/zap"
)

const (
	windowWidth  = 900
	windowHeight = 600
)

const page = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: sans-serif; background: #1e1e28; color: #eee; padding: 24px; }
  button { font-size: 16px; padding: 8px 16px; }
  #out { margin-top: 16px; color: #7fd; }
</style>
</head>
<body>
  <h1>ultralight-go</h1>
  <p>Resize the window or press the button.</p>
  <button onclick="greet()">Ask Go</button>
  <div id="out"></div>
  <script>
    function greet() {
      document.getElementById('out').textContent = goGreeting('page');
      console.log('greeted at', goTime());
    }
  </script>
</body>
</html>`

func main() {
	configPath := flag.String("config", "ultralight.yaml", "path to a YAML options file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(*configPath, log); err != nil {
		log.Fatal("example failed", zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func run(configPath string, log *zap.Logger) error {
	opts, err := ultralight.ReadOptions(configPath)
	if err != nil {
		return err
	}
	ultralight.SetLogger(log)
	opts.Logger = ultralight.ZapLogger(log)
	opts.FontLoader = true
	if err := ultralight.Init(opts); err != nil {
		return err
	}

	settings, err := ultralight.NewSettings()
	if err != nil {
		return err
	}
	defer settings.Close()
	if err := opts.Settings.Apply(settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	config, err := ultralight.NewConfig()
	if err != nil {
		return err
	}
	defer config.Close()
	if err := opts.Config.Apply(config); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	app, err := ultralight.NewApp(settings, config)
	if err != nil {
		return err
	}
	defer app.Close()

	monitor, err := app.MainMonitor()
	if err != nil {
		return err
	}
	log.Info("main monitor",
		zap.Uint32("width", monitor.Width()),
		zap.Uint32("height", monitor.Height()),
		zap.Float64("scale", monitor.Scale()))

	flags := ultralight.WindowTitled | ultralight.WindowResizable | ultralight.WindowMaximizable
	window, err := ultralight.NewWindow(monitor, windowWidth, windowHeight, false, flags)
	if err != nil {
		return err
	}
	defer window.Close()
	window.SetTitle("ultralight-go - AppCore example")
	app.SetWindow(window)

	overlay, err := ultralight.NewOverlay(window, window.Width(), window.Height(), 0, 0)
	if err != nil {
		return err
	}
	defer overlay.Close()

	view, err := overlay.View()
	if err != nil {
		return err
	}
	view.ForwardConsole(log)
	view.OnWindowObjectReady(func(v *ultralight.View, _ uint64, isMainFrame bool, _ string) {
		if !isMainFrame {
			return
		}
		bind(v, log)
	})
	view.OnDOMReady(func(v *ultralight.View, frameID uint64, isMainFrame bool, url string) {
		log.Info("dom ready", zap.Uint64("frame", frameID), zap.Bool("main", isMainFrame), zap.String("url", url))
	})
	view.OnChangeTitle(func(_ *ultralight.View, title string) {
		window.SetTitle(title)
	})
	view.OnChangeCursor(func(_ *ultralight.View, c ultralight.Cursor) {
		window.SetCursor(c)
	})
	view.OnFailLoading(func(_ *ultralight.View, err *ultralight.LoadError) {
		log.Error("load failed", zap.Error(err))
	})

	window.OnResize(func(width, height uint32) {
		overlay.Resize(width, height)
	})
	window.OnClose(func() {
		log.Info("window closed")
		app.Quit()
	})

	if err := view.LoadHTML(page); err != nil {
		return err
	}
	app.Run()
	return nil
}

func bind(v *ultralight.View, log *zap.Logger) {
	err := v.BindFunction("goGreeting", func(args []any) (any, error) {
		who := "stranger"
		if len(args) > 0 {
			if s, ok := args[0].(string); ok {
				who = s
			}
		}
		return fmt.Sprintf("Hello %s, from Go!", who), nil
	})
	if err != nil {
		log.Warn("bind goGreeting", zap.Error(err))
	}
	err = v.BindFunction("goTime", func([]any) (any, error) {
		return time.Now().Format(time.TimeOnly), nil
	})
	if err != nil {
		log.Warn("bind goTime", zap.Error(err))
	}
}
