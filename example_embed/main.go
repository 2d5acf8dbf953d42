// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Example of headless rendering into Ebitengine: HTML/CSS/JS are served from
// embed.FS (no files on disk) and drawn with package ebitenview.
package main

import (
	"embed"
	"fmt"
	"log"
	"os"

	"github.com/YindSoft/ultralight-go"
	"github.com/YindSoft/ultralight-go/ebitenview"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

//go:embed ui
var uiFiles embed.FS

const (
	screenWidth  = 800
	screenHeight = 600
)

type Game struct {
	fs       *ultralight.FSFileSystem
	renderer *ultralight.Renderer
	view     *ultralight.View
	ui       *ebitenview.View
	counter  int
}

func newGame() (*Game, error) {
	fsys := ultralight.NewFSFileSystem(uiFiles)
	if err := fsys.Preload(); err != nil {
		return nil, err
	}
	if err := ultralight.Init(ultralight.Options{
		FontLoader: true,
		FileSystem: fsys,
		Logger:     ultralight.ZapLogger(ultralight.Logger()),
	}); err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}

	renderer, err := ultralight.NewRenderer(nil)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	view, err := renderer.NewView(screenWidth, screenHeight, nil, nil)
	if err != nil {
		renderer.Close()
		return nil, fmt.Errorf("view: %w", err)
	}
	view.ForwardConsole(ultralight.Logger())

	ui, err := ebitenview.New(view)
	if err != nil {
		view.Close()
		renderer.Close()
		return nil, err
	}
	g := &Game{fs: fsys, renderer: renderer, view: view, ui: ui}
	ui.OnMessage = g.handleMessage
	ui.SetBounds(0, 0, screenWidth, screenHeight)
	ui.SetFocus()

	if err := view.LoadURL(ultralight.FileURL("ui/index.html")); err != nil {
		g.Close()
		return nil, err
	}
	return g, nil
}

func (g *Game) Update() error {
	g.counter++
	ebitenview.Tick(g.renderer)
	if err := g.ui.Update(); err != nil {
		return err
	}
	if g.counter%60 == 0 {
		g.ui.Send(map[string]int{"seconds": g.counter / 60})
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.ui.Draw(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  VFS files: %d", ebiten.ActualFPS(), g.fs.FileCount()))
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func (g *Game) handleMessage(msg string) {
	log.Printf("[embed UI] message: %s", msg)
	data, err := ebitenview.ParseMessage(msg)
	if err != nil {
		log.Printf("[embed UI] bad message: %v", err)
		return
	}
	switch v := data.(type) {
	case string:
		if v == "greet" {
			g.ui.Eval("showMessage('Hello from embedded Go!')")
			return
		}
		g.ui.Send(map[string]string{"echo": v})
	case map[string]any:
		g.ui.Send(map[string]any{"echo": v, "status": "ok"})
	}
}

func (g *Game) Close() {
	g.ui.Close()
	g.view.Close()
	g.renderer.Close()
}

func main() {
	logFile, err := os.Create("logs.log")
	if err == nil {
		log.SetOutput(logFile)
		defer logFile.Close()
	}
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	zl, err := zap.NewDevelopment()
	if err == nil {
		ultralight.SetLogger(zl)
		defer zl.Sync()
	}

	game, err := newGame()
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer game.Close()

	ebiten.SetVsyncEnabled(false)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("ultralight-go - embed.FS example")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("run: %v", err)
	}
}
