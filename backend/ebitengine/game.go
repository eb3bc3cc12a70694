package ebitengine

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	gui "github.com/go-theft-auto/widgetgallery"
)

// Options configures Run.
type Options struct {
	Width, Height int
	Title         string
	Style         gui.Style

	// ClearColor fills the screen behind the GUI, packed 0xAABBGGRR.
	ClearColor uint32
}

// Game implements ebiten.Game around a GUI frame function.
type Game struct {
	ui       *gui.GUI
	renderer *Renderer
	input    *InputAdapter
	frame    func(ctx *gui.Context)
	clear    color.RGBA

	width, height int
}

// NewGame creates a game that calls frame once per Update.
func NewGame(opts Options, frame func(ctx *gui.Context)) *Game {
	renderer := NewRenderer(opts.Width, opts.Height)
	r, g, b, a := gui.UnpackRGBA(opts.ClearColor)
	return &Game{
		ui:       gui.New(renderer, gui.WithStyle(opts.Style)),
		renderer: renderer,
		input:    NewInputAdapter(),
		frame:    frame,
		clear:    color.RGBA{R: r, G: g, B: b, A: a},
		width:    opts.Width,
		height:   opts.Height,
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := float32(1 / float64(ebiten.TPS()))
	in := g.input.Update(dt)

	g.renderer.BeginFrame()
	ctx := g.ui.Begin(in, gui.Vec2{X: float32(g.width), Y: float32(g.height)}, dt)
	g.frame(ctx)
	err := g.ui.End()
	g.input.EndFrame()
	if err != nil {
		return fmt.Errorf("gui render: %w", err)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.clear)
	g.renderer.Draw(screen)
}

// Layout implements ebiten.Game. The GUI works in window units.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.ui.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and runs the game until it is closed.
func Run(opts Options, frame func(ctx *gui.Context)) error {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	slog.Info("ebiten backend starting", "width", opts.Width, "height", opts.Height)
	if err := ebiten.RunGame(NewGame(opts, frame)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
