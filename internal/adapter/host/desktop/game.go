package desktop

import (
	"context"
	"image/color"

	"evoview/internal/adapter/surface/ebitensurface"
	"evoview/internal/app/input"
	"evoview/internal/app/render"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	buttonFill   = color.RGBA{R: 40, G: 40, B: 40, A: 230}
	buttonBorder = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	textColor    = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// Game hosts the render loop in an ebiten window. Draw is the display
// refresh callback: it runs the frame requested by the previous frame, then
// shows the backing store and the controls.
type Game struct {
	ctx      context.Context
	surface  *ebitensurface.Surface
	controls *input.Controller
	buttons  []Button
	log      *LogPanel
	frames   refresh
}

func NewGame(ctx context.Context, surface *ebitensurface.Surface, controls *input.Controller) *Game {
	log := NewLogPanel(8)
	return &Game{
		ctx:      ctx,
		surface:  surface,
		controls: controls,
		buttons:  []Button{{ID: "train", Label: "train", X: 8, Y: 8, Width: 64, Height: 22}},
		log:      log,
		frames:   refresh{log: log},
	}
}

// Attach sets the loop driven by this window. The loop must use the game as
// its scheduler.
func (g *Game) Attach(loop *render.Loop) {
	g.frames.loop = loop
}

func (g *Game) RequestFrame(fn func()) {
	g.frames.RequestFrame(fn)
}

func (g *Game) Update() error {
	if err := g.ctx.Err(); err != nil {
		return ebiten.Termination
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		x, y := toLogical(cx, cy, g.surface.PixelRatio())
		for _, b := range g.buttons {
			if b.Contains(x, y) {
				g.trigger(b.ID)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.trigger("train")
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.frames.tick(g.ctx)

	if img := g.surface.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	g.drawHUD(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.surface.Resize(float64(outsideWidth), float64(outsideHeight))
	return g.surface.BackingSize()
}

func (g *Game) trigger(id string) {
	out, err := g.controls.Trigger(g.ctx, id)
	if err != nil {
		hlog.CtxWarnf(g.ctx, "control %s: %v", id, err)
		g.log.Add(err.Error())
		return
	}
	g.log.Add(out)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	r := float32(g.surface.PixelRatio())
	if r <= 0 {
		r = 1
	}
	face := basicfont.Face7x13
	for _, b := range g.buttons {
		x, y, w, h := float32(b.X)*r, float32(b.Y)*r, float32(b.Width)*r, float32(b.Height)*r
		vector.DrawFilledRect(screen, x, y, w, h, buttonFill, true)
		vector.StrokeRect(screen, x, y, w, h, r, buttonBorder, true)
		text.Draw(screen, b.Label, face, int(x+6*r), int(y+15*r), textColor)
	}
	lineHeight := int(14 * r)
	height := screen.Bounds().Dy()
	entries := g.log.Entries()
	rows := 0
	for _, e := range entries {
		rows += lineCount(e)
	}
	// text.Draw breaks entries on newlines itself
	y := height - rows*lineHeight + lineHeight/2
	for _, e := range entries {
		text.Draw(screen, e, face, int(8*r), y, textColor)
		y += lineCount(e) * lineHeight
	}
}
