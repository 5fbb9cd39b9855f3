// Package board runs the interactive sketch window: a toolbar of color and
// shape selectors above a drawing surface that stamps shapes along mouse
// drags.
package board

import (
	"fmt"
	"image"
	"image/draw"
	"log"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/snajper102/Lab1GK/internal/clipboard"
	"github.com/snajper102/Lab1GK/internal/notify"
	"github.com/snajper102/Lab1GK/internal/stamp"
	"github.com/snajper102/Lab1GK/internal/surface"
	"github.com/snajper102/Lab1GK/internal/theme"
)

const statusDuration = 3 * time.Second

// Board holds the window state for one sketch session.
type Board struct {
	width    int
	height   int
	theme    *theme.Theme
	notifier *notify.Notifier
	seed     int64
	hasSeed  bool
	debug    bool

	sel     selectionState
	surf    *surface.Surface
	ctrl    *stamp.Controller
	tb      *toolbar
	winSize image.Point

	status      string
	statusUntil time.Time
}

// Option configures a Board.
type Option func(*Board)

func WithSize(w, h int) Option {
	return func(b *Board) {
		if w > 0 {
			b.width = w
		}
		if h > 0 {
			b.height = h
		}
	}
}

func WithColorChoice(c int) Option {
	return func(b *Board) { b.sel.color = c }
}

func WithShapeChoice(s int) Option {
	return func(b *Board) { b.sel.shape = s }
}

func WithTheme(th *theme.Theme) Option {
	return func(b *Board) {
		if th != nil {
			b.theme = th
		}
	}
}

func WithSeed(seed int64) Option {
	return func(b *Board) {
		b.seed = seed
		b.hasSeed = true
	}
}

func WithNotifier(n *notify.Notifier) Option {
	return func(b *Board) { b.notifier = n }
}

func WithDebug(d bool) Option {
	return func(b *Board) { b.debug = d }
}

// New returns a Board with defaults applied, then opts.
func New(opts ...Option) *Board {
	b := &Board{
		width:  800,
		height: 600,
		theme:  theme.Default(),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Run opens the window and blocks until it is closed.
func (b *Board) Run() error {
	driver.Main(b.main)
	return nil
}

func (b *Board) main(s screen.Screen) {
	b.surf = surface.New(b.width, b.height)
	b.surf.Clear(b.theme.CanvasBackground)

	ctrlOpts := []stamp.Option{
		stamp.WithOrigin(image.Pt(0, toolbarHeight)),
		stamp.WithDebug(b.debug),
	}
	if b.hasSeed {
		ctrlOpts = append(ctrlOpts, stamp.WithSeed(b.seed))
	}
	b.ctrl = stamp.NewController(b.surf, &b.sel, ctrlOpts...)
	b.tb = newToolbar()

	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  b.width,
		Height: b.height + toolbarHeight,
		Title:  "Lab1GK",
	})
	if err != nil {
		log.Printf("cannot open window: %v", err)
		return
	}
	defer w.Release()

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			b.winSize = image.Pt(e.WidthPx, e.HeightPx)
			b.tb.layout(b.winSize.X)
		case paint.Event:
			b.publish(s, w)
		case mouse.Event:
			if b.handleMouse(e) {
				w.Send(paint.Event{})
			}
		case key.Event:
			quit, repaint := b.handleKey(e)
			if quit {
				return
			}
			if repaint {
				w.Send(paint.Event{})
			}
		case error:
			log.Printf("window event error: %v", e)
		}
	}
}

// handleMouse routes toolbar presses to the selection and everything else to
// the stamp controller. Releases and mid-drag events always reach the
// controller, wherever the pointer is, so a drag ended over the toolbar still
// disarms. It reports whether the window needs repainting.
func (b *Board) handleMouse(e mouse.Event) bool {
	p := image.Pt(int(e.X), int(e.Y))
	if e.Direction != mouse.DirRelease && !b.ctrl.Dragging() && p.Y < toolbarHeight {
		if e.Direction == mouse.DirPress && e.Button == mouse.ButtonLeft {
			return b.tb.click(p, &b.sel)
		}
		return b.tb.hover(p)
	}
	changed := b.tb.hover(image.Pt(-1, -1))
	return b.ctrl.HandleMouse(e) || changed
}

func (b *Board) handleKey(e key.Event) (quit, repaint bool) {
	if e.Direction != key.DirPress {
		return false, false
	}
	switch e.Code {
	case key.CodeQ, key.CodeEscape:
		return true, false
	case key.CodeN:
		b.surf.Clear(b.theme.CanvasBackground)
		b.setStatus("cleared")
		return false, true
	case key.CodeC:
		b.copyToClipboard()
		return false, true
	}
	return false, false
}

func (b *Board) copyToClipboard() {
	if err := clipboard.WriteImage(b.surf.RGBA()); err != nil {
		b.setStatus(fmt.Sprintf("copy failed: %v", err))
		log.Printf("clipboard copy failed: %v", err)
		return
	}
	b.setStatus("copied to clipboard")
	b.notifier.Copy("sketch", b.surf.RGBA())
}

func (b *Board) setStatus(msg string) {
	b.status = msg
	b.statusUntil = time.Now().Add(statusDuration)
}

// publish composes the toolbar, canvas and status line into a window buffer
// and uploads it.
func (b *Board) publish(s screen.Screen, w screen.Window) {
	if b.winSize.X == 0 || b.winSize.Y == 0 {
		return
	}
	buf, err := s.NewBuffer(b.winSize)
	if err != nil {
		log.Printf("cannot allocate window buffer: %v", err)
		return
	}
	defer buf.Release()

	dst := buf.RGBA()
	draw.Draw(dst, dst.Bounds(), &image.Uniform{b.theme.CanvasBackground}, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds().Add(image.Pt(0, toolbarHeight)), b.surf.RGBA(), image.Point{}, draw.Src)
	b.tb.draw(dst, b.theme, &b.sel)
	if b.status != "" && time.Now().Before(b.statusUntil) {
		drawStatus(dst, b.theme, b.status)
	}

	w.Upload(image.Point{}, buf, dst.Bounds())
	w.Publish()
}

func drawStatus(dst *image.RGBA, th *theme.Theme, msg string) {
	bounds := dst.Bounds()
	bar := image.Rect(bounds.Min.X, bounds.Max.Y-20, bounds.Max.X, bounds.Max.Y)
	draw.Draw(dst, bar, &image.Uniform{th.StatusBackground}, image.Point{}, draw.Src)
	drawLabel(dst, th.StatusText, bar.Min.X+6, bar.Max.Y-6, msg)
}
