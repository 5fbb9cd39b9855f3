package stamp

import (
	"image"
	"image/color"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/colornames"
	"golang.org/x/mobile/event/mouse"

	"github.com/snajper102/Lab1GK/internal/surface"
)

// ColorChoice enumerates the fill color selections offered by the UI.
type ColorChoice int

const (
	ColorRandom ColorChoice = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
)

// Fixed returns the named fill color for a fixed choice. Random and
// out-of-range choices report false.
func (c ColorChoice) Fixed() (color.RGBA, bool) {
	switch c {
	case ColorRed:
		return colornames.Red, true
	case ColorGreen:
		return colornames.Green, true
	case ColorBlue:
		return colornames.Blue, true
	case ColorYellow:
		return colornames.Yellow, true
	}
	return color.RGBA{}, false
}

func (c ColorChoice) String() string {
	switch c {
	case ColorRandom:
		return "random"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	}
	return "unknown"
}

// ShapeChoice enumerates the stamp shapes offered by the UI.
type ShapeChoice int

const (
	ShapeSquare ShapeChoice = iota
	ShapeStar
)

func (s ShapeChoice) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeStar:
		return "star"
	}
	return "unknown"
}

// Selection reports the live UI choices as raw indexes. The controller reads
// it once at drag start and holds the values for the whole drag; indexes
// outside the enumerated sets stamp nothing.
type Selection interface {
	ColorChoice() int
	ShapeChoice() int
}

const (
	// debounceDistance is the minimum Manhattan distance between
	// consecutive stamps.
	debounceDistance = 3
	squareSize       = 40
	starRadius       = 50
	starDivisions    = 13
)

// Controller turns a pointer drag over the surface into a trail of stamped
// shapes. It is a two-state machine: idle until a primary-button press, then
// dragging until the matching release. All methods must be called from the
// event loop goroutine.
type Controller struct {
	surf   *surface.Surface
	sel    Selection
	origin image.Point
	rng    *rand.Rand
	debug  bool

	dragging bool
	start    image.Point
	last     image.Point
	colorIdx int
	shapeIdx int
	session  string
}

// Option modifies a Controller during creation.
type Option func(*Controller)

// WithOrigin sets the window position of the surface's top-left pixel, used
// to translate event coordinates into surface-local ones.
func WithOrigin(p image.Point) Option { return func(c *Controller) { c.origin = p } }

// WithSeed makes the random color source deterministic.
func WithSeed(seed int64) Option {
	return func(c *Controller) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithDebug enables per-session drag logging.
func WithDebug(enabled bool) Option { return func(c *Controller) { c.debug = enabled } }

// NewController creates a controller stamping onto surf with selections read
// from sel.
func NewController(surf *surface.Surface, sel Selection, opts ...Option) *Controller {
	c := &Controller{
		surf: surf,
		sel:  sel,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Dragging reports whether a drag session is active.
func (c *Controller) Dragging() bool { return c.dragging }

// HandleMouse feeds one pointer event to the state machine. It reports
// whether the surface changed and a repaint is needed.
func (c *Controller) HandleMouse(e mouse.Event) bool {
	switch e.Direction {
	case mouse.DirPress:
		return c.press(e)
	case mouse.DirNone:
		return c.move(e)
	case mouse.DirRelease:
		c.release(e)
	}
	return false
}

func (c *Controller) press(e mouse.Event) bool {
	if e.Button != mouse.ButtonLeft || c.dragging {
		return false
	}
	p := c.translate(e.X, e.Y)
	c.dragging = true
	c.start = p
	c.last = p
	c.colorIdx = c.sel.ColorChoice()
	c.shapeIdx = c.sel.ShapeChoice()
	c.session = uuid.NewString()
	if c.debug {
		log.Printf("drag %s: start at %v color=%s shape=%s",
			c.session, p, ColorChoice(c.colorIdx), ShapeChoice(c.shapeIdx))
	}
	return false
}

func (c *Controller) move(e mouse.Event) bool {
	if !c.dragging {
		return false
	}
	p := c.translate(e.X, e.Y)
	if manhattan(p, c.last) < debounceDistance {
		return false
	}
	painted := c.stamp(p)
	c.last = p
	return painted
}

func (c *Controller) release(e mouse.Event) {
	if !c.dragging || e.Button != mouse.ButtonLeft {
		return
	}
	c.dragging = false
	if c.debug {
		log.Printf("drag %s: end at %v", c.session, c.last)
	}
}

// stamp paints one shape at p using the selections frozen at drag start.
// Unmatched color or shape indexes paint nothing; the caller still advances
// the debounce position.
func (c *Controller) stamp(p image.Point) bool {
	col, ok := c.resolveColor()
	if !ok {
		return false
	}
	switch ShapeChoice(c.shapeIdx) {
	case ShapeSquare:
		c.surf.FillColor = col
		pts := squareVertices(p)
		c.surf.FillPoly(pts)
		c.surf.StrokePoly(pts)
		return true
	case ShapeStar:
		c.surf.FillColor = col
		pts := starVertices(p)
		c.surf.FillPoly(pts)
		c.surf.StrokePoly(pts)
		return true
	}
	return false
}

func (c *Controller) resolveColor() (color.RGBA, bool) {
	choice := ColorChoice(c.colorIdx)
	if choice == ColorRandom {
		return color.RGBA{
			R: uint8(c.rng.Intn(256)),
			G: uint8(c.rng.Intn(256)),
			B: uint8(c.rng.Intn(256)),
			A: 255,
		}, true
	}
	return choice.Fixed()
}

func (c *Controller) translate(x, y float32) image.Point {
	return image.Pt(
		int(math.Round(float64(x)-float64(c.origin.X))),
		int(math.Round(float64(y)-float64(c.origin.Y))),
	)
}

// squareVertices lists the corners of the 40x40 axis-aligned square centred
// on p.
func squareVertices(p image.Point) []surface.Point {
	h := float64(squareSize) / 2
	x := float64(p.X)
	y := float64(p.Y)
	return []surface.Point{
		{X: x - h, Y: y - h},
		{X: x + h, Y: y - h},
		{X: x + h, Y: y + h},
		{X: x - h, Y: y + h},
	}
}

// starVertices samples the star outline centred on p: radius 50 at angles
// i*2*pi/13 for i = 0..13 inclusive. The extra revolution step past a clean
// 13-gon closure is deliberate and reproduces the original self-intersecting
// geometry.
func starVertices(p image.Point) []surface.Point {
	pts := make([]surface.Point, 0, starDivisions+1)
	for i := 0; i <= starDivisions; i++ {
		angle := float64(i) * 2 * math.Pi / starDivisions
		pts = append(pts, surface.Point{
			X: float64(p.X) + starRadius*math.Cos(angle),
			Y: float64(p.Y) + starRadius*math.Sin(angle),
		})
	}
	return pts
}

func manhattan(a, b image.Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
