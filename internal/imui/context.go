package imui

import (
	"charm.land/lipgloss/v2"

	"github.com/chatter/keybind/internal/logger"
)

// rootID scopes every top-level widget ID.
var rootID = NewID("root")

// Context owns everything that persists between frames.
type Context struct {
	Memory *Memory
	Style  *Style
	Log    *logger.Logger

	input  *Input
	width  int
	height int
	frame  uint64

	baseLayers    []*lipgloss.Layer
	overlayLayers []*lipgloss.Layer

	// Overlay rectangles painted this frame and the previous one. Base-layer
	// widgets ignore presses that land inside last frame's overlays.
	overlays     []Rect
	prevOverlays []Rect

	claimed bool
}

// NewContext creates a Context with default style and empty memory.
// A nil log discards everything.
func NewContext(log *logger.Logger) *Context {
	if log == nil {
		log = logger.Discard()
	}
	return &Context{
		Memory: NewMemory(),
		Style:  DefaultStyle(),
		Log:    log,
		input:  newInput(),
	}
}

// SetSize records the terminal size.
func (c *Context) SetSize(width, height int) {
	c.width, c.height = width, height
}

// Size returns the terminal size.
func (c *Context) Size() Size {
	return Size{W: c.width, H: c.height}
}

// Input returns the snapshot of the current frame.
func (c *Context) Input() *Input {
	return c.input
}

// FrameNumber counts frames since the Context was created.
func (c *Context) FrameNumber() uint64 {
	return c.frame
}

// ClaimInput marks this frame's input as consumed by a widget, so that
// application shortcuts can stand aside.
func (c *Context) ClaimInput() {
	c.claimed = true
}

// InputClaimed reports whether a widget claimed this frame's input.
func (c *Context) InputClaimed() bool {
	return c.claimed
}

// Frame runs one frame over events and returns the composed view.
func (c *Context) Frame(events []Event, run func(ui *UI)) string {
	c.frame++
	c.claimed = false
	c.input.begin(events)

	c.baseLayers = c.baseLayers[:0]
	c.overlayLayers = c.overlayLayers[:0]
	c.prevOverlays, c.overlays = c.overlays, c.prevOverlays[:0]

	run(newUI(c, rootID, Pos{}, false))

	return c.render()
}

func (c *Context) paint(rect Rect, content string, overlay bool) {
	layer := lipgloss.NewLayer(content).X(rect.X).Y(rect.Y)
	if overlay {
		c.overlayLayers = append(c.overlayLayers, layer)
		return
	}
	c.baseLayers = append(c.baseLayers, layer)
}

// insertOverlay paints beneath overlay layers added after index at.
func (c *Context) insertOverlay(at int, rect Rect, content string) {
	layer := lipgloss.NewLayer(content).X(rect.X).Y(rect.Y)
	c.overlayLayers = append(c.overlayLayers, nil)
	copy(c.overlayLayers[at+1:], c.overlayLayers[at:])
	c.overlayLayers[at] = layer
}

func (c *Context) render() string {
	layers := make([]*lipgloss.Layer, 0, len(c.baseLayers)+len(c.overlayLayers))
	layers = append(layers, c.baseLayers...)
	layers = append(layers, c.overlayLayers...)
	if len(layers) == 0 {
		return ""
	}
	return lipgloss.NewCompositor(layers...).Render()
}
