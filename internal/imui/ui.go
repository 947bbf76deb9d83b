package imui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/chatter/keybind/internal/bind"
)

// Pos is a cell position, origin top-left.
type Pos struct {
	X, Y int
}

// Size is a size in cells.
type Size struct {
	W, H int
}

// Rect is an axis-aligned cell rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Pos) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Right is the first column past r.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past r.
func (r Rect) Bottom() int { return r.Y + r.H }

// IsEmpty reports whether r covers no cells.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// Union returns the smallest rectangle covering r and o.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x, y := min(r.X, o.X), min(r.Y, o.Y)
	return Rect{X: x, Y: y, W: max(r.Right(), o.Right()) - x, H: max(r.Bottom(), o.Bottom()) - y}
}

// Response describes how the user interacted with a widget this frame.
type Response struct {
	ID   ID
	Rect Rect

	clicked          bool
	secondaryClicked bool
	clickedElsewhere bool
	changed          bool
}

// Clicked reports a primary press inside the widget.
func (r Response) Clicked() bool { return r.clicked }

// SecondaryClicked reports a secondary press inside the widget.
func (r Response) SecondaryClicked() bool { return r.secondaryClicked }

// ClickedElsewhere reports a press of any button outside the widget.
func (r Response) ClickedElsewhere() bool { return r.clickedElsewhere }

// Changed reports whether the widget changed its value this frame.
func (r Response) Changed() bool { return r.changed }

// MarkChanged records that the widget changed its value.
func (r *Response) MarkChanged() { r.changed = true }

// UI is a region that lays widgets out top to bottom, or left to right
// inside Horizontal.
type UI struct {
	ctx        *Context
	id         ID
	cursor     Pos
	horizontal bool
	overlay    bool
	used       Rect
}

func newUI(ctx *Context, id ID, origin Pos, overlay bool) *UI {
	return &UI{ctx: ctx, id: id, cursor: origin, overlay: overlay}
}

func (ui *UI) Ctx() *Context { return ui.ctx }

func (ui *UI) Input() *Input { return ui.ctx.input }

func (ui *UI) Memory() *Memory { return ui.ctx.Memory }

func (ui *UI) Style() *Style { return ui.ctx.Style }

func (ui *UI) ID() ID { return ui.id }

// UsedRect covers everything allocated so far.
func (ui *UI) UsedRect() Rect { return ui.used }

// IsOverlay reports whether this UI paints above the base layer.
func (ui *UI) IsOverlay() bool { return ui.overlay }

// MakePersistentID scopes source under this UI's ID.
func (ui *UI) MakePersistentID(source any) ID {
	return ui.id.With(source)
}

// Allocate reserves a rectangle of the given size at the cursor.
func (ui *UI) Allocate(size Size) Rect {
	rect := Rect{X: ui.cursor.X, Y: ui.cursor.Y, W: size.W, H: size.H}
	ui.advance(rect)
	return rect
}

func (ui *UI) advance(rect Rect) {
	ui.used = ui.used.Union(rect)
	spacing := ui.ctx.Style.ItemSpacing
	if ui.horizontal {
		ui.cursor.X = rect.Right() + spacing.W
		return
	}
	ui.cursor.Y = rect.Bottom() + spacing.H
}

// Interact hit-tests this frame's pointer presses against rect.
func (ui *UI) Interact(rect Rect, id ID) Response {
	r := Response{ID: id, Rect: rect}
	for _, ev := range ui.ctx.input.Events {
		if ev.Kind != PointerPress {
			continue
		}

		if !rect.Contains(ev.Pos) || ui.occluded(ev.Pos) {
			r.clickedElsewhere = true
			continue
		}

		switch ev.Button {
		case bind.PointerPrimary:
			r.clicked = true
		case bind.PointerSecondary:
			r.secondaryClicked = true
		}
	}
	return r
}

// occluded reports whether p was covered by an overlay last frame. Overlay
// contents are never occluded.
func (ui *UI) occluded(p Pos) bool {
	if ui.overlay {
		return false
	}
	for _, o := range ui.ctx.prevOverlays {
		if o.Contains(p) {
			return true
		}
	}
	return false
}

// Paint draws pre-rendered content with its top-left corner at rect.
func (ui *UI) Paint(rect Rect, content string) {
	ui.ctx.paint(rect, content, ui.overlay)
}

// PaintCentered fills rect with style and centres text in it, truncating
// text that does not fit.
func (ui *UI) PaintCentered(rect Rect, style lipgloss.Style, text string) {
	if rect.IsEmpty() {
		return
	}
	text = ansi.Truncate(text, rect.W, "…")
	pad := rect.W - lipgloss.Width(text)
	line := strings.Repeat(" ", pad/2) + text + strings.Repeat(" ", pad-pad/2)

	blank := strings.Repeat(" ", rect.W)
	lines := make([]string, rect.H)
	for i := range lines {
		lines[i] = blank
	}
	lines[(rect.H-1)/2] = line

	ui.Paint(rect, style.Render(strings.Join(lines, "\n")))
}

// Label paints text and returns its response.
func (ui *UI) Label(text string) Response {
	return ui.styledText(ui.ctx.Style.Label, text, "label")
}

// Button paints a clickable label.
func (ui *UI) Button(text string) Response {
	return ui.styledText(ui.ctx.Style.Button, "["+text+"]", "button")
}

func (ui *UI) styledText(style lipgloss.Style, text, kind string) Response {
	rendered := style.Render(text)
	rect := ui.Allocate(Size{W: lipgloss.Width(rendered), H: lipgloss.Height(rendered)})
	ui.Paint(rect, rendered)
	return ui.Interact(rect, ui.id.With(kind).With(rect))
}

// Space advances the cursor by n cells along the layout direction.
func (ui *UI) Space(n int) {
	if ui.horizontal {
		ui.cursor.X += n
		return
	}
	ui.cursor.Y += n
}

// Horizontal lays out the widgets added by add left to right, then moves
// the cursor below the row.
func (ui *UI) Horizontal(add func(ui *UI)) {
	row := &UI{ctx: ui.ctx, id: ui.id, cursor: ui.cursor, horizontal: true, overlay: ui.overlay}
	add(row)
	if row.used.IsEmpty() {
		return
	}
	ui.advance(Rect{X: ui.cursor.X, Y: ui.cursor.Y, W: row.used.Right() - ui.cursor.X, H: row.used.Bottom() - ui.cursor.Y})
}

// child starts a nested UI at origin with its own ID scope.
func (ui *UI) child(id ID, origin Pos, overlay bool) *UI {
	return newUI(ui.ctx, id, origin, overlay)
}
