package imui

import (
	"strings"

	"github.com/chatter/keybind/internal/bind"
)

// frameBorder is the cell width of the popup border on each side.
const frameBorder = 1

// PopupBelow shows the popup id directly below anchor if it is open. The
// popup closes on Escape or on a press outside both the popup and anchor.
// Whether it is open is owned by Memory; callers open it with OpenPopup or
// TogglePopup.
func PopupBelow[R any](ui *UI, id ID, anchor Response, add func(ui *UI) R) (R, bool) {
	var zero R
	mem := ui.Memory()
	if !mem.IsPopupOpen(id) {
		return zero, false
	}

	ctx := ui.ctx
	margin := ctx.Style.WindowMargin
	origin := Pos{X: anchor.Rect.X, Y: anchor.Rect.Bottom()}
	inner := Pos{
		X: origin.X + frameBorder + margin.Left,
		Y: origin.Y + frameBorder + margin.Top,
	}

	at := len(ctx.overlayLayers)
	content := ui.child(id, inner, true)
	result := add(content)

	used := content.used
	innerW := max(used.Right()-inner.X, 0) + margin.Left + margin.Right
	innerH := max(used.Bottom()-inner.Y, 0) + margin.Top + margin.Bottom
	rect := Rect{
		X: origin.X,
		Y: origin.Y,
		W: innerW + 2*frameBorder,
		H: innerH + 2*frameBorder,
	}
	ctx.insertOverlay(at, rect, renderFrame(ctx.Style, innerW, innerH))
	ctx.overlays = append(ctx.overlays, rect)

	if popupDismissed(ui.Input(), rect, anchor.Rect) {
		ctx.Log.Debug("popup dismissed", "id", id)
		mem.ClosePopup()
	}
	return result, true
}

func renderFrame(style *Style, w, h int) string {
	blank := strings.Repeat(" ", w)
	lines := make([]string, max(h, 0))
	for i := range lines {
		lines[i] = blank
	}
	return style.Frame.Render(strings.Join(lines, "\n"))
}

func popupDismissed(in *Input, popup, anchor Rect) bool {
	if in.KeyPressed(bind.KeyEscape) {
		return true
	}
	for _, ev := range in.Events {
		if ev.Kind == PointerPress && !popup.Contains(ev.Pos) && !anchor.Contains(ev.Pos) {
			return true
		}
	}
	return false
}
