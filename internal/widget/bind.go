// Package widget provides the key binding capture widget.
//
// A Bind shows the current binding of a bind.Target. Clicking it arms
// capture; the next key or pointer press the target can represent is stored
// as the new binding. Escape clears targets that can be unbound, and a click
// anywhere else cancels.
package widget

import (
	"github.com/chatter/keybind/internal/bind"
	"github.com/chatter/keybind/internal/imui"
)

// Bind is rebuilt every frame. Whether it is capturing lives in the
// Context's Memory under its ID.
type Bind struct {
	idSource any
	target   bind.Target
}

// NewBind creates a widget editing target. idSource must be stable across
// frames and unique among its siblings.
func NewBind(idSource any, target bind.Target) *Bind {
	return &Bind{idSource: idSource, target: target}
}

// Show runs the widget for one frame. The response reports Changed when the
// binding was replaced or cleared this frame.
func (b *Bind) Show(ui *imui.UI) imui.Response {
	id := ui.MakePersistentID(b.idSource)
	mem := ui.Memory()
	capturing, _ := mem.Bool(id)

	rect := ui.Allocate(ui.Style().InteractSize)
	resp := ui.Interact(rect, id)

	switch {
	case capturing:
		ui.Ctx().ClaimInput()

		if ev, ok := ui.Input().FirstPress(); ok && b.capture(ui, ev) {
			resp.MarkChanged()
			capturing = false
		} else if resp.ClickedElsewhere() {
			ui.Ctx().Log.Debug("bind capture cancelled", "id", id)
			capturing = false
		}
	case resp.Clicked():
		ui.Ctx().Log.Debug("bind capture armed", "id", id)
		capturing = true
	}
	mem.SetBool(id, capturing)

	ui.PaintCentered(rect, ui.Style().Interact(capturing), b.target.Format())
	return resp
}

// capture applies ev to the target if the target can take it. Escape
// clears when possible and otherwise binds like any other key.
func (b *Bind) capture(ui *imui.UI, ev imui.Event) bool {
	caps := b.target.Caps()
	log := ui.Ctx().Log

	switch ev.Kind {
	case imui.KeyPress:
		if ev.Key == bind.KeyEscape && caps.Clearable {
			b.target.Clear()
			log.Debug("bind cleared")
			return true
		}
		if caps.AcceptsKey {
			b.target.SetKey(ev.Key, ev.Mods)
			log.Debug("bind set", "key", ev.Key, "mods", ev.Mods, "label", b.target.Format())
			return true
		}
	case imui.PointerPress:
		if !caps.AcceptsPointer {
			return false
		}
		if ev.Button == bind.PointerPrimary && !caps.BindPrimary {
			return false
		}
		b.target.SetPointer(ev.Button, ev.Mods)
		log.Debug("bind set", "pointer", ev.Button, "mods", ev.Mods, "label", b.target.Format())
		return true
	}
	return false
}
