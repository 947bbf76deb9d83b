package widget

import (
	"github.com/chatter/keybind/internal/bind"
	"github.com/chatter/keybind/internal/imui"
)

// ShowBindPopup toggles a popup holding a Bind for target when anchor is
// secondary-clicked. The popup closes after a rebind, on Escape, or on a
// press outside it. It reports whether target changed this frame.
func ShowBindPopup(ui *imui.UI, target bind.Target, popupIDSource any, anchor imui.Response) bool {
	popupID := imui.NewID(popupIDSource)
	mem := ui.Memory()

	if anchor.SecondaryClicked() {
		mem.TogglePopup(popupID)
	}

	style := ui.Style()
	saved := style.WindowMargin
	style.WindowMargin = imui.Margin{}
	defer func() { style.WindowMargin = saved }()

	changed, _ := imui.PopupBelow(ui, popupID, anchor, func(ui *imui.UI) bool {
		return NewBind(popupID.With("bind"), target).Show(ui).Changed()
	})
	if changed {
		mem.ClosePopup()
	}
	return changed
}
