package timerview

import "fyne.io/fyne/v2"

// ratioLayout stacks two objects vertically, splitting the height by the
// upper and lower fractions. Both objects span the full width.
type ratioLayout struct {
	upper float32
	lower float32
}

func newRatioLayout() *ratioLayout {
	return &ratioLayout{upper: 0, lower: 1}
}

func (layout *ratioLayout) setRatios(upper, lower float64) {
	layout.upper = float32(upper)
	layout.lower = float32(lower)
}

func (layout *ratioLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	top := objects[0]
	bottom := objects[1]

	total := layout.upper + layout.lower
	share := float32(0.5)
	if total > 0 {
		share = layout.upper / total
	}
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}

	topHeight := size.Height * share
	top.Move(fyne.NewPos(0, 0))
	top.Resize(fyne.NewSize(size.Width, topHeight))
	bottom.Move(fyne.NewPos(0, topHeight))
	bottom.Resize(fyne.NewSize(size.Width, size.Height-topHeight))
}

func (layout *ratioLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, 0)
}
