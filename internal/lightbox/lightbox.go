// Package lightbox implements the gallery viewer's state machine: an
// image index with wraparound, a clamped zoom scale, a pan offset, and
// pointer-gesture handling. It is headless; the presentation layer feeds
// it events and renders its state.
package lightbox

// Gesture and zoom tuning. Zoom steps differ by input: buttons move in
// larger increments than wheel ticks.
const (
	MinScale       = 1.0
	MaxScale       = 3.0
	ButtonZoomStep = 0.5
	WheelZoomStep  = 0.25
	DoubleTapScale = 2.0
	SwipeThreshold = 60.0
)

// Point is a 2D offset in display pixels.
type Point struct {
	X float64
	Y float64
}

// Lightbox holds the viewer state for one image list. Not safe for
// concurrent use; it is driven from a single event loop.
type Lightbox struct {
	images []string

	open  bool
	index int
	scale float64
	pan   Point

	dragging  bool
	dragStart Point
	dragLast  Point
	panOrigin Point
}

// New creates a closed lightbox over the given images.
func New(images []string) *Lightbox {
	return &Lightbox{images: images, scale: MinScale}
}

// OpenAt opens the viewer at the given index, wrapped into range. Opening
// always starts from an identity transform, whatever state the viewer
// closed in. With no images the viewer stays closed.
func (l *Lightbox) OpenAt(index int) {
	if len(l.images) == 0 {
		return
	}
	l.open = true
	l.index = wrap(index, len(l.images))
	l.resetTransform()
}

// Close dismisses the viewer. Backdrop click, close button, and Escape
// all funnel here.
func (l *Lightbox) Close() {
	l.open = false
	l.dragging = false
}

func (l *Lightbox) IsOpen() bool { return l.open }

// Index returns the current image index, always in [0, count).
func (l *Lightbox) Index() int { return l.index }

func (l *Lightbox) Count() int { return len(l.images) }

// Current returns the displayed image, or false when the viewer is
// closed.
func (l *Lightbox) Current() (string, bool) {
	if !l.open {
		return "", false
	}
	return l.images[l.index], true
}

func (l *Lightbox) Scale() float64 { return l.scale }

func (l *Lightbox) Pan() Point { return l.pan }

// Next advances to the following image, wrapping past the end, and
// resets the transform.
func (l *Lightbox) Next() {
	l.step(1)
}

// Prev retreats to the preceding image, wrapping before the start, and
// resets the transform.
func (l *Lightbox) Prev() {
	l.step(-1)
}

func (l *Lightbox) step(delta int) {
	if !l.open {
		return
	}
	l.index = wrap(l.index+delta, len(l.images))
	l.resetTransform()
}

// SetZoom sets the scale, clamped to [MinScale, MaxScale]. Returning to
// MinScale zeroes the pan offset.
func (l *Lightbox) SetZoom(scale float64) {
	if !l.open {
		return
	}
	l.scale = clampScale(scale)
	if l.scale == MinScale {
		l.pan = Point{}
	}
}

// ZoomIn and ZoomOut are the discrete step buttons.
func (l *Lightbox) ZoomIn()  { l.SetZoom(l.scale + ButtonZoomStep) }
func (l *Lightbox) ZoomOut() { l.SetZoom(l.scale - ButtonZoomStep) }

// Wheel adjusts the scale one step per event; a negative delta (scroll
// up) zooms in.
func (l *Lightbox) Wheel(deltaY float64) {
	if deltaY < 0 {
		l.SetZoom(l.scale + WheelZoomStep)
	} else if deltaY > 0 {
		l.SetZoom(l.scale - WheelZoomStep)
	}
}

// DoubleTap toggles between the identity scale and the double-tap zoom
// level.
func (l *Lightbox) DoubleTap() {
	if !l.open {
		return
	}
	if l.scale > MinScale {
		l.SetZoom(MinScale)
	} else {
		l.SetZoom(DoubleTapScale)
	}
}

// Pinch scales continuously by the given factor relative to the current
// scale.
func (l *Lightbox) Pinch(factor float64) {
	if factor <= 0 {
		return
	}
	l.SetZoom(l.scale * factor)
}

// SetPan moves the pan offset. Panning is only meaningful while zoomed;
// at identity scale the offset stays pinned to the origin.
func (l *Lightbox) SetPan(p Point) {
	if !l.open || l.scale <= MinScale {
		return
	}
	l.pan = p
}

// PointerDown begins a drag. While zoomed the drag pans; while unzoomed
// it arms a horizontal swipe.
func (l *Lightbox) PointerDown(p Point) {
	if !l.open {
		return
	}
	l.dragging = true
	l.dragStart = p
	l.dragLast = p
	l.panOrigin = l.pan
}

// PointerMove updates the drag. Pan is the accumulated delta from the
// drag start, applied to the pan offset captured at PointerDown.
func (l *Lightbox) PointerMove(p Point) {
	if !l.dragging {
		return
	}
	l.dragLast = p
	if l.scale > MinScale {
		l.pan = Point{
			X: l.panOrigin.X + (p.X - l.dragStart.X),
			Y: l.panOrigin.Y + (p.Y - l.dragStart.Y),
		}
	}
}

// PointerUp ends the drag. An unzoomed horizontal drag past the swipe
// threshold navigates: dragging rightward reveals the previous image.
func (l *Lightbox) PointerUp() {
	if !l.dragging {
		return
	}
	l.dragging = false

	if l.scale > MinScale {
		return
	}

	delta := l.dragLast.X - l.dragStart.X
	if delta >= SwipeThreshold {
		l.Prev()
	} else if delta <= -SwipeThreshold {
		l.Next()
	}
}

// PointerCancel aborts the drag without navigating.
func (l *Lightbox) PointerCancel() {
	l.dragging = false
}

// Key handles keyboard input the same way the on-screen controls do.
func (l *Lightbox) Key(name string) {
	if !l.open {
		return
	}
	switch name {
	case "Escape":
		l.Close()
	case "ArrowLeft":
		l.Prev()
	case "ArrowRight":
		l.Next()
	}
}

func (l *Lightbox) resetTransform() {
	l.scale = MinScale
	l.pan = Point{}
}

func clampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}

func wrap(i, count int) int {
	i %= count
	if i < 0 {
		i += count
	}
	return i
}
