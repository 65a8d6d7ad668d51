package engine

// BubbleView is a render-only copy of a bubble
type BubbleView struct {
	ID      string
	X, Y    float64
	Radius  float64
	Poison  bool
	Sliced  bool
	Scale   float64
	Opacity float64
}

// Frame is the immutable state handed to the renderer each frame
type Frame struct {
	Width, Height float64
	MaxLives      int
	Stats         Stats
	Bubbles       []BubbleView
}
