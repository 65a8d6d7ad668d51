package render

// RGB color definitions
var (
	RgbBackground = RGB{26, 27, 38} // Tokyo Night background

	RgbBubbleNormal    = RGB{100, 150, 255} // Blue
	RgbBubbleNormalRim = RGB{60, 100, 200}  // Dark blue
	RgbBubblePoison    = RGB{160, 60, 220}  // Purple
	RgbBubblePoisonRim = RGB{110, 30, 160}  // Dark purple
	RgbPoisonSpike     = RGB{200, 120, 255} // Light purple
	RgbBubbleSliced    = RGB{255, 255, 255} // White, faded by opacity

	RgbHeart      = RGB{255, 80, 80}   // Red
	RgbHeartEmpty = RGB{120, 60, 60}   // Dim red
	RgbHUDText    = RGB{255, 255, 255} // White
	RgbHUDBg      = RGB{0, 0, 0}       // Black strip
	RgbCombo      = RGB{255, 215, 0}   // Gold
	RgbPaused     = RGB{135, 206, 250} // Light sky blue

	RgbOverlayBg    = RGB{40, 20, 20}    // Dark red panel
	RgbOverlayTitle = RGB{255, 120, 120} // Bright red
	RgbOverlayText  = RGB{255, 255, 255}
)

// bubbleColors returns fill and rim colors for a bubble view
// Sliced bubbles fade from white toward the background as opacity drops
func bubbleColors(poison, sliced bool, opacity float64) (fill, rim RGB) {
	switch {
	case sliced:
		c := Blend(RgbBackground, RgbBubbleSliced, opacity*0.8)
		return c, c
	case poison:
		return RgbBubblePoison, RgbBubblePoisonRim
	default:
		return RgbBubbleNormal, RgbBubbleNormalRim
	}
}
