package constants

// Terminal Mapping Constants
const (
	// CellWidthPx is the playfield width covered by one terminal column
	CellWidthPx = 8.0

	// CellHeightPx is the playfield height covered by one terminal row
	CellHeightPx = 16.0

	// HUDRows is the number of terminal rows reserved for the heads-up display
	HUDRows = 1
)

// HUD Text
const (
	HeartFull      = '♥'
	HeartEmpty     = '♡'
	GameOverTitle  = "Game Over!"
	GameOverPrompt = "press r to play again, q to quit"
	PausedTitle    = "PAUSED"
)

// Poison bubble decoration
const (
	// PoisonSpikeCount is the number of spikes drawn around a poison bubble
	PoisonSpikeCount = 8

	// PoisonSpikeLength is the spike length relative to the bubble radius
	PoisonSpikeLength = 0.3
)
