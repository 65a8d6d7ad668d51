package engine

// AudioPlayer plays game feedback sounds
// Implementations must not block the game loop
type AudioPlayer interface {
	PlaySlice(combo int)
	PlayPoison()
	PlayLifeLost()
	PlayLevelUp()
	PlayGameOver()
}
