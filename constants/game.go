package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the simulation and rendering frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Playfield Constants (pixel space, origin top-left, +y down)
const (
	// DefaultPlayfieldWidth is the playfield width used when no terminal size is known
	DefaultPlayfieldWidth = 800.0

	// DefaultPlayfieldHeight is the playfield height used when no terminal size is known
	DefaultPlayfieldHeight = 600.0
)

// Session Constants
const (
	// InitialLives is the number of lives at session start
	InitialLives = 3

	// InitialLevel is the level at session start
	InitialLevel = 1

	// MaxLevel caps difficulty progression
	MaxLevel = 10

	// LevelScoreThreshold is the score needed per level
	LevelScoreThreshold = 1000
)

// Spawn Constants
const (
	// SpawnInterval is the base delay between spawns at level 1
	SpawnInterval = 1000 * time.Millisecond

	// SpawnIntervalSpeedup shortens the spawn delay per level above 1
	SpawnIntervalSpeedup = 50 * time.Millisecond

	// MinSpawnInterval is the floor for the spawn delay
	MinSpawnInterval = 300 * time.Millisecond

	// BubbleMinRadius is the smallest spawn radius in pixels
	BubbleMinRadius = 20.0

	// BubbleRadiusRange is added to BubbleMinRadius scaled by a uniform draw
	BubbleRadiusRange = 20.0

	// PoisonChance is the probability that a spawned bubble is poison
	PoisonChance = 0.2
)

// Motion Constants (pixels per tick)
const (
	// BaseSpeed is the level 1 base speed
	BaseSpeed = 0.8

	// SpeedPerLevel is added to the base speed for each level above 1
	SpeedPerLevel = 0.3

	// SpeedJitter is the upper bound of the random speed added at spawn
	SpeedJitter = 0.5
)

// Scoring Constants
const (
	// SliceScore is the score for a single slice at multiplier 1
	SliceScore = 100

	// ComboTimeout is the window in which the next slice extends the combo
	ComboTimeout = 1000 * time.Millisecond
)

// Slice Animation Constants
const (
	// SliceAnimationDuration is how long a sliced bubble takes to fade out
	SliceAnimationDuration = 500 * time.Millisecond

	// SliceAnimationGrowth is the extra scale reached at the end of the fade
	SliceAnimationGrowth = 0.5
)
