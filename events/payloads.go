package events

// BubbleSpawnedPayload describes a freshly spawned bubble
type BubbleSpawnedPayload struct {
	ID     string
	X      float64
	Radius float64
	Speed  float64
	Poison bool
}

// BubbleSlicedPayload describes a slice hit
// Points and Combo are zero for poison hits
type BubbleSlicedPayload struct {
	ID     string
	X, Y   float64
	Combo  int
	Points int
}

// BubbleEscapedPayload describes a bubble leaving the playfield unsliced
type BubbleEscapedPayload struct {
	ID     string
	Poison bool
}

// LifeLostPayload carries the remaining lives
type LifeLostPayload struct {
	Lives int
}

// LevelUpPayload carries the new level
type LevelUpPayload struct {
	Level int
}

// GameOverReason identifies what ended the session
type GameOverReason int

const (
	GameOverNoLives GameOverReason = iota
	GameOverPoison
)

func (r GameOverReason) String() string {
	if r == GameOverPoison {
		return "poison"
	}
	return "no lives"
}

// GameOverPayload carries the final score and cause
type GameOverPayload struct {
	Score  int
	Reason GameOverReason
}
