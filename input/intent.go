package input

// IntentType identifies the semantic action parsed from a terminal event
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentSlice
	IntentRestart
	IntentTogglePause
	IntentToggleMute
	IntentResize
	IntentQuit
)

var intentNames = map[IntentType]string{
	IntentNone:        "None",
	IntentSlice:       "Slice",
	IntentRestart:     "Restart",
	IntentTogglePause: "TogglePause",
	IntentToggleMute:  "ToggleMute",
	IntentResize:      "Resize",
	IntentQuit:        "Quit",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Intent is a parsed action, X and Y are playfield pixels for IntentSlice
type Intent struct {
	Type IntentType
	X, Y float64
}
