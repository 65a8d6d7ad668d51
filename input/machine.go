// Package input turns terminal events into game actions
package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bubble-slicer/render"
)

// Machine parses tcell events into intents
type Machine struct {
	keyTable *KeyTable
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// Process parses a terminal event and returns an Intent
// Returns nil for events that carry no action
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		return m.processMouse(cx, cy)
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	}
	return nil
}

func (m *Machine) processKey(key tcell.Key, ch rune) *Intent {
	if key == tcell.KeyRune {
		if t, ok := m.keyTable.Runes[ch]; ok {
			return &Intent{Type: t}
		}
		return nil
	}
	if t, ok := m.keyTable.SpecialKeys[key]; ok {
		return &Intent{Type: t}
	}
	return nil
}

// processMouse slices at the pixel centre of the pointer cell
// Any mouse report counts, motion reporting delivers one per cell crossed
func (m *Machine) processMouse(cx, cy int) *Intent {
	x, y, ok := render.CellToPixel(cx, cy)
	if !ok {
		return nil
	}
	return &Intent{Type: IntentSlice, X: x, Y: y}
}
