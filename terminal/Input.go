package terminal

import (
	"PowerPong/core"

	"github.com/gdamore/tcell"
)

// Translator turns tcell events into core input events. It remembers the
// primary button so that holding it down produces a single click.
type Translator struct {
	surface *Surface
	pressed bool
}

func NewTranslator(surface *Surface) *Translator {
	return &Translator{surface: surface}
}

func (t *Translator) Translate(ev tcell.Event) []core.InputEvent {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		_, row := ev.Position()
		events := []core.InputEvent{core.PointerMoveEvent{Y: t.surface.CanvasY(row)}}

		down := ev.Buttons()&tcell.Button1 != 0
		if down && !t.pressed {
			events = append(events, core.ClickEvent{})
		}
		t.pressed = down
		return events

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return []core.InputEvent{core.QuitEvent{}}
		case tcell.KeyRune:
			return []core.InputEvent{core.KeyPressEvent{Key: ev.Rune()}}
		}
	}
	return nil
}
