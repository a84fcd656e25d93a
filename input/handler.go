package input

import "github.com/gdamore/tcell/v2"

// RowMapper converts a terminal row into arena-space y
type RowMapper interface {
	ArenaY(row int) float64
}

// Handler translates raw terminal events into intents
type Handler struct {
	rows RowMapper
}

func NewHandler(rows RowMapper) *Handler {
	return &Handler{rows: rows}
}

// Translate maps one terminal event to an intent. Unknown events yield IntentNone
func (h *Handler) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.translateKey(ev)

	case *tcell.EventMouse:
		_, row := ev.Position()
		return Intent{Type: IntentPointer, PointerY: h.rows.ArenaY(row)}

	case *tcell.EventResize:
		w, hgt := ev.Size()
		return Intent{Type: IntentResize, Width: w, Height: hgt}
	}
	return Intent{Type: IntentNone}
}

func (h *Handler) translateKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Type: IntentQuit}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return Intent{Type: IntentQuit}
		case 'p', 'P', ' ':
			return Intent{Type: IntentPause}
		case 'm', 'M':
			return Intent{Type: IntentToggleMute}
		}
	}
	return Intent{Type: IntentNone}
}
