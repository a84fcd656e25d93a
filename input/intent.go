package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Esc, Ctrl+C, q
	IntentPause      // p, Space
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Mouse
	IntentPointer // Motion or click over the arena
)

// Intent is the translated form of one terminal event
type Intent struct {
	Type IntentType

	// PointerY is the arena-space y for IntentPointer
	PointerY float64

	// Width and Height carry the new terminal size for IntentResize
	Width, Height int
}
