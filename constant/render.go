package constant

import "github.com/gdamore/tcell/v2"

// Net
const (
	NetWidth = 4.0
	NetDash  = 24.0 // dash length, gap is the same length
)

// Entity colors
var (
	PlayerColor   = tcell.NewHexColor(0x4caf50)
	OpponentColor = tcell.NewHexColor(0xe91e63)
	BallColor     = tcell.NewHexColor(0xffc107)
	NetColor      = tcell.NewHexColor(0xffffff)
	StatusColor   = tcell.NewHexColor(0x9e9e9e)
)

// Glyphs
const (
	BlockChar  = '█'
	PaddleChar = BlockChar
	BallChar   = '●'
	NetChar    = '┃'
)

// StatusRows is the number of terminal rows reserved under the arena
const StatusRows = 1
