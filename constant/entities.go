package constant

// --- Arena ---
const (
	// ArenaWidth is the horizontal extent of the play field in arena units
	ArenaWidth = 640.0

	// ArenaHeight is the vertical extent of the play field in arena units
	ArenaHeight = 480.0
)

// --- Paddles ---
const (
	PaddleWidth  = 16.0
	PaddleHeight = 100.0

	// PaddleMargin is the gap between a paddle and its side wall
	PaddleMargin = 16.0

	// OpponentSpeed is the tracking paddle's per-frame displacement
	OpponentSpeed = 5.0
)

// --- Ball ---
const (
	BallRadius = 12.0

	// BallSpeed is the horizontal speed reseeded on every reset
	BallSpeed = 6.0

	// BallInitialDX and BallInitialDY are the session-start velocity before the first reset
	BallInitialDX = 6.0
	BallInitialDY = 3.0
)
