package constant

// Bounce and tracking tuning
const (
	// SpinFactor couples the contact offset from paddle center into the ball's dy
	SpinFactor = 0.15

	// OpponentDeadZone is the half-height of the band around the opponent's center
	// inside which it holds still
	OpponentDeadZone = 15.0

	// ResetSpreadFactor bounds post-reset |dy| to this fraction of BallSpeed
	ResetSpreadFactor = 0.7
)
