package constant

// System Execution Priorities (lower runs first)
const (
	PriorityBall     = 10
	PriorityOpponent = 20 // After ball, tracks the post-step ball position
)
