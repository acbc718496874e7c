package game

const (
	RoundTime  = 60 // Seconds the drawer has per turn.
	MaxRounds  = 5  // Turns before the game ends.
	GuessBonus = 10 // Points awarded for a correct guess.
)

// PlayerColors is the avatar palette; players take colors in join order.
var PlayerColors = []string{
	"#ef4444", "#3b82f6", "#10b981", "#f59e0b",
	"#8b5cf6", "#ec4899", "#06b6d4", "#f97316",
}
