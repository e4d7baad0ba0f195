package game

// Screen identifies the active top-level game state.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenLoading
	ScreenGame
	ScreenPause
	ScreenGameOver
	ScreenNewGame
	ScreenExitReached
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenLoading:
		return "loading"
	case ScreenGame:
		return "game"
	case ScreenPause:
		return "pause"
	case ScreenGameOver:
		return "game over"
	case ScreenNewGame:
		return "new game"
	case ScreenExitReached:
		return "exit reached"
	default:
		return "unknown"
	}
}

// HUD carries the values the presentation layer draws each frame.
type HUD struct {
	Level int
	Score int
	Timer *GameTimer
}

func NewHUD() *HUD {
	return &HUD{Level: 1}
}

// TimerText is the countdown display, a dash placeholder when no timer
// is active.
func (h *HUD) TimerText() string {
	if h.Timer == nil {
		return "00.00"
	}
	return h.Timer.FormatTime()
}
