package play

// startMsg asks the screen to create or restore its game.
type startMsg struct{}

// timerTickMsg is sent every second while the screen is active. owner
// keeps ticks from a closed screen from driving a new one.
type timerTickMsg struct {
	owner *Screen
}

// RefreshMsg is delivered to the root screen when a game is left, so it
// can reload saved games.
type RefreshMsg struct{}
