package game

// GameOverReason is the condition that ended the run.
type GameOverReason int

const (
	ReasonNone GameOverReason = iota
	ReasonTimeUp
	ReasonWrecked
	ReasonCleared
)

func (r GameOverReason) String() string {
	switch r {
	case ReasonTimeUp:
		return "time_up"
	case ReasonWrecked:
		return "wrecked"
	case ReasonCleared:
		return "cleared"
	case ReasonNone:
		return "none"
	default:
		return "unknown"
	}
}

// Won reports whether the reason counts as a victory.
func (r GameOverReason) Won() bool { return r == ReasonCleared }

// Overlay timings in milliseconds since the game ended.
const (
	overlayFadeInMs = 4000.0
	overlayRevealMs = 2000.0
)

// Phase is the top-level state of a run.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseFadeIn        // screen darkens to black
	PhaseReveal        // title shown, curtain lifts off it
	PhaseHold          // title shown until the window closes
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseFadeIn:
		return "fade_in"
	case PhaseReveal:
		return "reveal"
	case PhaseHold:
		return "hold"
	default:
		return "unknown"
	}
}

// GameOver is the latched end of a run. Once created it is never replaced.
type GameOver struct {
	Reason      GameOverReason
	Title       string
	Description string
	Tick        int     // simulation tick that triggered it
	Elapsed     float64 // milliseconds since it triggered
}

func newGameOver(reason GameOverReason, tick int) *GameOver {
	g := &GameOver{Reason: reason, Tick: tick}
	switch reason {
	case ReasonTimeUp:
		g.Title, g.Description = "GAME OVER", "YOU WERE TOO SLOW!"
	case ReasonWrecked:
		g.Title, g.Description = "GAME OVER", "WHY DID YOU BREAK YOUR CAR?!"
	case ReasonCleared:
		g.Title, g.Description = "CONGRATULATIONS", "YOU GOT THEM ALL! THANKS FOR PLAYING!"
	}
	return g
}

// advance accumulates overlay time.
func (g *GameOver) advance(tpf float64) {
	g.Elapsed += tpf
}

// Phase returns the overlay phase for the elapsed time.
func (g *GameOver) Phase() Phase {
	switch {
	case g.Elapsed < overlayFadeInMs:
		return PhaseFadeIn
	case g.Elapsed < overlayFadeInMs+overlayRevealMs:
		return PhaseReveal
	default:
		return PhaseHold
	}
}

// OverlayFrame describes what the game-over overlay draws this frame.
type OverlayFrame struct {
	Backdrop  float64 // opacity of the black layer beneath the title
	ShowTitle bool
	Curtain   float64 // opacity of the black layer over the title
}

// Overlay maps the elapsed time to the overlay layers: the screen darkens
// over the fade-in, then the title appears and the curtain over it fades out.
func (g *GameOver) Overlay() OverlayFrame {
	switch g.Phase() {
	case PhaseFadeIn:
		return OverlayFrame{Backdrop: g.Elapsed / overlayFadeInMs}
	case PhaseReveal:
		return OverlayFrame{
			Backdrop:  1,
			ShowTitle: true,
			Curtain:   1 - (g.Elapsed-overlayFadeInMs)/overlayRevealMs,
		}
	default:
		return OverlayFrame{Backdrop: 1, ShowTitle: true}
	}
}
