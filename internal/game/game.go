package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings maps each driving control to the keys that hold it.
var keyBindings = [controlCount][]ebiten.Key{
	ControlAccelerate: {ebiten.KeyW, ebiten.KeyArrowUp},
	ControlBrake:      {ebiten.KeyS, ebiten.KeyArrowDown},
	ControlSteerLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	ControlSteerRight: {ebiten.KeyD, ebiten.KeyArrowRight},
}

// Game is the Ebiten host: it polls the keyboard into a KeyState, steps the
// simulation with the measured frame time and draws the world.
type Game struct {
	world   *World
	sprites *Sprites
	keys    *KeyState
	clock   *FrameClock
	feed    *EventFeed

	textBuf   *ebiten.Image // scratch target for checkered text
	showDebug bool
}

// New creates the game for an already generated world.
func New(w *World) *Game {
	return &Game{
		world:   w,
		sprites: NewSprites(w),
		keys:    NewKeyState(),
		clock:   NewFrameClock(),
		feed:    NewEventFeed(),
		textBuf: ebiten.NewImage(ScreenWidth, ScreenHeight),
	}
}

// Keys exposes the held-control set so other input sources can drive it.
func (g *Game) Keys() *KeyState { return g.keys }

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleInput()

	tpf := g.clock.Tick(time.Now())
	before := g.world.Sim.Over
	g.world.Sim.Step(tpf, g.keys.Snapshot())
	g.feed.Sync(g.world.Sim.Log)
	if before == nil && g.world.Sim.Over != nil {
		over := g.world.Sim.Over
		log.Printf("game over at tick %d: %s (%d/%d killed)", over.Tick, over.Reason, g.world.Sim.Kills, g.world.Sim.Total())
	}
	return nil
}

// handleInput samples the bound keys and handles the one-shot shortcuts.
func (g *Game) handleInput() {
	for c, keys := range keyBindings {
		down := false
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				down = true
				break
			}
		}
		g.keys.Set(Control(c), down) // #nosec G115 -- c < controlCount
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		cmd := SeedCommand(g.world.Seed)
		if err := setClipboardText(cmd); err != nil {
			log.Printf("clipboard: %v", err)
		} else {
			log.Printf("copied %q to clipboard", cmd)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showDebug = !g.showDebug
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawScene(screen)
	g.drawHUD(screen)
	g.feed.Draw(screen)
	if over := g.world.Sim.Over; over != nil {
		g.drawGameOver(screen, over)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
