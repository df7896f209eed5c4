package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedPanelWidth = 260
	feedMaxEntries = 8
	feedLineHeight = 16
)

// EventFeed is a ring buffer of recent simulation events rendered on-screen.
type EventFeed struct {
	entries []SimLogEntry
	head    int
	count   int
	cursor  int // SimLog entries already consumed
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{entries: make([]SimLogEntry, feedMaxEntries)}
}

// Add appends an entry, evicting the oldest when full.
func (ef *EventFeed) Add(e SimLogEntry) {
	ef.entries[ef.head] = e
	ef.head = (ef.head + 1) % feedMaxEntries
	if ef.count < feedMaxEntries {
		ef.count++
	}
}

// Sync pulls the kill, wreck and game-over events logged since the last call.
func (ef *EventFeed) Sync(sl *SimLog) {
	all := sl.Entries()
	for _, e := range all[ef.cursor:] {
		switch {
		case e.Category == logCatPed,
			e.Category == logCatCar && e.Key == logKeyWreck,
			e.Category == logCatState:
			ef.Add(e)
		}
	}
	ef.cursor = len(all)
}

// Recent returns entries in chronological order (oldest first).
func (ef *EventFeed) Recent() []SimLogEntry {
	result := make([]SimLogEntry, ef.count)
	for i := 0; i < ef.count; i++ {
		idx := (ef.head - ef.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = ef.entries[idx]
	}
	return result
}

// Draw renders the feed in the top-right corner, newest at the bottom.
func (ef *EventFeed) Draw(screen *ebiten.Image) {
	entries := ef.Recent()
	if len(entries) == 0 {
		return
	}
	x := ScreenWidth - feedPanelWidth - 4
	h := len(entries)*feedLineHeight + 4
	vector.FillRect(screen, float32(x), 4, feedPanelWidth, float32(h), color.RGBA{R: 10, G: 10, B: 10, A: 140}, false)

	y := 6
	for i, e := range entries {
		// Highlight the latest entry.
		if i == len(entries)-1 {
			vector.FillRect(screen, float32(x+2), float32(y), feedPanelWidth-4, feedLineHeight, color.RGBA{R: 90, G: 20, B: 20, A: 160}, false)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %s %s", e.Tick, e.Key, e.Value), x+6, y)
		y += feedLineHeight
	}
}
