package game

import "testing"

func TestEventFeed_RingKeepsNewest(t *testing.T) {
	ef := NewEventFeed()
	for i := 0; i < feedMaxEntries+3; i++ {
		ef.Add(SimLogEntry{Tick: i})
	}
	got := ef.Recent()
	if len(got) != feedMaxEntries {
		t.Fatalf("expected %d entries, got %d", feedMaxEntries, len(got))
	}
	if got[0].Tick != 3 || got[len(got)-1].Tick != feedMaxEntries+2 {
		t.Fatalf("expected ticks 3..%d oldest first, got %d..%d", feedMaxEntries+2, got[0].Tick, got[len(got)-1].Tick)
	}
}

func TestEventFeed_SyncFiltersAndAdvances(t *testing.T) {
	sl := NewSimLog()
	sl.Add(1, logCatCar, logKeyBounce, "building", 100)
	sl.Add(2, logCatPed, logKeyKilled, "#0", 1)
	sl.Add(2, logCatTimer, logKeyBonus, "+1.5s", 60)

	ef := NewEventFeed()
	ef.Sync(sl)
	if got := ef.Recent(); len(got) != 1 || got[0].Key != logKeyKilled {
		t.Fatalf("expected only the kill, got %+v", got)
	}

	sl.Add(9, logCatCar, logKeyWreck, "impact", 550)
	sl.Add(9, logCatState, logKeyGameOver, "wrecked", 40)
	ef.Sync(sl)
	ef.Sync(sl)
	if got := ef.Recent(); len(got) != 3 {
		t.Fatalf("expected 3 entries after second sync (no duplicates), got %d", len(got))
	}
}
