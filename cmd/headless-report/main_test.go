package main

import (
	"testing"

	"github.com/Garsondee/Carnobyl/internal/game"
)

func TestCollectEvents_CountsKillsAndCrashes(t *testing.T) {
	sl := game.NewSimLog()
	sl.Add(3, "car", "bounce", "building at (12,13)", 120)
	sl.Add(10, "ped", "killed", "#4 at (1200,1300)", 1)
	sl.Add(10, "timer", "bonus", "+1.5s", 58)
	sl.Add(25, "ped", "killed", "#9 at (1300,1300)", 2)
	sl.Add(40, "car", "bounce", "building at (12,14)", 510)
	sl.Add(40, "car", "wreck", "impact at 510.0", 510)

	var rs runStats
	collectEvents(&rs, sl.Entries())
	if rs.firstKillTick != 10 || rs.lastKillTick != 25 {
		t.Fatalf("expected kills at ticks 10..25, got %d..%d", rs.firstKillTick, rs.lastKillTick)
	}
	if rs.bounces != 2 || rs.wrecks != 1 {
		t.Fatalf("expected bounces=2 wrecks=1, got bounces=%d wrecks=%d", rs.bounces, rs.wrecks)
	}
}

func TestCollectEvents_NoKills(t *testing.T) {
	var rs runStats
	collectEvents(&rs, nil)
	if rs.firstKillTick != -1 || rs.lastKillTick != -1 {
		t.Fatalf("expected -1 kill ticks with no events, got %d/%d", rs.firstKillTick, rs.lastKillTick)
	}
	if got := tickString(rs.firstKillTick); got != "n/a" {
		t.Fatalf("expected n/a, got %q", got)
	}
}

func TestAvgTickString(t *testing.T) {
	if got := avgTickString(nil); got != "n/a" {
		t.Fatalf("expected n/a for empty input, got %q", got)
	}
	if got := avgTickString([]int{10, 20, 33}); got != "21.0" {
		t.Fatalf("expected 21.0, got %q", got)
	}
}

func TestJoinCounts_Sorted(t *testing.T) {
	got := joinCounts(map[string]int{"time_up": 2, "cleared": 1})
	if got != "cleared=1,time_up=2" {
		t.Fatalf("unexpected join: %q", got)
	}
	if joinCounts(nil) != "none" {
		t.Fatal("expected none for empty map")
	}
}

func TestRunAutopilot_Deterministic(t *testing.T) {
	a := runAutopilot(1, 42, 600, 1000.0/60, false)
	b := runAutopilot(1, 42, 600, 1000.0/60, false)
	if a != b {
		t.Fatalf("same seed gave different runs:\n%+v\n%+v", a, b)
	}
	if a.total != 20 || a.blocks != 1 {
		t.Fatalf("seed 42 should give 1 block and 20 pedestrians, got blocks=%d total=%d", a.blocks, a.total)
	}
}
