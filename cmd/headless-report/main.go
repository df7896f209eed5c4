package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/Carnobyl/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64
	blocks   int

	total    int
	kills    int
	ticks    int
	reason   string
	timeLeft float64

	firstKillTick int
	lastKillTick  int
	bounces       int
	wrecks        int
	maxSpeed      float64
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var tpf float64
	var full bool

	flag.IntVar(&runs, "runs", 5, "number of headless autopilot runs")
	flag.IntVar(&ticks, "ticks", 7200, "maximum ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "world seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&tpf, "tpf", 1000.0/60, "milliseconds per tick")
	flag.BoolVar(&full, "full-world", false, "generate assets too, so maps match the game exactly")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if tpf <= 0 {
		fmt.Println("error: -tpf must be > 0")
		return
	}

	fmt.Printf("=== Headless Autopilot Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d tpf=%.2f full_world=%v\n\n", runs, ticks, seedBase, seedStep, tpf, full)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runAutopilot(i+1, seed, ticks, tpf, full)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func runAutopilot(runIndex int, seed int64, ticks int, tpf float64, full bool) runStats {
	opts := []game.SimOption{game.WithSeed(seed), game.WithTickMs(tpf)}
	if full {
		opts = append(opts, game.WithFullWorld())
	}
	ts := game.NewTestSim(opts...)
	ap := game.NewAutopilot()

	rs := runStats{runIndex: runIndex, seed: seed, blocks: ts.BlockCount, total: ts.Sim.Total()}
	for i := 0; i < ticks; i++ {
		ts.Step(ap.Controls(ts.Sim))
		if s := ts.Sim.Car.Speed; s > rs.maxSpeed {
			rs.maxSpeed = s
		}
		if ts.Sim.Over != nil {
			break
		}
	}

	rs.ticks = ts.Sim.Tick
	rs.kills = ts.Sim.Kills
	rs.timeLeft = ts.Sim.TimeLeft
	rs.reason = "running"
	if ts.Sim.Over != nil {
		rs.reason = ts.Sim.Over.Reason.String()
	}
	collectEvents(&rs, ts.SimLog.Entries())
	return rs
}

// collectEvents fills the event-derived fields of rs from the run's log.
func collectEvents(rs *runStats, entries []game.SimLogEntry) {
	rs.firstKillTick = -1
	rs.lastKillTick = -1
	for _, e := range entries {
		switch e.Category {
		case "ped":
			if e.Key == "killed" {
				if rs.firstKillTick < 0 {
					rs.firstKillTick = e.Tick
				}
				rs.lastKillTick = e.Tick
			}
		case "car":
			switch e.Key {
			case "bounce":
				rs.bounces++
			case "wreck":
				rs.wrecks++
			}
		}
	}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d, blocks=%d) ---\n", rs.runIndex, rs.seed, rs.blocks)
	fmt.Printf("outcome=%s ticks=%d kills=%d/%d time_left=%.2fs\n", rs.reason, rs.ticks, rs.kills, rs.total, rs.timeLeft)
	fmt.Printf("first_kill=%s last_kill=%s bounces=%d wrecks=%d max_speed=%.1f\n\n",
		tickString(rs.firstKillTick), tickString(rs.lastKillTick), rs.bounces, rs.wrecks, rs.maxSpeed)
}

func printAggregate(all []runStats) {
	totalKills, totalPeds, totalBounces := 0, 0, 0
	var firstKills []int
	outcomes := map[string]int{}
	for _, rs := range all {
		totalKills += rs.kills
		totalPeds += rs.total
		totalBounces += rs.bounces
		if rs.firstKillTick >= 0 {
			firstKills = append(firstKills, rs.firstKillTick)
		}
		outcomes[rs.reason]++
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("avg_kills_per_run=%.1f kill_rate=%.1f%%\n", avg(totalKills, len(all)), pct(totalKills, totalPeds))
	fmt.Printf("avg_bounces_per_run=%.1f\n", avg(totalBounces, len(all)))
	fmt.Printf("first_kill_avg_tick=%s\n", avgTickString(firstKills))
	fmt.Printf("outcomes=[%s]\n", joinCounts(outcomes))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func pct(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func tickString(t int) string {
	if t < 0 {
		return "n/a"
	}
	return fmt.Sprint(t)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(m map[string]int) string {
	if len(m) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, m[k]))
	}
	return strings.Join(parts, ",")
}
