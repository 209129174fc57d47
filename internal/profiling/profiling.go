package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Lightweight stage timer for generation and erosion runs.

type entry struct {
	total time.Duration
	calls int
}

var (
	mu     sync.Mutex
	totals = make(map[string]entry)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("erosion.Erode")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		e := totals[name]
		e.total += d
		e.calls++
		totals[name] = e
		mu.Unlock()
	}
}

// Reset clears all recorded totals.
func Reset() {
	mu.Lock()
	clear(totals)
	mu.Unlock()
}

// Snapshot returns a copy of the accumulated durations.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(totals))
	for k, v := range totals {
		out[k] = v.total
	}
	return out
}

// Calls returns how many times name was tracked.
func Calls(name string) int {
	mu.Lock()
	defer mu.Unlock()
	return totals[name].calls
}

// TopN formats the n slowest stages.
// Example: "erosion.Erode:812.4ms(40), terrain.Generate:35.1ms(1)"
func TopN(n int) string {
	mu.Lock()
	type pair struct {
		name string
		e    entry
	}
	list := make([]pair, 0, len(totals))
	for k, v := range totals {
		list = append(list, pair{name: k, e: v})
	}
	mu.Unlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].e.total == list[j].e.total {
			return list[i].name < list[j].name
		}
		return list[i].e.total > list[j].e.total
	})
	n = min(n, len(list))
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		ms := float64(p.e.total.Microseconds()) / 1000.0
		parts = append(parts, p.name+":"+strconv.FormatFloat(ms, 'f', 1, 64)+"ms("+strconv.Itoa(p.e.calls)+")")
	}
	return strings.Join(parts, ", ")
}
