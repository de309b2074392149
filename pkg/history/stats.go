package history

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/Dicklesworthstone/responsive_viewer/pkg/model"
)

// Dwell summarises how long one breakpoint stayed active.
type Dwell struct {
	Breakpoint string
	Visits     int
	Total      time.Duration
	Mean       time.Duration
	StdDev     time.Duration
	MedianW    float64 // median width at which the breakpoint was entered
}

// DwellTimes computes per-breakpoint dwell statistics. Transitions must be
// grouped by session and ordered by time, as Journal.Transitions returns them.
// The last transition of a session counts until ends[sessionID]; sessions
// without an end contribute no dwell for their final breakpoint.
func DwellTimes(transitions []model.Transition, ends map[int64]time.Time) []Dwell {
	durations := make(map[string][]float64)
	widths := make(map[string][]float64)
	visits := make(map[string]int)

	for i, t := range transitions {
		visits[t.To]++
		widths[t.To] = append(widths[t.To], t.Width)

		var until time.Time
		if i+1 < len(transitions) && transitions[i+1].SessionID == t.SessionID {
			until = transitions[i+1].CreatedAt
		} else if end, ok := ends[t.SessionID]; ok {
			until = end
		} else {
			continue
		}
		if d := until.Sub(t.CreatedAt); d >= 0 {
			durations[t.To] = append(durations[t.To], float64(d))
		}
	}

	out := make([]Dwell, 0, len(visits))
	for name, n := range visits {
		d := Dwell{Breakpoint: name, Visits: n}

		if xs := durations[name]; len(xs) > 0 {
			mean, std := stat.MeanStdDev(xs, nil)
			if len(xs) == 1 || math.IsNaN(std) {
				std = 0
			}
			total := 0.0
			for _, x := range xs {
				total += x
			}
			d.Total = time.Duration(total)
			d.Mean = time.Duration(mean)
			d.StdDev = time.Duration(std)
		}

		ws := append([]float64(nil), widths[name]...)
		sort.Float64s(ws)
		d.MedianW = stat.Quantile(0.5, stat.Empirical, ws, nil)

		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Breakpoint < out[j].Breakpoint
	})
	return out
}
