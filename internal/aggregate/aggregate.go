// Package aggregate computes summary statistics and chart projections over
// an immutable snapshot of the event record set. All functions are pure and
// safe to call concurrently.
package aggregate

import (
	"math"

	"github.com/campusintel/eventd/internal/model"
)

// scatterSampleSize bounds the interactivity scatter to the first records in
// retrieval order. Not a representative sample; the dashboard only needs a
// bounded point cloud.
const scatterSampleSize = 50

// frictionProfile is a static illustrative profile, not derived from live
// friction columns.
var frictionProfile = []model.NamedValue{
	{Name: "Relevance", Value: 85},
	{Name: "Schedule", Value: 65},
	{Name: "Fatigue", Value: 45},
	{Name: "Promotion", Value: 90},
	{Name: "Social", Value: 55},
	{Name: "Format", Value: 70},
}

// Overview summarizes the record set. An empty set yields zero counts and
// "N/A" top categories rather than a divide-by-zero.
func Overview(events []model.Event) model.OverviewStats {
	stats := model.OverviewStats{
		TotalEvents:    len(events),
		TopDomain:      "N/A",
		TopSpeakerType: "N/A",
	}
	if len(events) == 0 {
		return stats
	}

	sum := 0
	for _, e := range events {
		sum += e.ExpectedAttendance
	}
	stats.AvgAttendance = int(math.Round(float64(sum) / float64(len(events))))

	stats.TopDomain = topByAttendance(events, func(e model.Event) string { return e.Domain })
	stats.TopSpeakerType = topByAttendance(events, func(e model.Event) string { return e.SpeakerType })

	return stats
}

// Charts builds the dashboard chart projections.
func Charts(events []model.Event) model.ChartData {
	data := model.ChartData{
		AttendanceByDomain:       groupMeans(events, func(e model.Event) string { return e.Domain }),
		AttendanceBySpeaker:      groupMeans(events, func(e model.Event) string { return e.SpeakerType }),
		InteractivityCorrelation: []model.Point{},
		FrictionImpact:           make([]model.NamedValue, len(frictionProfile)),
	}
	copy(data.FrictionImpact, frictionProfile)

	for i, e := range events {
		if i >= scatterSampleSize {
			break
		}
		data.InteractivityCorrelation = append(data.InteractivityCorrelation, model.Point{
			X: e.InteractivityLevel,
			Y: e.ExpectedAttendance,
		})
	}

	return data
}

// topByAttendance returns the key with the highest summed attendance. Ties
// break toward the first-encountered key in retrieval order.
func topByAttendance(events []model.Event, key func(model.Event) string) string {
	sums := map[string]int{}
	var order []string
	for _, e := range events {
		k := key(e)
		if _, seen := sums[k]; !seen {
			order = append(order, k)
		}
		sums[k] += e.ExpectedAttendance
	}

	top := "N/A"
	best := -1
	for _, k := range order {
		if sums[k] > best {
			top = k
			best = sums[k]
		}
	}
	return top
}

// groupMeans computes the rounded mean attendance per distinct key value,
// preserving first-seen key ordering.
func groupMeans(events []model.Event, key func(model.Event) string) []model.NamedValue {
	type acc struct {
		count int
		sum   int
	}
	groups := map[string]*acc{}
	var order []string
	for _, e := range events {
		k := key(e)
		a, seen := groups[k]
		if !seen {
			a = &acc{}
			groups[k] = a
			order = append(order, k)
		}
		a.count++
		a.sum += e.ExpectedAttendance
	}

	out := []model.NamedValue{}
	for _, k := range order {
		a := groups[k]
		out = append(out, model.NamedValue{
			Name:  k,
			Value: int(math.Round(float64(a.sum) / float64(a.count))),
		})
	}
	return out
}
