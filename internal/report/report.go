// Package report computes the two descriptive views over a loaded table
// and renders each as a chart. Both views are read-only and tolerate an
// empty result by skipping the chart.
package report

import (
	"sort"

	"kdd-pipeline/internal/schema"
)

// LabelCount is one attack label and its frequency.
type LabelCount struct {
	Label string
	Count int
}

// IntervalCount is one trend bucket: a zero-based block of IntervalSize
// consecutive rows and the number of attack rows inside it.
type IntervalCount struct {
	Interval int
	Count    int
}

// TopAttacks counts attack_type occurrences among attack-category rows
// and returns at most n entries in descending frequency order. Ties keep
// the order in which the labels were first encountered.
func TopAttacks(t *schema.Table, n int) []LabelCount {
	counts := make(map[string]int)
	var order []string
	for i, r := range t.Records {
		if t.Categories[i] != schema.CategoryAttack {
			continue
		}
		if _, seen := counts[r.AttackType]; !seen {
			order = append(order, r.AttackType)
		}
		counts[r.AttackType]++
	}

	result := make([]LabelCount, 0, len(order))
	for _, label := range order {
		result = append(result, LabelCount{Label: label, Count: counts[label]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	if len(result) > n {
		result = result[:n]
	}
	return result
}

// AttackTrend buckets rows by position into fixed-size intervals and
// counts attack rows per interval, ascending by interval index. Intervals
// without attacks are absent, never zero-filled.
func AttackTrend(t *schema.Table, intervalSize int) []IntervalCount {
	counts := make(map[int]int)
	for i := range t.Records {
		if t.Categories[i] != schema.CategoryAttack {
			continue
		}
		counts[i/intervalSize]++
	}

	intervals := make([]int, 0, len(counts))
	for interval := range counts {
		intervals = append(intervals, interval)
	}
	sort.Ints(intervals)

	result := make([]IntervalCount, 0, len(intervals))
	for _, interval := range intervals {
		result = append(result, IntervalCount{Interval: interval, Count: counts[interval]})
	}
	return result
}
