package report

import (
	"testing"

	"kdd-pipeline/internal/schema"
)

func tableOf(labels ...string) *schema.Table {
	records := make([]schema.Record, len(labels))
	for i, l := range labels {
		records[i] = schema.Record{AttackType: l}
	}
	return schema.NewTable(records)
}

func TestTopAttacksOrdersByFrequency(t *testing.T) {
	table := tableOf(
		"back.", "smurf.", "smurf.", "normal.",
		"neptune.", "smurf.", "neptune.", "normal.",
	)

	got := TopAttacks(table, 10)

	want := []LabelCount{
		{Label: "smurf.", Count: 3},
		{Label: "neptune.", Count: 2},
		{Label: "back.", Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("Got %d entries, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTopAttacksTiesKeepFirstEncounteredOrder(t *testing.T) {
	// teardrop. and back. both occur twice; teardrop. is seen first.
	table := tableOf("teardrop.", "back.", "smurf.", "back.", "teardrop.", "smurf.", "smurf.")

	got := TopAttacks(table, 10)

	want := []LabelCount{
		{Label: "smurf.", Count: 3},
		{Label: "teardrop.", Count: 2},
		{Label: "back.", Count: 2},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTopAttacksCapsResult(t *testing.T) {
	labels := []string{"a.", "b.", "c.", "d.", "e.", "f.", "g.", "h.", "i.", "j.", "k.", "l."}
	var rows []string
	for i, l := range labels {
		for range len(labels) - i {
			rows = append(rows, l)
		}
	}

	got := TopAttacks(tableOf(rows...), 10)

	if len(got) != 10 {
		t.Fatalf("Got %d entries, want 10", len(got))
	}
	if got[0].Label != "a." || got[9].Label != "j." {
		t.Errorf("Unexpected head/tail: first=%+v last=%+v", got[0], got[9])
	}
	for i := 1; i < len(got); i++ {
		if got[i].Count > got[i-1].Count {
			t.Errorf("Counts not descending at %d: %v", i, got)
		}
	}
}

func TestTopAttacksIgnoresNormalRows(t *testing.T) {
	if got := TopAttacks(tableOf("normal.", "normal.", "normal."), 10); len(got) != 0 {
		t.Errorf("Expected no entries for an all-normal table, got %v", got)
	}
}

func TestTopAttacksEmptyTable(t *testing.T) {
	if got := TopAttacks(tableOf(), 10); len(got) != 0 {
		t.Errorf("Expected no entries for an empty table, got %v", got)
	}
}

func TestAttackTrendSkipsQuietIntervals(t *testing.T) {
	// 2500 rows: attacks in [0,999] and [2000,2499], normal in between.
	labels := make([]string, 2500)
	for i := range labels {
		switch {
		case i < 1000:
			labels[i] = "smurf."
		case i < 2000:
			labels[i] = "normal."
		default:
			labels[i] = "neptune."
		}
	}

	got := AttackTrend(tableOf(labels...), 1000)

	want := []IntervalCount{
		{Interval: 0, Count: 1000},
		{Interval: 2, Count: 500},
	}
	if len(got) != len(want) {
		t.Fatalf("Got %d intervals, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Interval %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAttackTrendAscendingOrder(t *testing.T) {
	labels := make([]string, 350)
	for i := range labels {
		if i%2 == 0 {
			labels[i] = "back."
		} else {
			labels[i] = "normal."
		}
	}

	got := AttackTrend(tableOf(labels...), 100)

	if len(got) != 4 {
		t.Fatalf("Got %d intervals, want 4: %v", len(got), got)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Interval <= got[i-1].Interval {
			t.Errorf("Intervals not ascending: %v", got)
		}
	}
	if got[0].Count != 50 || got[3].Count != 25 {
		t.Errorf("Unexpected bucket counts: %v", got)
	}
}

func TestAttackTrendEmpty(t *testing.T) {
	if got := AttackTrend(tableOf("normal.", "normal."), 1000); len(got) != 0 {
		t.Errorf("Expected no intervals for an all-normal table, got %v", got)
	}
	if got := AttackTrend(tableOf(), 1000); len(got) != 0 {
		t.Errorf("Expected no intervals for an empty table, got %v", got)
	}
}
