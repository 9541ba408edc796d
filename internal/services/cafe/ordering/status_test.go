package ordering

import (
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/cafecursor/internal/services/cafe/storage"
)

func TestStatusIsPureFunctionOfTimestamps(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		placedAt time.Time
		ready    bool
		want     string
	}{
		{name: "just placed", placedAt: now.Add(-90 * time.Second), want: StatusReceived},
		{name: "three minutes in", placedAt: now.Add(-3 * time.Minute), want: StatusPreparing},
		{name: "six minutes in", placedAt: now.Add(-6 * time.Minute), want: StatusAlmost},
		{name: "exactly two minutes", placedAt: now.Add(-2 * time.Minute), want: StatusPreparing},
		{name: "exactly five minutes", placedAt: now.Add(-5 * time.Minute), want: StatusAlmost},
		{name: "ready overrides elapsed", placedAt: now.Add(-10 * time.Minute), ready: true, want: StatusReady},
		{name: "ready overrides fresh order", placedAt: now, ready: true, want: StatusReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			order := storage.Order{ID: 1, PlacedAt: tt.placedAt}
			if tt.ready {
				readyAt := tt.placedAt.Add(time.Minute)
				order.ReadyAt = &readyAt
			}
			if got := Status(order, now); got != tt.want {
				t.Fatalf("status = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusMessagesContainExpectedWording(t *testing.T) {
	t.Parallel()

	if !strings.Contains(StatusPreparing, "prepared") {
		t.Fatalf("preparing message %q should mention prepared", StatusPreparing)
	}
	if !strings.Contains(StatusAlmost, "Almost ready") {
		t.Fatalf("late message %q should mention Almost ready", StatusAlmost)
	}
}

func TestSummarizeFallsBackForUnknownItems(t *testing.T) {
	t.Parallel()

	lookup := func(id int64) (storage.MenuItem, bool) {
		if id == 1 {
			return storage.MenuItem{ID: 1, Name: "Black (Hot)"}, true
		}
		return storage.MenuItem{}, false
	}

	got := Summarize(map[int64]int64{1: 2, 42: 1}, lookup)
	if got != "Black (Hot) x2, Item 42 x1" {
		t.Fatalf("summary = %q", got)
	}
}

func TestSummarizeEmptyItems(t *testing.T) {
	t.Parallel()

	if got := Summarize(nil, nil); got != "No items" {
		t.Fatalf("summary = %q, want %q", got, "No items")
	}
}
