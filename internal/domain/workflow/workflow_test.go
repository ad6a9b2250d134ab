package workflow

import (
	"errors"
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
)

func seededOrder() entities.ServiceOrder {
	o := entities.ServiceOrder{ID: "os-1", ClientID: "c-1"}
	return SeedHistory(o, "Recebido", time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
}

func TestSeedHistory(t *testing.T) {
	o := seededOrder()

	if o.Status != entities.StatusAnalysis {
		t.Fatalf("expected ANALYSIS, got %s", o.Status)
	}
	if len(o.History) != 1 {
		t.Fatalf("expected one history entry, got %d", len(o.History))
	}
	if o.History[0].Status != entities.StatusAnalysis || o.History[0].Note != "Recebido" {
		t.Fatalf("unexpected seed entry: %+v", o.History[0])
	}
}

func TestTransitionAppendsExactlyOneEntry(t *testing.T) {
	o := seededOrder()
	now := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	next, err := Transition(o, entities.StatusBudgeted, "Orçamento enviado", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Status != entities.StatusBudgeted {
		t.Fatalf("expected BUDGETED, got %s", next.Status)
	}
	if len(next.History) != len(o.History)+1 {
		t.Fatalf("expected history to grow by 1, got %d -> %d", len(o.History), len(next.History))
	}
	last := next.History[len(next.History)-1]
	if last.Status != entities.StatusBudgeted || !last.Date.Equal(now) {
		t.Fatalf("unexpected appended entry: %+v", last)
	}
	// Input value untouched.
	if o.Status != entities.StatusAnalysis || len(o.History) != 1 {
		t.Fatalf("transition mutated its input: %+v", o)
	}
}

func TestTransitionSkipAheadAllowed(t *testing.T) {
	o := seededOrder()

	next, err := Transition(o, entities.StatusFinished, "", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Status != entities.StatusFinished {
		t.Fatalf("expected FINISHED, got %s", next.Status)
	}
}

func TestTransitionBackwardNeedsNote(t *testing.T) {
	o := seededOrder()
	o, err := Transition(o, entities.StatusDelivered, "", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := Transition(o, entities.StatusAnalysis, "", time.Now()); !errors.Is(err, ErrNoteRequired) {
		t.Fatalf("expected ErrNoteRequired, got %v", err)
	}

	back, err := Transition(o, entities.StatusAnalysis, "Cliente reportou novo defeito", time.Now())
	if err != nil {
		t.Fatalf("expected override with note to pass, got %v", err)
	}
	if back.Status != entities.StatusAnalysis {
		t.Fatalf("expected ANALYSIS, got %s", back.Status)
	}
}

func TestTransitionApprovedWaitingPartsSameStage(t *testing.T) {
	o := seededOrder()
	o, _ = Transition(o, entities.StatusWaitingParts, "", time.Now())

	// APPROVED and WAITING_PARTS share a stage, so flipping between them is
	// never a backward move.
	if _, err := Transition(o, entities.StatusApproved, "", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTransitionUnknownStatus(t *testing.T) {
	o := seededOrder()
	if _, err := Transition(o, entities.OSStatus("LOST"), "", time.Now()); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestStageIndex(t *testing.T) {
	cases := map[entities.OSStatus]int{
		entities.StatusAnalysis:     0,
		entities.StatusBudgeted:     1,
		entities.StatusApproved:     2,
		entities.StatusWaitingParts: 2,
		entities.StatusFinished:     3,
		entities.StatusDelivered:    4,
	}
	for status, want := range cases {
		if got := StageIndex(status); got != want {
			t.Fatalf("StageIndex(%s) = %d, want %d", status, got, want)
		}
	}
}

func TestHistoryIsChronological(t *testing.T) {
	o := seededOrder()
	times := []time.Time{
		time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC),
	}
	steps := []entities.OSStatus{entities.StatusBudgeted, entities.StatusApproved, entities.StatusFinished}

	var err error
	for i, s := range steps {
		o, err = Transition(o, s, "", times[i])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	for i := 1; i < len(o.History); i++ {
		if o.History[i].Date.Before(o.History[i-1].Date) {
			t.Fatalf("history out of order at %d: %+v", i, o.History)
		}
	}
	if o.History[len(o.History)-1].Status != o.Status {
		t.Fatalf("latest history status %s != order status %s", o.History[len(o.History)-1].Status, o.Status)
	}
}
