// Package workflow governs the service-order status lifecycle and its
// append-only history log. Transition is a pure function over an order value;
// persistence happens in the use case that calls it.
package workflow

import (
	"errors"
	"time"

	"oficina_xpto/internal/domain/entities"
)

var (
	ErrUnknownStatus = errors.New("unknown status")
	// ErrNoteRequired signals a backward transition attempted without a note.
	// Moving an order back in the flow is allowed, but only as an explicit
	// override the technician has to justify.
	ErrNoteRequired = errors.New("backward transition requires a note")
)

// Statuses is the canonical forward ordering of the lifecycle.
// WAITING_PARTS sits beside APPROVED: both are the "in production" stage.
var Statuses = []entities.OSStatus{
	entities.StatusAnalysis,
	entities.StatusBudgeted,
	entities.StatusApproved,
	entities.StatusWaitingParts,
	entities.StatusFinished,
	entities.StatusDelivered,
}

// stageRanks collapses APPROVED and WAITING_PARTS into the same stage so the
// public timeline renders a single "in production" step. DELIVERED ranks past
// FINISHED (fully complete).
var stageRanks = map[entities.OSStatus]int{
	entities.StatusAnalysis:     0,
	entities.StatusBudgeted:     1,
	entities.StatusApproved:     2,
	entities.StatusWaitingParts: 2,
	entities.StatusFinished:     3,
	entities.StatusDelivered:    4,
}

func IsValid(s entities.OSStatus) bool {
	_, ok := stageRanks[s]
	return ok
}

// StageIndex returns the coarse progress position of a status on the public
// four-step timeline (ANALYSIS, BUDGETED, in production, FINISHED), with
// DELIVERED mapping one past the final step.
func StageIndex(s entities.OSStatus) int {
	rank, ok := stageRanks[s]
	if !ok {
		return 0
	}
	return rank
}

// Transition returns a copy of the order moved to newStatus with exactly one
// history entry appended. Forward and skip-ahead moves always succeed;
// backward moves (lower stage rank) need a non-empty note. No terminal state
// is enforced: DELIVERED is conventionally final but not locked.
func Transition(o entities.ServiceOrder, newStatus entities.OSStatus, note string, now time.Time) (entities.ServiceOrder, error) {
	if !IsValid(newStatus) {
		return entities.ServiceOrder{}, ErrUnknownStatus
	}
	if IsValid(o.Status) && StageIndex(newStatus) < StageIndex(o.Status) && note == "" {
		return entities.ServiceOrder{}, ErrNoteRequired
	}

	history := make([]entities.HistoryEntry, 0, len(o.History)+1)
	history = append(history, o.History...)
	history = append(history, entities.HistoryEntry{Date: now, Status: newStatus, Note: note})

	o.Status = newStatus
	o.History = history
	return o, nil
}

// SeedHistory initializes a freshly opened order: status ANALYSIS plus the
// single creation entry the public timeline starts from.
func SeedHistory(o entities.ServiceOrder, note string, now time.Time) entities.ServiceOrder {
	o.Status = entities.StatusAnalysis
	o.History = []entities.HistoryEntry{{Date: now, Status: entities.StatusAnalysis, Note: note}}
	return o
}
