// Package leadstate derives the current state of leads from the append-only
// assignment log. All functions are pure reductions over snapshots fetched by
// the caller; nothing here touches storage or mutates its inputs.
package leadstate

import (
	"lead-center-backend/internal/database/models"
)

// Reduce collapses the full assignment log into the single latest event per
// lead. Later AssignedTime wins; equal timestamps are broken by the greater
// write sequence, so the result does not depend on input order.
//
// Leads with no events are absent from the result. Callers must treat
// absence as "New, unassigned".
func Reduce(events []models.Assignment) map[string]models.Assignment {
	latest := make(map[string]models.Assignment, len(events))
	for _, ev := range events {
		cur, ok := latest[ev.LeadRef]
		if !ok || newer(&ev, &cur) {
			latest[ev.LeadRef] = ev
		}
	}
	return latest
}

// newer reports whether a supersedes b as the current event of a lead.
func newer(a, b *models.Assignment) bool {
	if a.AssignedTime.After(b.AssignedTime) {
		return true
	}
	if a.AssignedTime.Equal(b.AssignedTime) {
		return a.Seq > b.Seq
	}
	return false
}

// EffectiveDisposition maps an optional latest event to a disposition.
// A nil event (lead never assigned) and an event without a recorded outcome
// both count as New.
func EffectiveDisposition(a *models.Assignment) models.Disposition {
	if a == nil || a.Disposition == "" {
		return models.DispositionNew
	}
	return a.Disposition
}
