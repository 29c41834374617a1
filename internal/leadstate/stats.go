package leadstate

import (
	"sort"

	"lead-center-backend/internal/database/models"

	"github.com/google/uuid"
)

// Histogram counts leads by their effective disposition. Leads without any
// assignment event fall under New. Empty buckets are absent from the result;
// consumers render a missing category as zero.
func Histogram(leads []models.Lead, latest map[string]models.Assignment) map[models.Disposition]int {
	counts := make(map[models.Disposition]int)
	for _, l := range leads {
		if ev, ok := latest[l.RefID]; ok {
			counts[EffectiveDisposition(&ev)]++
		} else {
			counts[models.DispositionNew]++
		}
	}
	return counts
}

// EntryHistogram counts latest-state entries by effective disposition,
// without reference to the lead store. Used for caller-scoped dashboards,
// where the log was pre-filtered to one caller and leads the caller never
// touched must not appear.
func EntryHistogram(latest map[string]models.Assignment) map[models.Disposition]int {
	counts := make(map[models.Disposition]int)
	for _, ev := range latest {
		counts[EffectiveDisposition(&ev)]++
	}
	return counts
}

// HandledCounts counts, per caller, the leads whose latest event carries a
// real outcome (anything but New). Keyed by the stable user id; two callers
// sharing a display name stay separate.
func HandledCounts(latest map[string]models.Assignment) map[uuid.UUID]int {
	counts := make(map[uuid.UUID]int)
	for _, ev := range latest {
		if EffectiveDisposition(&ev) == models.DispositionNew {
			continue
		}
		counts[ev.UserID]++
	}
	return counts
}

// RecentActivity returns the n most recent dispositioned events across all
// leads and callers, newest first by DispositionTime. Events still at New,
// or without a disposition timestamp, are not activity.
func RecentActivity(events []models.Assignment, n int) []models.Assignment {
	activity := make([]models.Assignment, 0, len(events))
	for _, ev := range events {
		if EffectiveDisposition(&ev) == models.DispositionNew || ev.DispositionTime == nil {
			continue
		}
		activity = append(activity, ev)
	}
	sort.SliceStable(activity, func(i, j int) bool {
		ti, tj := activity[i].DispositionTime, activity[j].DispositionTime
		if ti.Equal(*tj) {
			return activity[i].Seq > activity[j].Seq
		}
		return ti.After(*tj)
	})
	if n > 0 && len(activity) > n {
		activity = activity[:n]
	}
	return activity
}
