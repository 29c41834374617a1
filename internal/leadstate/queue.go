package leadstate

import (
	"lead-center-backend/internal/database/models"

	"github.com/google/uuid"
)

// Queue builds a caller's worklist: the refIds of leads whose latest
// assignment belongs to callerID, in lead-store order (not assignment order).
// The queue is recomputed fresh on every request; there is no persisted cursor.
func Queue(leads []models.Lead, latest map[string]models.Assignment, callerID uuid.UUID) []string {
	queue := make([]string, 0)
	for _, l := range leads {
		ev, ok := latest[l.RefID]
		if ok && ev.UserID == callerID {
			queue = append(queue, l.RefID)
		}
	}
	return queue
}

// Neighbors returns the previous and next refIds around refID within queue.
// Either neighbor is empty at the ends of the queue. ok is false when refID
// is not in the queue at all, e.g. the lead was reassigned away.
func Neighbors(queue []string, refID string) (prev, next string, ok bool) {
	for i, ref := range queue {
		if ref != refID {
			continue
		}
		if i > 0 {
			prev = queue[i-1]
		}
		if i < len(queue)-1 {
			next = queue[i+1]
		}
		return prev, next, true
	}
	return "", "", false
}
