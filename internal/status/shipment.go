package status

import "github.com/dztransit/logistics-api/internal/model"

// ShouldRecordTransition reports whether a status-history entry must be
// appended. Repeated identical writes are a no-op.
func ShouldRecordTransition(oldStatus, newStatus model.ShipmentStatus) bool {
	return oldStatus != newStatus
}
