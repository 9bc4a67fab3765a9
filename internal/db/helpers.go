package db

import (
	"time"

	"cloud.google.com/go/firestore"
)

// buildUpdates converts a partial-field map into a Firestore update list,
// always appending the updatedAt stamp and an atomic version increment.
// Callers are expected to have stripped immutable fields already.
func buildUpdates(fields map[string]interface{}, now time.Time) []firestore.Update {
	updates := make([]firestore.Update, 0, len(fields)+2)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates,
		firestore.Update{Path: "updatedAt", Value: now},
		firestore.Update{Path: "version", Value: firestore.Increment(1)},
	)
	return updates
}
