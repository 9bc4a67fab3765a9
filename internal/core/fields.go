package core

// Server-managed fields that a client update payload can never set. Any of
// these present in an update body are dropped silently before persistence.
// updatedAt is included because the repository stamps it itself.
var protectedFields = []string{"id", "ownerId", "version", "createdAt", "updatedAt"}

// StripProtectedFields removes server-managed fields from an update payload
// in place and returns it.
func StripProtectedFields(fields map[string]interface{}) map[string]interface{} {
	for _, f := range protectedFields {
		delete(fields, f)
	}
	return fields
}
