package repository

import "strings"

// criticalError marks a write failure that retrying cannot fix
type criticalError struct {
	err error
}

func (e *criticalError) Error() string { return e.err.Error() }

func (e *criticalError) Unwrap() error { return e.err }

// lock contention markers surfaced by the sqlite driver
var lockMarkers = []string{
	"SQLITE_BUSY",
	"SQLITE_LOCKED",
	"database is locked",
	"database table is locked",
}

// isLockError reports whether an error is transient SQLite lock contention
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range lockMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
