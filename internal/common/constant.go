package common

// Persisted client-state keys. The values are JSON blobs with the same shape
// the original web client kept in browser storage.
const (
	SessionStateKey = "user"
	HistoryStateKey = "history"
)
