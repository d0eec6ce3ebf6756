//go:build !cgo

package storage

// go-sqlite3 needs cgo; without it Open reports ErrCgoDisabled and the
// application runs with in-memory state only.
const cgoEnabled = false
