package service

import "geowatch/internal/domain/entity"

// Counters tracks how many notifications were enqueued per category
// process-wide. Implementations must be safe for concurrent dispatch
// passes. Snapshot and Reset back the nightly stats posting.
type Counters interface {
	Add(category entity.Category, n int64)
	Snapshot() map[entity.Category]int64
	Reset()
}
