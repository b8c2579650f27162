package entities

import (
	"time"
)

// nowFunc is the time source for every timestamp and expiration check in this
// package. Tests pin it with SetNowFunc so derived properties are deterministic.
var nowFunc = time.Now

// SetNowFunc swaps the package time source and returns a func restoring the
// previous one.
func SetNowFunc(fn func() time.Time) func() {
	prev := nowFunc
	nowFunc = fn
	return func() { nowFunc = prev }
}

type Timestamp struct {
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// touch bumps UpdatedAt; every mutating entity operation calls it.
func (t *Timestamp) touch() {
	t.UpdatedAt = nowFunc().UTC()
}

// dateOf truncates to date-only UTC. Expiration comparisons are day-granular.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today is the current date (UTC, day granularity) from the package time
// source, so callers stay consistent with the entity expiration checks.
func Today() time.Time {
	return dateOf(nowFunc())
}
