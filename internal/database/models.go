package database

import "time"

// CachedReply stores one handler answer for reuse across requests. Entries
// are keyed by (intent, subject), both already normalized by the router,
// and expire at ExpiresAt; expired rows are invisible to readers and purged
// by the cache eviction task.
type CachedReply struct {
	ID        uint      `db:"id"`
	CreatedAt time.Time `db:"created_at"`

	Intent    string    `db:"intent"`
	Subject   string    `db:"subject"`
	Summary   string    `db:"summary"`
	ExpiresAt time.Time `db:"expires_at"`
}
