// apps/go-server/internal/daily/daily.go
//
// Deterministic "challenge of the day" selection.
// The same date and salt always pick the same index, so every server
// instance agrees without shared state.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Index picks today's challenge out of a pool of n seeded (non-random)
// challenges: HMAC(salt, YYYY-MM-DD) % n, or 0 when n <= 0.
func Index(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
