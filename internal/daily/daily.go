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

// ParseDateKey validates a YYYY-MM-DD key.
func ParseDateKey(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// WordIndex returns a deterministic index for a date using HMAC(key, YYYY-MM-DD) % n.
func WordIndex(date time.Time, key []byte, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, key)
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Words is the subset of a dictionary the daily picker needs.
type Words interface {
	At(i int) string
	Len() int
}

// Picker selects the word of the day.
type Picker struct {
	words Words
	key   []byte
}

// NewPicker returns a Picker over words keyed by key.
func NewPicker(words Words, key []byte) *Picker {
	return &Picker{words: words, key: key}
}

// Pick returns the date key, word index and word for t.
func (p *Picker) Pick(t time.Time) (date string, idx int, word string) {
	idx = WordIndex(t, p.key, p.words.Len())
	return DateKey(t), idx, p.words.At(idx)
}
