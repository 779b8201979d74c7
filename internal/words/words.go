// internal/words/words.go
//
// Dictionary of playable words.
//
// Responsibilities:
//   - Load a newline-delimited word list once at startup.
//   - Hold it as an immutable lower-case set for O(1) membership checks.
//   - Pick words uniformly at random, or by index for the daily challenge.
//
// Input format:
//   - One word per line, any case.
//   - Lines are trimmed; blank and '#' comment lines are skipped.
//   - Duplicates are collapsed.
//
// A Dictionary is read-only after construction, so handlers share it without locking.

package words

import (
	"bufio"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
)

// ErrEmptyDictionary is returned when a word list yields no words.
var ErrEmptyDictionary = errors.New("words: dictionary is empty")

// Dictionary is an immutable set of valid words.
type Dictionary struct {
	list []string            // insertion order, used for random/indexed picks
	set  map[string]struct{} // lower-case lookup
}

// Load reads the word list at path.
// A missing, unreadable or empty file is an error; callers treat it as fatal.
func Load(ctx context.Context, path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	d, err := Read(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Read builds a Dictionary from one word per line. Lines starting with '#'
// are comments.
func Read(ctx context.Context, r io.Reader) (*Dictionary, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1024*1024)

	var lines []string
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if strings.HasPrefix(strings.TrimSpace(sc.Text()), "#") {
			continue
		}
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}
	return New(lines)
}

// New builds a Dictionary from an in-memory list.
func New(list []string) (*Dictionary, error) {
	d := &Dictionary{set: make(map[string]struct{}, len(list))}
	for _, line := range list {
		w := normalize(line)
		if w == "" {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.list = append(d.list, w)
	}
	if len(d.list) == 0 {
		return nil, ErrEmptyDictionary
	}
	return d, nil
}

// normalize trims and lower-cases a word.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Contains reports whether w, lower-cased, is in the dictionary.
// Surrounding space is not trimmed: " crane " is not a word.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[strings.ToLower(w)]
	return ok
}

// Random returns a word chosen uniformly with crypto/rand.
func (d *Dictionary) Random() string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.list))))
	if err != nil {
		// crypto/rand failing means the OS entropy source is broken.
		panic(fmt.Sprintf("words: crypto/rand: %v", err))
	}
	return d.list[n.Int64()]
}

// At returns the i-th word in load order. i must be in [0, Len()).
func (d *Dictionary) At(i int) string { return d.list[i] }

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.list) }
