package deck

import (
	"encoding/base32"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Card IDs are base32-encoded creation timestamps, so lexical filename
// order equals creation order.

// crockfordBase32 is a sortable base32 alphabet (digits before letters).
const crockfordBase32 = "0123456789abcdefghjkmnpqrstvwxyz"

var crockfordEncoding = base32.NewEncoding(crockfordBase32).WithPadding(base32.NoPadding)

const (
	timestampBytes  = 4
	maxSuffixLength = 4
)

var errIDGeneration = errors.New("deck: could not generate a unique card ID")

// newID encodes the current Unix second in Crockford's base32 (7 chars).
// Works until 2106.
func newID(now time.Time) string {
	sec := now.Unix()
	buf := make([]byte, timestampBytes)
	for i := timestampBytes - 1; i >= 0; i-- {
		buf[i] = byte(sec & 0xFF)
		sec >>= 8
	}
	return crockfordEncoding.EncodeToString(buf)
}

// uniqueID returns an ID with no existing file in dir. On collision it
// appends letter suffixes (a, b, ..., z, za, zb, ...).
func uniqueID(dir string, now time.Time) (string, error) {
	base := newID(now)
	if !cardFileExists(dir, base) {
		return base, nil
	}

	suffix := ""
	for {
		suffix = nextSuffix(suffix)
		if len(suffix) > maxSuffixLength {
			return "", errIDGeneration
		}
		if candidate := base + suffix; !cardFileExists(dir, candidate) {
			return candidate, nil
		}
	}
}

// nextSuffix increments a suffix like base-26: "" -> "a", "a" -> "b", ...,
// "z" -> "za".
func nextSuffix(suffix string) string {
	if suffix == "" {
		return "a"
	}
	runes := []rune(suffix)
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] < 'z' {
			runes[i]++
			return string(runes)
		}
		runes[i] = 'a'
	}
	return suffix + "a"
}

func cardFileExists(dir, id string) bool {
	_, err := os.Stat(filepath.Join(dir, id+cardSuffix))
	return err == nil
}
