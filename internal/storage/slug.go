package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	slugMaxLen  = 60
	slugHashLen = 8
)

// Slug derives a filesystem-safe identifier from a title and author. The
// readable part is the lowercased title reduced to [a-z0-9-]; the suffix
// is a truncated content hash so distinct (title, author) pairs do not
// collide on similar titles.
func Slug(title, author string) string {
	lowered := strings.ToLower(title)

	var b strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteRune(' ')
		}
	}

	base := strings.Join(strings.Fields(b.String()), "-")
	if len(base) > slugMaxLen {
		base = base[:slugMaxLen]
	}
	base = strings.Trim(base, "-")

	sum := sha256.Sum256([]byte(title + "-" + author))
	hash := hex.EncodeToString(sum[:])[:slugHashLen]

	if base == "" {
		return hash
	}
	return base + "-" + hash
}
