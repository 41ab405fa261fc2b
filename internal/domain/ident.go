package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// An ident is IdentTokenLength characters taken from a freshly generated
// UUID followed by IdentTimeLength characters derived from the creation
// time. Both parts are lowercase hex.
const (
	IdentTokenLength = 4
	IdentTimeLength  = 2
	IdentLength      = IdentTokenLength + IdentTimeLength
)

// newIdentToken is replaced in tests. The clock sequence is reseeded for
// every token; uuid.NewUUID alone keeps one sequence for the process.
var newIdentToken = func() uuid.UUID {
	uuid.SetClockSequence(-1)
	id, err := uuid.NewUUID()
	if err != nil {
		// No usable node ID or clock; a random UUID carries the same entropy.
		return uuid.New()
	}
	return id
}

// GenerateIdent returns a short human-shareable event code. The first part is
// the random clock sequence group of a version 1 UUID, the second part is a
// digest of now. Codes are practically distinct but not guaranteed unique.
func GenerateIdent(now time.Time) string {
	token := newIdentToken()
	sum := sha256.Sum256([]byte(strconv.FormatInt(now.UnixNano(), 10)))

	return hex.EncodeToString(token[8:10]) + hex.EncodeToString(sum[:1])
}

// IsValidIdent reports whether s has the shape of a generated ident.
func IsValidIdent(s string) bool {
	if len(s) != IdentLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
