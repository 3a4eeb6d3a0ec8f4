package id

import (
	"crypto/rand"
	"encoding/hex"
)

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

// ShortHex produces 4-char hex suffixes for authored item ids.
type ShortHex struct{}

func (ShortHex) New() string {
	buf := make([]byte, 2)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
