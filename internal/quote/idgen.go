// internal/quote/idgen.go
package quote

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator mints quote IDs. It is the sole source of non-determinism in
// the engine, so it is injectable: tests supply a fixed generator and every
// other field of a Quote is reproducible.
type IDGenerator interface {
	QuoteID() string
}

// UUIDGenerator produces IDs of the form quote_<8 hex chars>.
type UUIDGenerator struct{}

func (UUIDGenerator) QuoteID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "quote_" + hex[:8]
}

// StaticIDGenerator returns the same ID every time. Test use only.
type StaticIDGenerator string

func (s StaticIDGenerator) QuoteID() string { return string(s) }
