// Package gameid generates short, time-sortable identifiers for play sessions
// and simulation runs.
package gameid

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/lox/blackjack/internal/randutil"
)

// Crockford's base32, lower case.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded ID: 128 bits padded to 130 and split into 5-bit groups.
const Length = 26

// Generator creates IDs from UUIDv7 values. With a nil source the random bits
// come from crypto/rand; with a source they are reproducible, though the
// timestamp prefix still follows the wall clock.
type Generator struct {
	source randutil.Source
}

// NewGenerator creates a generator. source may be nil.
func NewGenerator(source randutil.Source) *Generator {
	return &Generator{source: source}
}

// Generate returns a new ID using crypto randomness.
func Generate() string {
	return NewGenerator(nil).Generate()
}

// GenerateWithRandSource returns a new ID whose random bits come from source.
func GenerateWithRandSource(source randutil.Source) string {
	return NewGenerator(source).Generate()
}

// Generate returns a new ID.
func (g *Generator) Generate() string {
	var (
		id  uuid.UUID
		err error
	)
	if g.source == nil {
		id, err = uuid.NewV7()
	} else {
		id, err = uuid.NewV7FromReader(sourceReader{g.source})
	}
	if err != nil {
		panic("gameid: " + err.Error())
	}
	return Encode(id)
}

// Encode renders a UUID as 26 base32 characters. The value is treated as a
// 130-bit number with two leading zero bits, so the first character is at
// most '7' and IDs sort in the same order as the UUIDs.
func Encode(id uuid.UUID) string {
	var b strings.Builder
	b.Grow(Length)
	for i := range Length {
		var v byte
		for j := range 5 {
			v = v<<1 | bit(id, i*5+j-2)
		}
		b.WriteByte(alphabet[v])
	}
	return b.String()
}

func bit(id uuid.UUID, n int) byte {
	if n < 0 {
		return 0
	}
	return (id[n/8] >> (7 - n%8)) & 1
}

// Validate checks that id is 26 characters of the base32 alphabet and fits in
// 128 bits.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}

// sourceReader adapts a randutil.Source to the io.Reader uuid expects.
type sourceReader struct {
	src randutil.Source
}

var _ io.Reader = sourceReader{}

func (r sourceReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.src.IntN(256))
	}
	return len(p), nil
}
