package id

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	return v.String(), nil
}

// Sequence issues stable, zero-padded sequential identifiers such as TM-00001.
type Sequence struct {
	prefix string
	width  int
	last   atomic.Int64
}

func NewSequence(prefix string, width int) *Sequence {
	if width < 1 {
		width = 1
	}
	return &Sequence{prefix: prefix, width: width}
}

func (s *Sequence) NewID() (string, error) {
	return Format(s.prefix, s.width, s.last.Add(1)), nil
}

// Format renders n with the sequence layout without consuming a value.
func Format(prefix string, width int, n int64) string {
	digits := strconv.FormatInt(n, 10)
	for len(digits) < width {
		digits = "0" + digits
	}
	if prefix == "" {
		return digits
	}
	return prefix + "-" + digits
}

// Compare orders sequence identifiers by prefix, then by number, so TM-100000
// follows TM-99999 once the counter outgrows the padding. Identifiers that do
// not parse fall back to plain string order.
func Compare(a, b string) int {
	pa, na, okA := splitSequence(a)
	pb, nb, okB := splitSequence(b)
	if !okA || !okB || pa != pb {
		return strings.Compare(a, b)
	}
	return cmp.Or(cmp.Compare(na, nb), strings.Compare(a, b))
}

func splitSequence(v string) (string, int64, bool) {
	prefix, digits := "", v
	if i := strings.LastIndexByte(v, '-'); i >= 0 {
		prefix, digits = v[:i], v[i+1:]
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return "", 0, false
	}
	return prefix, n, true
}
