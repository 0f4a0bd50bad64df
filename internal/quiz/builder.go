package quiz

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Clock returns the current time. Injectable for tests.
type Clock func() time.Time

// IDGenerator produces a quiz id for the given creation time.
// Injectable for tests.
type IDGenerator func(now time.Time) string

// NewID generates a quiz id from a millisecond timestamp and a random
// suffix. The id is unique with overwhelming probability; no collision
// check against the store is performed.
func NewID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return strconv.FormatInt(now.UnixMilli(), 10) + suffix
}

// Builder constructs Quiz records with an injectable clock and id
// generator.
type Builder struct {
	clock Clock
	idGen IDGenerator
}

// NewBuilder returns a Builder using the wall clock and NewID.
func NewBuilder() *Builder {
	return &Builder{clock: time.Now, idGen: NewID}
}

// NewBuilderWith returns a Builder with an explicit clock and id
// generator. Nil arguments fall back to the defaults.
func NewBuilderWith(clock Clock, idGen IDGenerator) *Builder {
	if clock == nil {
		clock = time.Now
	}
	if idGen == nil {
		idGen = NewID
	}
	return &Builder{clock: clock, idGen: idGen}
}

// Build assembles a Quiz from a title and a validated question sequence.
// The title is trimmed, the creation time is captured exactly once, and
// the id is derived from that same instant. Pure given its inputs; no I/O.
func (b *Builder) Build(title string, questions []Question) Quiz {
	now := b.clock()
	return Quiz{
		ID:        b.idGen(now),
		Title:     strings.TrimSpace(title),
		Questions: questions,
		CreatedAt: now,
	}
}
