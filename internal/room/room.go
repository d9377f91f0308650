// Package room derives the conversation key shared by two users.
//
// A room token is the two participant IDs in their canonical string form,
// sorted lexicographically and joined with an underscore. The underscore
// never occurs in a canonical UUID, so a token always splits back into
// exactly two parts.
package room

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/habiro-server/internal/model"
)

const separator = "_"

// Pair is an unordered pair of distinct participants kept in canonical order.
type Pair struct {
	First  uuid.UUID
	Second uuid.UUID
}

// NewPair orders a and b canonically.
func NewPair(a, b uuid.UUID) (Pair, error) {
	if a == uuid.Nil || b == uuid.Nil {
		return Pair{}, fmt.Errorf("%w: missing user id", model.ErrInvalidParticipant)
	}
	if a == b {
		return Pair{}, fmt.Errorf("%w: participants must be distinct", model.ErrInvalidParticipant)
	}
	if b.String() < a.String() {
		a, b = b, a
	}
	return Pair{First: a, Second: b}, nil
}

// Resolve returns the room token for a and b. Argument order does not matter.
func Resolve(a, b uuid.UUID) (string, error) {
	p, err := NewPair(a, b)
	if err != nil {
		return "", err
	}
	return p.Token(), nil
}

// Parse decodes a client supplied token. Tokens listing the participants in
// reverse order are accepted and normalised.
func Parse(token string) (Pair, error) {
	parts := strings.Split(token, separator)
	if len(parts) != 2 {
		return Pair{}, fmt.Errorf("%w: expected two participants in %q", model.ErrInvalidRoom, token)
	}

	ids := make([]uuid.UUID, 0, 2)
	for _, part := range parts {
		id, err := uuid.Parse(part)
		if err != nil {
			return Pair{}, fmt.Errorf("%w: %q is not a user id", model.ErrInvalidRoom, part)
		}
		ids = append(ids, id)
	}

	p, err := NewPair(ids[0], ids[1])
	if err != nil {
		return Pair{}, fmt.Errorf("%w: %w", model.ErrInvalidRoom, err)
	}
	return p, nil
}

// Token returns the canonical room token.
func (p Pair) Token() string {
	return p.First.String() + separator + p.Second.String()
}

// Includes reports whether id is one of the participants.
func (p Pair) Includes(id uuid.UUID) bool {
	return id != uuid.Nil && (id == p.First || id == p.Second)
}

// Other returns the participant that is not id.
func (p Pair) Other(id uuid.UUID) (uuid.UUID, bool) {
	switch id {
	case p.First:
		return p.Second, true
	case p.Second:
		return p.First, true
	default:
		return uuid.Nil, false
	}
}
