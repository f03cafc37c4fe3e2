package random

import "github.com/google/uuid"

// Random provides opaque id generation that can be mocked for testing
type Random interface {
	// UUID returns a new random identifier string
	UUID() string
}

// UUIDRandom implements Random using RFC 4122 v4 UUIDs
type UUIDRandom struct{}

// New creates a new UUIDRandom
func New() *UUIDRandom {
	return &UUIDRandom{}
}

// UUID returns a new random identifier string
func (r *UUIDRandom) UUID() string {
	return uuid.NewString()
}
