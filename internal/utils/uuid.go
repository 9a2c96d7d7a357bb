package utils

import "github.com/google/uuid"

// UUIDGenerator hands out time-ordered (version 7) identifiers so that
// accounts sort by creation when listed by ID.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new v7 UUID, falling back to v4 if the clock source
// fails.
func (g *UUIDGenerator) Generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
