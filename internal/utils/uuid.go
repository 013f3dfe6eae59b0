package utils

import "github.com/google/uuid"

// UUIDGenerator produces fresh profile identifiers. UUIDv7 keeps ids
// roughly time-ordered, which plays well with the date-descending listings.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
