package utils

import "github.com/google/uuid"

// UUIDGenerator produces trace ids. Version 7 ids are preferred since they
// sort by creation time; a random v4 id is used if v7 generation fails.
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
