package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered record identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7, falling back to a random UUIDv4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidID reports whether id is a well-formed UUID.
func IsValidID(id string) bool {
	return uuid.Validate(id) == nil
}

const fileNameRandLimit = 1_000_000_000

// FileNameGenerator builds collision-resistant names for stored uploads.
type FileNameGenerator struct {
	now func() time.Time
}

func NewFileNameGenerator() *FileNameGenerator {
	return &FileNameGenerator{now: time.Now}
}

// Generate returns "<field>-<unix millis>-<random>.<ext>" where ext is the
// lowercased extension of original.
func (g *FileNameGenerator) Generate(field, original string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n, err := rand.Int(rand.Reader, big.NewInt(fileNameRandLimit)); err == nil {
		suffix = n.String()
	}

	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%s-%d-%s%s", field, g.now().UnixMilli(), suffix, ext)
}
