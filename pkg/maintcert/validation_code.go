package maintcert

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	ValidationCodeLength = 10

	// A-Z without I and O
	CodeLetters = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	// 0-9 without 0 and 1
	CodeDigits = "23456789"

	DefaultMaxCodeAttempts = 10
)

var (
	ErrCodeSpaceExhausted = errors.New("validation code space exhausted")
	ErrInvalidFormat      = errors.New("invalid validation code format")
)

// CodeChecker reports whether a validation code is already taken in the store.
type CodeChecker interface {
	CodeExists(ctx context.Context, code string) (bool, error)
}

type CodeCheckerFunc func(ctx context.Context, code string) (bool, error)

func (f CodeCheckerFunc) CodeExists(ctx context.Context, code string) (bool, error) {
	return f(ctx, code)
}

type CodeGenerator struct {
	checker     CodeChecker
	maxAttempts int
}

func NewCodeGenerator(checker CodeChecker, maxAttempts int) *CodeGenerator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxCodeAttempts
	}

	return &CodeGenerator{checker: checker, maxAttempts: maxAttempts}
}

// Generate draws codes until one is not present in the store.
// Running out of attempts returns ErrCodeSpaceExhausted and never an empty or duplicate code.
func (g *CodeGenerator) Generate(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		code, err := DrawCode()
		if err != nil {
			return "", fmt.Errorf("failed to draw validation code: %w", err)
		}

		exists, err := g.checker.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check validation code: %w", err)
		}

		if !exists {
			return code, nil
		}
	}

	return "", fmt.Errorf("%w: %d draws collided", ErrCodeSpaceExhausted, g.maxAttempts)
}

// DrawCode returns a random code shaped as 4 letters, 4 digits, 2 letters. Example: ABCD2345EF
func DrawCode() (string, error) {
	letters, err := gonanoid.Generate(CodeLetters, 6)
	if err != nil {
		return "", err
	}

	digits, err := gonanoid.Generate(CodeDigits, 4)
	if err != nil {
		return "", err
	}

	return letters[:4] + digits + letters[4:], nil
}

func NormalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// IsWellFormedCode only checks the overall shape: 10 characters, each an uppercase ASCII letter or digit.
// It does not require the generator pattern so codes issued before the constrained alphabet stay valid.
func IsWellFormedCode(code string) bool {
	if len(code) != ValidationCodeLength {
		return false
	}

	for i := 0; i < len(code); i++ {
		c := code[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}

	return true
}

// IsCanonicalCode reports whether the code matches exactly what the generator produces.
func IsCanonicalCode(code string) bool {
	if len(code) != ValidationCodeLength {
		return false
	}

	for i := 0; i < len(code); i++ {
		alphabet := CodeLetters
		if i >= 4 && i < 8 {
			alphabet = CodeDigits
		}
		if !strings.ContainsRune(alphabet, rune(code[i])) {
			return false
		}
	}

	return true
}

// ParseCode normalizes user input and rejects anything that is not shaped like a validation code.
func ParseCode(raw string) (string, error) {
	code := NormalizeCode(raw)
	if !IsWellFormedCode(code) {
		return "", ErrInvalidFormat
	}

	return code, nil
}
