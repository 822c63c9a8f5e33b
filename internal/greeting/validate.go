package greeting

import (
	"errors"
	"strings"
	"unicode"
)

// Business-rule validation errors. The handler layer maps these to
// client-facing 400 responses.
var (
	ErrUnsupportedLanguage = errors.New("Unsupported language. Use 'en' or 'hi'.")
	ErrAllDigitsName       = errors.New("Name cannot be all digits.")
)

// supportedLanguages are the language codes the crafter has tables for.
var supportedLanguages = map[string]bool{
	"en": true,
	"hi": true,
}

// ValidateLanguage checks that code is a supported language,
// case-insensitively.
func ValidateLanguage(code string) error {
	if !supportedLanguages[strings.ToLower(code)] {
		return ErrUnsupportedLanguage
	}
	return nil
}

// ValidateName rejects names composed entirely of digit characters.
// Emptiness and length are enforced at the schema layer, not here.
func ValidateName(name string) error {
	if isAllDigits(name) {
		return ErrAllDigitsName
	}
	return nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
