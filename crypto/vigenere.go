// Package crypto contains Vigenère Encryption and Decryption
package crypto

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Direction selects whether Transform adds or subtracts the key shifts.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

const maxKeyRunes = 256

var (
	ErrEmptyKey         = errors.New("key cannot be empty")
	ErrKeyTooLong       = errors.New("key length cannot exceed 256 characters")
	ErrKeyNotAlphabetic = errors.New("key must contain only letters")
	ErrLengthMismatch   = errors.New("text and expanded key have different lengths")
	ErrInvalidCodepoint = errors.New("shift result is not a valid code point")
)

// ValidateKey validates if the key is suitable for the code-point cipher
func ValidateKey(key string) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	if utf8.RuneCountInString(key) > maxKeyRunes {
		return ErrKeyTooLong
	}
	return nil
}

// ExpandKey repeats key cyclically so that it covers every rune of text,
// one key rune per text rune. The expanded key satisfies
// expanded[i] == key[i % len(key)] over runes.
func ExpandKey(text, key string) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}

	keyRunes := []rune(key)
	textRunes := []rune(text)

	expanded := make([]rune, len(textRunes))
	for i := range textRunes {
		expanded[i] = keyRunes[i%len(keyRunes)]
	}

	return string(expanded), nil
}

// Transform shifts every rune of text by the code point of the matching
// rune in expandedKey: addition for Encrypt, subtraction for Decrypt.
// There is no alphabet wraparound, so a shift can land far outside
// printable ASCII. A result that is negative, above unicode.MaxRune or
// inside the UTF-16 surrogate block is rejected with ErrInvalidCodepoint
// instead of being emitted, since a Go string cannot carry it intact.
func Transform(text, expandedKey string, dir Direction) (string, error) {
	textRunes := []rune(text)
	keyRunes := []rune(expandedKey)

	if len(textRunes) != len(keyRunes) {
		return "", fmt.Errorf("%w: text has %d runes, expanded key has %d",
			ErrLengthMismatch, len(textRunes), len(keyRunes))
	}

	result := make([]rune, len(textRunes))
	for i, char := range textRunes {
		shift := int(keyRunes[i])

		var cp int
		if dir == Encrypt {
			cp = int(char) + shift
		} else {
			cp = int(char) - shift
		}

		if !isValidCodepoint(cp) {
			return "", fmt.Errorf("%w: position %d yields %d", ErrInvalidCodepoint, i, cp)
		}
		result[i] = rune(cp)
	}

	return string(result), nil
}

func isValidCodepoint(cp int) bool {
	if cp < 0 || cp > unicode.MaxRune {
		return false
	}
	// Surrogate halves are not encodable as UTF-8.
	return cp < 0xD800 || cp > 0xDFFF
}

// Cipher applies the generalized code-point Vigenère with a fixed key.
type Cipher struct {
	key string
}

func NewCipher(key string) *Cipher {
	return &Cipher{key: key}
}

func (c *Cipher) Encrypt(plaintext string) (string, error) {
	expanded, err := ExpandKey(plaintext, c.key)
	if err != nil {
		return "", err
	}
	return Transform(plaintext, expanded, Encrypt)
}

func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	expanded, err := ExpandKey(ciphertext, c.key)
	if err != nil {
		return "", err
	}
	return Transform(ciphertext, expanded, Decrypt)
}
