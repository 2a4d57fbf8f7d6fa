package crypto

import "unicode"

// ClassicCipher is the traditional 26-letter Vigenère: shifts wrap mod 26,
// only letters are shifted, everything else passes through unchanged, and
// the plaintext's capitalization survives a round-trip. It produces
// ciphertexts incompatible with the code-point Cipher; the two models must
// never be mixed on the same text.
type ClassicCipher struct {
	key string
}

func NewClassicCipher(key string) (*ClassicCipher, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	for _, r := range key {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return nil, ErrKeyNotAlphabetic
		}
	}
	return &ClassicCipher{key: key}, nil
}

// ExpandClassicKey repeats key across text and mirrors each text rune's
// case onto the corresponding key rune, so the same shift is computed no
// matter how the plaintext was capitalized. The key advances on every
// character, including the non-letters the cipher leaves untouched.
func ExpandClassicKey(text, key string) (string, error) {
	if len(key) == 0 {
		return "", ErrEmptyKey
	}

	keyRunes := []rune(key)
	textRunes := []rune(text)

	expanded := make([]rune, len(textRunes))
	for i, char := range textRunes {
		k := keyRunes[i%len(keyRunes)]
		if unicode.IsLower(char) {
			expanded[i] = unicode.ToLower(k)
		} else {
			expanded[i] = unicode.ToUpper(k)
		}
	}

	return string(expanded), nil
}

// TransformClassic applies the mod-26 shift of each expandedKey rune to the
// matching text rune. Non-letter text runes are copied as-is but still
// consume their key position.
func TransformClassic(text, expandedKey string, dir Direction) (string, error) {
	textRunes := []rune(text)
	keyRunes := []rune(expandedKey)

	if len(textRunes) != len(keyRunes) {
		return "", ErrLengthMismatch
	}

	result := make([]rune, len(textRunes))
	for i, char := range textRunes {
		result[i] = classicShift(char, keyRunes[i], dir)
	}

	return string(result), nil
}

func classicShift(char, key rune, dir Direction) rune {
	var base rune
	switch {
	case char >= 'a' && char <= 'z':
		base = 'a'
	case char >= 'A' && char <= 'Z':
		base = 'A'
	default:
		return char
	}

	shift := unicode.ToUpper(key) - 'A'
	if dir == Decrypt {
		shift = -shift
	}

	return (char-base+shift+26)%26 + base
}

func (c *ClassicCipher) Encrypt(plaintext string) (string, error) {
	expanded, err := ExpandClassicKey(plaintext, c.key)
	if err != nil {
		return "", err
	}
	return TransformClassic(plaintext, expanded, Encrypt)
}

func (c *ClassicCipher) Decrypt(ciphertext string) (string, error) {
	expanded, err := ExpandClassicKey(ciphertext, c.key)
	if err != nil {
		return "", err
	}
	return TransformClassic(ciphertext, expanded, Decrypt)
}
