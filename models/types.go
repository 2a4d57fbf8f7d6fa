// Package models contain needed models
package models

import "time"

// Shift model identifiers accepted by the API.
const (
	ModelCodepoint = "codepoint"
	ModelClassic   = "classic"
)

// EncryptRequest represents the request for encrypting a message
type EncryptRequest struct {
	Plaintext string `json:"plaintext" binding:"required"`
	Key       string `json:"key" binding:"required"`
	Model     string `json:"model"`
	Persist   bool   `json:"persist"`
}

// EncryptResponse represents the response after encryption
type EncryptResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Ciphertext string `json:"ciphertext,omitempty"`
	RecordID   string `json:"record_id,omitempty"`
}

// DecryptRequest represents the request for decrypting a message.
// Either (Ciphertext, Key) or RecordID must be supplied; with a RecordID
// the stored ciphertext, key and model are used.
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext"`
	Key        string `json:"key"`
	Model      string `json:"model"`
	RecordID   string `json:"record_id"`
}

// DecryptResponse represents the response after decryption
type DecryptResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Plaintext string `json:"plaintext,omitempty"`
}

// CipherRecord is a persisted (ciphertext, key) pair. Storing the key next
// to the ciphertext it produced makes the record trivially decryptable;
// that weakness is inherited from the original design and records are only
// written when a caller explicitly asks for persistence.
type CipherRecord struct {
	ID         string    `json:"id"`
	Ciphertext string    `json:"ciphertext"`
	Key        string    `json:"key"`
	Model      string    `json:"model"`
	CreatedAt  time.Time `json:"created_at"`
}

// RecordResponse represents the response for a single stored record
type RecordResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Record  *CipherRecord `json:"record,omitempty"`
}

// RecordListResponse represents the response for listing stored records
type RecordListResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Records []*CipherRecord `json:"records"`
}
