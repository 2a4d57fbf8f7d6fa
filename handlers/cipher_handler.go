// Package handlers is made to handle requests
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"vigenere-backend/crypto"
	"vigenere-backend/models"
	"vigenere-backend/store"

	"github.com/gin-gonic/gin"
)

type CipherHandler struct {
	records *store.RecordStore
}

func NewCipherHandler(records *store.RecordStore) *CipherHandler {
	return &CipherHandler{
		records: records,
	}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Vigenère cipher API is running",
		"version": "1.0.0",
	})
}

func (h *CipherHandler) EncryptMessage(c *gin.Context) {
	var req models.EncryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.EncryptResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
		return
	}

	model, err := resolveModel(req.Model)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.EncryptResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	ciphertext, err := encryptWithModel(req.Plaintext, req.Key, model)
	if err != nil {
		c.JSON(statusForCipherError(err), models.EncryptResponse{
			Success: false,
			Message: fmt.Sprintf("Encryption failed: %v", err),
		})
		return
	}

	resp := models.EncryptResponse{
		Success:    true,
		Message:    "Message encrypted successfully",
		Ciphertext: ciphertext,
	}

	if req.Persist {
		record := &models.CipherRecord{
			Ciphertext: ciphertext,
			Key:        req.Key,
			Model:      model,
		}
		if err := h.records.Save(record); err != nil {
			c.JSON(http.StatusInternalServerError, models.EncryptResponse{
				Success: false,
				Message: fmt.Sprintf("Failed to persist record: %v", err),
			})
			return
		}
		resp.RecordID = record.ID
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CipherHandler) DecryptMessage(c *gin.Context) {
	var req models.DecryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.DecryptResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid request: %v", err),
		})
		return
	}

	ciphertext := req.Ciphertext
	key := req.Key
	modelName := req.Model

	if req.RecordID != "" {
		record, err := h.records.Get(req.RecordID)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, models.DecryptResponse{
					Success: false,
					Message: fmt.Sprintf("Record %s not found", req.RecordID),
				})
				return
			}
			c.JSON(http.StatusInternalServerError, models.DecryptResponse{
				Success: false,
				Message: fmt.Sprintf("Failed to load record: %v", err),
			})
			return
		}
		ciphertext = record.Ciphertext
		key = record.Key
		modelName = record.Model
	}

	if key == "" {
		c.JSON(http.StatusBadRequest, models.DecryptResponse{
			Success: false,
			Message: "Key is required",
		})
		return
	}

	model, err := resolveModel(modelName)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.DecryptResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	plaintext, err := decryptWithModel(ciphertext, key, model)
	if err != nil {
		c.JSON(statusForCipherError(err), models.DecryptResponse{
			Success: false,
			Message: fmt.Sprintf("Decryption failed: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, models.DecryptResponse{
		Success:   true,
		Message:   "Message decrypted successfully",
		Plaintext: plaintext,
	})
}

func (h *CipherHandler) ListRecords(c *gin.Context) {
	records, err := h.records.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.RecordListResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to list records: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, models.RecordListResponse{
		Success: true,
		Records: records,
	})
}

func (h *CipherHandler) GetRecord(c *gin.Context) {
	record, err := h.records.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.RecordResponse{
				Success: false,
				Message: "Record not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.RecordResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to load record: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, models.RecordResponse{
		Success: true,
		Record:  record,
	})
}

func (h *CipherHandler) DeleteRecord(c *gin.Context) {
	if err := h.records.Delete(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Record not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": fmt.Sprintf("Failed to delete record: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Record deleted",
	})
}

func resolveModel(name string) (string, error) {
	switch name {
	case "", models.ModelCodepoint:
		return models.ModelCodepoint, nil
	case models.ModelClassic:
		return models.ModelClassic, nil
	default:
		return "", fmt.Errorf("unknown shift model %q, expected %q or %q",
			name, models.ModelCodepoint, models.ModelClassic)
	}
}

func encryptWithModel(plaintext, key, model string) (string, error) {
	if model == models.ModelClassic {
		cipher, err := crypto.NewClassicCipher(key)
		if err != nil {
			return "", err
		}
		return cipher.Encrypt(plaintext)
	}
	return crypto.NewCipher(key).Encrypt(plaintext)
}

func decryptWithModel(ciphertext, key, model string) (string, error) {
	if model == models.ModelClassic {
		cipher, err := crypto.NewClassicCipher(key)
		if err != nil {
			return "", err
		}
		return cipher.Decrypt(ciphertext)
	}
	return crypto.NewCipher(key).Decrypt(ciphertext)
}

// statusForCipherError maps bad-input cipher errors to 400 and everything
// else to 500.
func statusForCipherError(err error) int {
	switch {
	case errors.Is(err, crypto.ErrEmptyKey),
		errors.Is(err, crypto.ErrKeyTooLong),
		errors.Is(err, crypto.ErrKeyNotAlphabetic),
		errors.Is(err, crypto.ErrInvalidCodepoint):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
