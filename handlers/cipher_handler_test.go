package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"vigenere-backend/models"
	"vigenere-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recordStore, err := store.NewRecordStore(t.TempDir())
	assert.NoError(t, err)

	h := NewCipherHandler(recordStore)

	router := gin.New()
	api := router.Group("/api/v1")
	api.GET("/health", h.HealthCheck)
	cipher := api.Group("/cipher")
	cipher.POST("/encrypt", h.EncryptMessage)
	cipher.POST("/decrypt", h.DecryptMessage)
	cipher.GET("/records", h.ListRecords)
	cipher.GET("/records/:id", h.GetRecord)
	cipher.DELETE("/records/:id", h.DeleteRecord)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func Test_HealthCheck_ReturnsHealthy(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func Test_Encrypt_Decrypt_RoundTrip(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/cipher/encrypt", models.EncryptRequest{
		Plaintext: "Attack at Dawn!!",
		Key:       "LeMON",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var encResp models.EncryptResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &encResp))
	assert.True(t, encResp.Success)
	assert.NotEqual(t, "Attack at Dawn!!", encResp.Ciphertext)

	w = postJSON(t, router, "/api/v1/cipher/decrypt", models.DecryptRequest{
		Ciphertext: encResp.Ciphertext,
		Key:        "LeMON",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var decResp models.DecryptResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &decResp))
	assert.True(t, decResp.Success)
	assert.Equal(t, "Attack at Dawn!!", decResp.Plaintext)
}

func Test_Encrypt_ClassicModel_KnownVector(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/cipher/encrypt", models.EncryptRequest{
		Plaintext: "ATTACKATDAWN",
		Key:       "LEMON",
		Model:     models.ModelClassic,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.EncryptResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "LXFOPVEFRNHR", resp.Ciphertext)
}

func Test_Encrypt_MissingKey_ReturnsBadRequest(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/cipher/encrypt", models.EncryptRequest{
		Plaintext: "hello",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_Encrypt_UnknownModel_ReturnsBadRequest(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/cipher/encrypt", models.EncryptRequest{
		Plaintext: "hello",
		Key:       "k",
		Model:     "rot13",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_Decrypt_UnderflowingCiphertext_ReturnsBadRequest(t *testing.T) {
	router := newTestRouter(t)

	// 'A' (65) minus 'z' (122) is negative, which the cipher rejects.
	w := postJSON(t, router, "/api/v1/cipher/decrypt", models.DecryptRequest{
		Ciphertext: "A",
		Key:        "z",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_Encrypt_Persist_DecryptByRecordID(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/cipher/encrypt", models.EncryptRequest{
		Plaintext: "attack at dawn",
		Key:       "LEMON",
		Persist:   true,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var encResp models.EncryptResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &encResp))
	assert.NotEmpty(t, encResp.RecordID)

	// The stored record carries its own key and model.
	w = postJSON(t, router, "/api/v1/cipher/decrypt", models.DecryptRequest{
		RecordID: encResp.RecordID,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var decResp models.DecryptResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &decResp))
	assert.Equal(t, "attack at dawn", decResp.Plaintext)
}

func Test_Decrypt_UnknownRecord_ReturnsNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/cipher/decrypt", models.DecryptRequest{
		RecordID: "9d2e7c52-0f6a-4f5e-a9a3-1c1b2d3e4f55",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_Records_ListGetDelete(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/cipher/encrypt", models.EncryptRequest{
		Plaintext: "hello",
		Key:       "world",
		Persist:   true,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var encResp models.EncryptResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &encResp))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cipher/records", nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)

	var listResp models.RecordListResponse
	assert.NoError(t, json.Unmarshal(w2.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Records, 1)
	assert.Equal(t, "world", listResp.Records[0].Key)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/cipher/records/"+encResp.RecordID, nil)
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, req)
	assert.Equal(t, http.StatusOK, w3.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/cipher/records/"+encResp.RecordID, nil)
	w4 := httptest.NewRecorder()
	router.ServeHTTP(w4, req)
	assert.Equal(t, http.StatusOK, w4.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/cipher/records/"+encResp.RecordID, nil)
	w5 := httptest.NewRecorder()
	router.ServeHTTP(w5, req)
	assert.Equal(t, http.StatusNotFound, w5.Code)
}
