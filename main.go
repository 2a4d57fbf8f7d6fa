package main

import (
	"log"
	"os"
	"vigenere-backend/handlers"
	"vigenere-backend/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	recordStore, err := store.NewRecordStore(dataDir)
	if err != nil {
		log.Fatalf("Failed to initialize record store: %v", err)
	}

	router := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}
	config.AllowCredentials = true
	router.Use(cors.New(config))

	cipherHandler := handlers.NewCipherHandler(recordStore)

	// API Routes
	api := router.Group("/api/v1")
	{
		api.GET("/health", cipherHandler.HealthCheck)

		cipher := api.Group("/cipher")
		{
			cipher.POST("/encrypt", cipherHandler.EncryptMessage)
			cipher.POST("/decrypt", cipherHandler.DecryptMessage)
			cipher.GET("/records", cipherHandler.ListRecords)
			cipher.GET("/records/:id", cipherHandler.GetRecord)
			cipher.DELETE("/records/:id", cipherHandler.DeleteRecord)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API endpoints:")
	log.Printf("  POST   /api/v1/cipher/encrypt      - Encrypt a message with a keyword")
	log.Printf("  POST   /api/v1/cipher/decrypt      - Decrypt a message or a stored record")
	log.Printf("  GET    /api/v1/cipher/records      - List stored (ciphertext, key) records")
	log.Printf("  GET    /api/v1/cipher/records/:id  - Fetch a stored record")
	log.Printf("  DELETE /api/v1/cipher/records/:id  - Delete a stored record")
	log.Printf("  GET    /api/v1/health              - Health check")
	log.Printf("")
	log.Printf("Shift models:")
	log.Printf("  • codepoint (default) - full code-point arithmetic, no wraparound")
	log.Printf("  • classic             - 26-letter alphabet with wraparound, case preserved")
	log.Printf("")
	log.Printf("Records store the key next to the ciphertext; persistence is opt-in")

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
