package initializers

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnvVariables reads the .env file if one is present. Deployed
// environments set the variables directly, so a missing file is fine.
func LoadEnvVariables() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env:", err)
	}
}
