//go:build ignore

// This script generates a JWT secret and an operator API key with its bcrypt hash.
// Run with: go run scripts/generate_keys.go [operator-name]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/guttosm/pack-planner/internal/service"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func main() {
	operator := service.DefaultKeySubject
	if len(os.Args) > 1 && os.Args[1] != "" {
		operator = os.Args[1]
	}

	jwtSecret, err := generateSecureKey(32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating JWT secret: %v\n", err)
		os.Exit(1)
	}

	apiKey, err := generateSecureKey(24)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating API key: %v\n", err)
		os.Exit(1)
	}

	hash, err := service.HashAPIKey(apiKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing API key: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Pack Planner Key Generator ===")
	fmt.Println()
	fmt.Println("# Server configuration")
	fmt.Println("AUTH_ENABLED=true")
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Printf("API_KEY_HASHES=%s=%s\n", operator, hash)
	fmt.Println()
	fmt.Printf("# Key to hand to %s (sent as X-API-Key)\n", operator)
	fmt.Println(apiKey)
	fmt.Println()
	fmt.Println("The plaintext key is not stored anywhere; keep it in a secret manager.")
}
