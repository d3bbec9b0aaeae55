// Command admintoken mints a bearer token for the dictionary management
// endpoints. It reads ADMIN_JWT_SECRET and optional ADMIN_TOKEN_TTL from the
// environment and prints the signed token to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"skill-finder/internal/pkg/jwt"
)

func main() {
	subject := flag.String("subject", "admin", "token subject")
	flag.Parse()

	secret := strings.TrimSpace(os.Getenv("ADMIN_JWT_SECRET"))
	if secret == "" {
		log.Fatal("ADMIN_JWT_SECRET is not set")
	}

	ttl := 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("ADMIN_TOKEN_TTL")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			log.Fatalf("invalid ADMIN_TOKEN_TTL: %q", raw)
		}
		ttl = d
	}

	svc := jwt.NewHMACService(secret, ttl)
	token, err := svc.GenerateToken(*subject)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}

	fmt.Println(token)
}
