package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// SessionTTL is the absolute session lifetime, matching the 30-day sessions
// the previous frontend issued.
const SessionTTL = 30 * 24 * time.Hour

const SessionCookieName = "session_token"

var JWTSecret []byte

// LoadAuthConfig reads the session-signing secret. A running deployment must
// fail fast without one — unsigned sessions would make the admin gate
// meaningless.
func LoadAuthConfig() {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot sign session tokens.")
	}
	JWTSecret = []byte(secret)
	log.Println("✅ JWT_SECRET detected.")
}
