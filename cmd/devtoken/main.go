package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yahna8/store-and-inventory-microservice/internal/auth"
	"github.com/yahna8/store-and-inventory-microservice/internal/config"
)

var (
	errMissingUser    = errors.New("-user is required")
	errNotDevelopment = errors.New("dev tokens are only issued when ENVIRONMENT is dev or development")
)

// devtoken prints a bearer token signed with JWT_SECRET so the store and
// inventory endpoints can be called locally without the identity service.
func main() {
	userID := flag.String("user", "", "user id placed in the token subject")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "devtoken failed: %v\n", err)
		os.Exit(1)
	}

	token, err := issue(cfg, *userID, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "devtoken failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

func issue(cfg *config.Config, userID string, ttl time.Duration) (string, error) {
	if !cfg.IsDevelopment() {
		return "", errNotDevelopment
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", errMissingUser
	}
	return auth.IssueToken(cfg.JWTSecret, userID, ttl)
}
