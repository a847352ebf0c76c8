// Command generate_token prints a signed bearer token for the given
// user and role, using the same configuration as the API server.
//
// Usage:
//
//	generate_token <user_id> <role_id>
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/dev-mohitbeniwal/lotr/api/auth"
	"github.com/dev-mohitbeniwal/lotr/api/config"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <user_id> <role_id>\n", os.Args[0])
		os.Exit(1)
	}

	userID, err := strconv.Atoi(os.Args[1])
	if err != nil {
		log.Fatalf("Invalid user_id %q: %v", os.Args[1], err)
	}
	roleID, err := strconv.Atoi(os.Args[2])
	if err != nil {
		log.Fatalf("Invalid role_id %q: %v", os.Args[2], err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	tokenManager := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	token, err := tokenManager.GenerateToken(userID, roleID)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Println(token)
}
