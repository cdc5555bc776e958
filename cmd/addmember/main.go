// Command addmember registers a member in the MySQL store used by the
// sql credential verifier.
//
//	addmember -email fan@example.com -credential 4242
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/iliyamo/concert-watch-rooms/internal/config"
	"github.com/iliyamo/concert-watch-rooms/internal/database"
	"github.com/iliyamo/concert-watch-rooms/internal/repository"
	"github.com/iliyamo/concert-watch-rooms/internal/utils"
	"github.com/iliyamo/concert-watch-rooms/internal/verifier"
)

func main() {
	email := flag.String("email", "", "member email")
	credential := flag.String("credential", "", "member credential, at least 4 characters")
	flag.Parse()

	*email = strings.TrimSpace(*email)
	if !verifier.ValidIdentity(*email) {
		log.Fatal("a valid -email is required")
	}
	if len(*credential) < utils.MinPinLen {
		log.Fatalf("-credential must be at least %d characters", utils.MinPinLen)
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	id, err := repository.NewMemberRepo(db).Create(ctx, *email, *credential, cfg.BcryptCost)
	if errors.Is(err, repository.ErrMemberExists) {
		fmt.Fprintf(os.Stderr, "member %s already exists\n", *email)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("create member: %v", err)
	}
	fmt.Printf("member %d created for %s\n", id, *email)
}
