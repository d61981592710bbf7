// Seeds teacher credential documents. The announcements API only checks
// that a username exists; the password hash is written for the rest of the
// school system.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mergington/announcements-service/internal/config"
	"github.com/mergington/announcements-service/internal/domain"
	"github.com/mergington/announcements-service/internal/repo"
)

func main() {
	var (
		username = flag.String("username", "", "teacher username (required)")
		display  = flag.String("display-name", "", "display name")
		password = flag.String("password", "", "plaintext password to hash (required)")
		role     = flag.String("role", "teacher", "teacher|admin")
	)
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("usage: seed -username <name> -password <pw> [-display-name <n>] [-role teacher|admin]")
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := repo.NewStore(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer store.Close(context.Background())

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 12)
	if err != nil {
		log.Fatalf("hash: %v", err)
	}

	t := &domain.Teacher{
		Username:     *username,
		DisplayName:  *display,
		PasswordHash: string(hash),
		Role:         *role,
		CreatedAt:    time.Now().UTC(),
	}
	if t.DisplayName == "" {
		t.DisplayName = t.Username
	}
	if err := store.UpsertTeacher(ctx, t); err != nil {
		log.Fatalf("upsert teacher: %v", err)
	}
	log.Printf("teacher %q seeded", t.Username)
}
