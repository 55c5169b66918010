package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sebasotodlp/schoolar/internal/config"
	"github.com/sebasotodlp/schoolar/internal/repository"
)

// Seeds the emergency directory accounts into MongoDB so the dashboard
// works before any school registers on its own.
func main() {
	godotenv.Load()

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database("schoolardb")
	users := repository.NewUserRepo(db)
	directory := config.NewDirectory()

	seeded := 0
	for _, acct := range directory.EmergencyAccounts() {
		existing, err := users.GetByEmail(ctx, acct.Email)
		if err != nil {
			log.Fatalf("Failed to check existing account %s: %v", acct.Email, err)
		}
		if existing != nil {
			fmt.Printf("Account %s already exists, skipping\n", acct.Email)
			continue
		}
		u := acct
		if err := users.Create(ctx, &u); err != nil {
			log.Fatalf("Failed to seed account %s: %v", acct.Email, err)
		}
		fmt.Printf("Seeded admin account %s (%s)\n", u.Email, u.SchoolCode)
		seeded++
	}

	fmt.Printf("Done, %d account(s) created\n", seeded)
}
