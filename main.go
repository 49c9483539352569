package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/example/hootacademy/internal/bot"
	"github.com/example/hootacademy/internal/curriculum"
	"github.com/example/hootacademy/internal/database"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Imported standards extend the built-in catalog
	stored, err := database.NewStandardRepository().GetAll()
	if err != nil {
		log.Fatalf("Failed to load curriculum standards: %v", err)
	}
	catalog := curriculum.NewCatalog(stored...)
	log.Printf("Curriculum loaded: %d standards", catalog.Len())

	b, err := bot.New(catalog)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		b.Stop()
	}()

	log.Println("Bot started. Press Ctrl+C to stop.")
	if err := b.Start(); err != nil {
		log.Fatalf("Bot error: %v", err)
	}

	log.Println("Bot stopped successfully")
}
