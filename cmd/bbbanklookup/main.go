package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/client"
	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/config"
	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/lookup"

	"github.com/joho/godotenv"
)

// Interactive account lookup console. Typing an account number and pressing
// enter plays the part of leaving the input field; an empty line plays the
// part of focusing it again.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	fetcher := client.NewClient(cfg.Lookup.BaseURL, cfg.Lookup.Timeout)
	form := lookup.NewForm(fetcher, logger)

	fmt.Printf("bbbank account lookup (%s)\n", cfg.Lookup.BaseURL)
	fmt.Println("enter an account number to look it up, an empty line to clear the message, or q to quit")

	render(form.Snapshot())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "q" || line == "quit" {
			break
		}

		var snap lookup.Snapshot
		if line == "" {
			snap = form.FocusIn()
		} else {
			snap = form.FocusOut(context.Background(), line)
		}
		render(snap)
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("input error: %v", err)
	}
}

func render(snap lookup.Snapshot) {
	if snap.Message != "" {
		fmt.Printf("  ! %s\n", snap.Message)
	}

	switch {
	case snap.Account.IsEmpty():
		fmt.Println("  no account loaded")
	default:
		fmt.Printf("  %-14s %s\n", "title:", snap.Account.AccountTitle)
		fmt.Printf("  %-14s %s\n", "number:", snap.Account.AccountNumber)
		fmt.Printf("  %-14s %s\n", "balance:", snap.Account.CurrentBalance.StringFixed(2))
		fmt.Printf("  %-14s %s\n", "status:", snap.Account.AccountStatus)
		fmt.Printf("  %-14s %s\n", "image:", snap.Account.UserImageURL)
	}
}
