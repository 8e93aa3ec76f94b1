// Command chat is a terminal version of the storefront's support widget.
// It keeps one transcript for the session and talks to the relay over HTTP.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"clickconnect-backend/internal/transcript"
)

func main() {
	godotenv.Load()

	defaultURL := os.Getenv("CHAT_RELAY_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:3001"
	}
	relayURL := flag.String("relay", defaultURL, "base URL of the chat relay")
	timeout := flag.Duration("timeout", 60*time.Second, "per-message HTTP timeout")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	relay := transcript.NewHTTPRelay(*relayURL, &http.Client{Timeout: *timeout})
	store := transcript.NewStore(relay, transcript.Greeting)

	fmt.Println("Suporte Online (Ctrl+D para sair)")
	for _, t := range store.Turns() {
		printTurn(t)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fmt.Println("  ...")
		bot, err := store.Send(ctx, line)
		if err != nil && bot.Text() == "" {
			log.Printf("✗ %v", err)
			continue
		}
		printTurn(bot)

		if ctx.Err() != nil {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("✗ reading input: %v", err)
	}
}

func printTurn(t transcript.Turn) {
	label := "Você"
	if t.Speaker() == transcript.SpeakerAssistant {
		label = "Assistente"
	}
	fmt.Printf("%s: %s\n", label, t.Text())
}
