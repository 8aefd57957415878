package main

import (
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"evosystem/internal/client"
	"evosystem/internal/tui"
)

const defaultBaseURL = "http://127.0.0.1:8080/api"

func main() {
	baseURL := os.Getenv("EVOSYSTEM_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	core := tui.NewCore(client.New(baseURL))
	if err := tui.Run(core); err != nil {
		log.Fatalf("[tui] %v", err)
	}
}
