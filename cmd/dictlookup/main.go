package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/mwhite7112/woodpantry-dictlookup/internal/api"
	"github.com/mwhite7112/woodpantry-dictlookup/internal/clients"
	"github.com/mwhite7112/woodpantry-dictlookup/internal/events"
	"github.com/mwhite7112/woodpantry-dictlookup/internal/host"
	"github.com/mwhite7112/woodpantry-dictlookup/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	port := envOrDefault("PORT", "8080")
	proxyURL := envOrDefault("PROXY_BASE_URL", clients.DefaultProxyBaseURL)
	dictName := envOrDefault("DICTIONARY", host.LocalDictdName)

	timeout, err := time.ParseDuration(envOrDefault("HTTP_TIMEOUT", "10s"))
	if err != nil {
		log.Fatalf("HTTP_TIMEOUT: %v", err)
	}
	httpClient := &http.Client{Timeout: timeout}

	registry := host.NewRegistry()
	if err := host.RegisterLocalDictd(registry, proxyURL, httpClient); err != nil {
		log.Fatalf("register dictionaries: %v", err)
	}

	dict, err := registry.New(dictName)
	if err != nil {
		log.Fatalf("dictionary: %v (registered: %v)", err, registry.Names())
	}

	var publisher service.EventPublisher
	if rabbitURL := os.Getenv("RABBITMQ_URL"); rabbitURL != "" {
		pub, err := events.NewLookupPublisher(rabbitURL)
		if err != nil {
			log.Fatalf("events: %v", err)
		}
		defer pub.Close()
		publisher = pub
	} else {
		slog.Info("RABBITMQ_URL not set, lookup events disabled")
	}

	lookups := service.NewLookupService(dict, publisher)
	handler := api.NewRouter(lookups, registry)

	addr := fmt.Sprintf(":%s", port)
	log.Printf("dictlookup listening on %s (dictionary %s, proxy %s)", addr, dictName, proxyURL)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
