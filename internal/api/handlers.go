package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mwhite7112/woodpantry-dictlookup/internal/clients"
	"github.com/mwhite7112/woodpantry-dictlookup/internal/host"
	"github.com/mwhite7112/woodpantry-dictlookup/internal/service"
)

// NewRouter wires all routes.
func NewRouter(lookups *service.LookupService, registry *host.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)

	r.Get("/lookup", handleLookup(lookups))
	r.Get("/dictionaries", handleListDictionaries(registry))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- GET /lookup?word= ---

func handleLookup(lookups *service.LookupService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		word := r.URL.Query().Get("word")

		definition, err := lookups.Lookup(r.Context(), word)
		if err != nil {
			kind := clients.KindOf(err)
			lookupError(w, err.Error(), kind, statusFor(kind))
			return
		}

		jsonOK(w, map[string]string{
			"word":       word,
			"definition": definition,
		})
	}
}

func statusFor(kind clients.Kind) int {
	switch kind {
	case clients.KindInvalidInput:
		return http.StatusBadRequest
	case clients.KindNotFound:
		return http.StatusNotFound
	case clients.KindServer, clients.KindConnection, clients.KindMalformedResponse:
		return http.StatusBadGateway
	case clients.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// --- GET /dictionaries ---

func handleListDictionaries(registry *host.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jsonOK(w, map[string]any{"dictionaries": registry.Names()})
	}
}

// --- helpers ---

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func lookupError(w http.ResponseWriter, msg string, kind clients.Kind, status int) {
	body := map[string]string{"error": msg}
	if kind != "" {
		body["kind"] = string(kind)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}
