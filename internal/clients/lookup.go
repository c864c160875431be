package clients

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// DefaultProxyBaseURL is where the local dictd HTTP proxy listens unless
// configured otherwise.
const DefaultProxyBaseURL = "http://localhost:8000/define"

const previewLen = 100

// LookupClient calls the local dictionary proxy.
type LookupClient struct {
	proxyBaseURL string
	httpClient   *http.Client
}

// Option configures a LookupClient at construction time.
type Option func(*LookupClient)

// WithProxyBaseURL overrides DefaultProxyBaseURL. Empty values are ignored.
func WithProxyBaseURL(baseURL string) Option {
	return func(c *LookupClient) {
		if baseURL != "" {
			c.proxyBaseURL = baseURL
		}
	}
}

// WithHTTPClient sets the HTTP client used for proxy requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *LookupClient) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func NewLookupClient(opts ...Option) *LookupClient {
	c := &LookupClient{
		proxyBaseURL: DefaultProxyBaseURL,
		httpClient:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProxyBaseURL returns the configured proxy URL.
func (c *LookupClient) ProxyBaseURL() string {
	return c.proxyBaseURL
}

// Lookup fetches the definition of word from the proxy and returns it
// wrapped in <pre></pre>. The definition is passed through unescaped.
// Failures are always a *LookupError.
func (c *LookupClient) Lookup(ctx context.Context, word string) (string, error) {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return "", &LookupError{Kind: KindInvalidInput, Word: word}
	}

	lookupURL := c.lookupURL(trimmed)
	slog.Info("dictionary lookup", "word", trimmed, "url", lookupURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		// Only reachable with an unparseable base URL.
		return "", &LookupError{Kind: KindConnection, Word: trimmed, BaseURL: c.proxyBaseURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		kind := KindConnection
		if isTimeout(err) {
			kind = KindTimeout
		}
		slog.Error("dictionary proxy unreachable", "url", c.proxyBaseURL, "error", err)
		return "", &LookupError{Kind: kind, Word: trimmed, BaseURL: c.proxyBaseURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		slog.Error("dictionary proxy error", "status", resp.StatusCode, "body", string(raw))
		return "", &LookupError{
			Kind:    KindServer,
			Word:    trimmed,
			BaseURL: c.proxyBaseURL,
			Status:  resp.StatusCode,
			Body:    string(raw),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		kind := KindConnection
		if isTimeout(err) {
			kind = KindTimeout
		}
		return "", &LookupError{Kind: kind, Word: trimmed, BaseURL: c.proxyBaseURL, Err: err}
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		slog.Error("dictionary proxy decode", "word", trimmed, "error", err)
		return "", &LookupError{Kind: KindMalformedResponse, Word: trimmed, BaseURL: c.proxyBaseURL, Err: err}
	}

	definition, ok := definitionOf(payload)
	if !ok {
		slog.Warn("no definition in proxy response", "word", word, "body", string(raw))
		return "", &LookupError{Kind: KindNotFound, Word: word, BaseURL: c.proxyBaseURL}
	}

	slog.Info("definition found", "word", trimmed, "preview", preview(definition))
	return "<pre>" + definition + "</pre>", nil
}

func (c *LookupClient) lookupURL(word string) string {
	sep := "?"
	if strings.Contains(c.proxyBaseURL, "?") {
		sep = "&"
	}
	return c.proxyBaseURL + sep + "word=" + encodeQueryComponent(word)
}

// encodeQueryComponent percent-encodes s for use as a query value, with
// spaces as %20 rather than +.
func encodeQueryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func definitionOf(payload any) (string, bool) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return "", false
	}
	definition, ok := obj["definition"].(string)
	if !ok || definition == "" {
		return "", false
	}
	return definition, true
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= previewLen {
		return s
	}
	return string(r[:previewLen]) + "..."
}
