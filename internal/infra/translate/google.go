// Package translate holds the faq.Translator adapters.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/yanqian/faq-service/internal/domain/faq"
)

const defaultGoogleBaseURL = "https://translate.googleapis.com"

// GoogleTranslator calls the public Google Translate "gtx" endpoint.
type GoogleTranslator struct {
	baseURL    string
	httpClient *http.Client
}

// NewGoogleTranslator constructs the adapter. A nil httpClient uses
// http.DefaultClient; deadlines come from the request context.
func NewGoogleTranslator(baseURL string, httpClient *http.Client) *GoogleTranslator {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultGoogleBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GoogleTranslator{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Translate implements faq.Translator. Stored text is always authored in
// faq.CanonicalLanguage, so the source is fixed rather than detected.
func (t *GoogleTranslator) Translate(ctx context.Context, text string, target faq.Language) (string, error) {
	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", string(faq.CanonicalLanguage))
	query.Set("tl", string(target))
	query.Set("dt", "t")
	query.Set("q", text)
	endpoint := t.baseURL + "/translate_a/single?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build translate request: %w", err)
	}
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request translation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("translate request failed: status=%d body=%s", resp.StatusCode, string(body))
	}
	var payload []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode translation: %w", err)
	}
	return joinSegments(payload)
}

// joinSegments reads the first element of the response, a list of
// [translated, original, ...] tuples, and concatenates the translations.
func joinSegments(payload []json.RawMessage) (string, error) {
	if len(payload) == 0 {
		return "", errors.New("translation response is empty")
	}
	var segments [][]any
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("decode translation segments: %w", err)
	}
	var b strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		if part, ok := segment[0].(string); ok {
			b.WriteString(part)
		}
	}
	return b.String(), nil
}

var _ faq.Translator = (*GoogleTranslator)(nil)
