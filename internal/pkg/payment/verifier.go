package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ManuelReschke/SiteForge/internal/pkg/env"
)

const defaultAPIBaseURL = "https://api.paystack.co"

var (
	ErrNotVerified    = errors.New("payment reference was not confirmed by the processor")
	ErrAmountMismatch = errors.New("verified amount does not match the amount due")
)

// Verifier confirms a widget success reference with the processor's REST API
// before the outcome is recorded.
type Verifier struct {
	SecretKey  string
	APIBaseURL string
	HTTPClient *http.Client
}

// Verification is the processor's view of a transaction.
type Verification struct {
	Reference   string
	Status      string
	AmountMinor int64
	Currency    string
	PaidAt      string
}

// NewVerifierFromEnv returns nil when no secret key is configured; callers
// then accept widget references as reported.
func NewVerifierFromEnv() *Verifier {
	secret := strings.TrimSpace(env.GetEnv("PAYMENT_SECRET_KEY", ""))
	if secret == "" {
		return nil
	}
	return &Verifier{
		SecretKey:  secret,
		APIBaseURL: strings.TrimSpace(env.GetEnv("PAYMENT_API_BASE_URL", defaultAPIBaseURL)),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Verify looks up reference and checks it settled for expectedMinor. A zero
// expectedMinor skips the amount check.
func (v *Verifier) Verify(ctx context.Context, reference string, expectedMinor int64) (*Verification, error) {
	ref := strings.TrimSpace(reference)
	if ref == "" {
		return nil, errors.New("payment reference is required")
	}

	baseURL := strings.TrimRight(v.APIBaseURL, "/")
	u, err := url.Parse(baseURL + "/transaction/verify/" + url.PathEscape(ref))
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+v.SecretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := v.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("payment verification failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var raw struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			Status    string `json:"status"`
			Reference string `json:"reference"`
			Amount    int64  `json:"amount"`
			Currency  string `json:"currency"`
			PaidAt    string `json:"paid_at"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	out := &Verification{
		Reference:   strings.TrimSpace(raw.Data.Reference),
		Status:      strings.ToLower(strings.TrimSpace(raw.Data.Status)),
		AmountMinor: raw.Data.Amount,
		Currency:    strings.TrimSpace(raw.Data.Currency),
		PaidAt:      raw.Data.PaidAt,
	}
	if !raw.Status || out.Status != "success" {
		return out, fmt.Errorf("%w: %s", ErrNotVerified, strings.TrimSpace(raw.Message))
	}
	if expectedMinor > 0 && out.AmountMinor != expectedMinor {
		return out, fmt.Errorf("%w: got %d want %d", ErrAmountMismatch, out.AmountMinor, expectedMinor)
	}
	return out, nil
}
