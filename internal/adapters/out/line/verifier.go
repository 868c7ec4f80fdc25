// Package line verifies LIFF ID tokens against the LINE Login API.
package line

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/customer"
	"foodorder/internal/pkg/errs"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const DefaultVerifyURL = "https://api.line.me/oauth2/v2.1/verify"

// Verifier implements ports.IdentityVerifier.
type Verifier struct {
	client    *http.Client
	verifyURL string
	channelID string
}

type Option func(*Verifier)

// WithHTTPClient replaces the traced default client.
func WithHTTPClient(c *http.Client) Option {
	return func(v *Verifier) { v.client = c }
}

func WithVerifyURL(u string) Option {
	return func(v *Verifier) {
		if u != "" {
			v.verifyURL = u
		}
	}
}

func NewVerifier(channelID string, opts ...Option) *Verifier {
	v := &Verifier{
		client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		verifyURL: DefaultVerifyURL,
		channelID: channelID,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

type verifyResponse struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Verify posts the token to LINE. Any rejection by LINE becomes an
// errs.UnauthorizedError; transport failures are returned as they are.
func (v *Verifier) Verify(ctx context.Context, idToken string) (customer.Profile, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return customer.Profile{}, errs.NewValueIsRequiredError("idToken")
	}
	if v.channelID == "" {
		return customer.Profile{}, fmt.Errorf("line: channel id is not configured")
	}

	form := url.Values{}
	form.Set("id_token", idToken)
	form.Set("client_id", v.channelID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return customer.Profile{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return customer.Profile{}, fmt.Errorf("line: verify request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return customer.Profile{}, fmt.Errorf("line: read verify response: %w", err)
	}

	switch {
	case resp.StatusCode >= 500:
		return customer.Profile{}, fmt.Errorf("line: verify returned %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		var e errorResponse
		_ = json.Unmarshal(body, &e)
		reason := e.ErrorDescription
		if reason == "" {
			reason = http.StatusText(resp.StatusCode)
		}
		return customer.Profile{}, errs.NewUnauthorizedErrorWithCause("invalid LIFF token", fmt.Errorf("%s", reason))
	}

	var payload verifyResponse
	if err = json.Unmarshal(body, &payload); err != nil {
		return customer.Profile{}, fmt.Errorf("line: decode verify response: %w", err)
	}
	if payload.Sub == "" {
		return customer.Profile{}, errs.NewUnauthorizedError("LIFF token has no subject")
	}

	name := payload.Name
	if strings.TrimSpace(name) == "" {
		name = "LINEユーザー"
	}

	return customer.Profile{
		LineUserID:  payload.Sub,
		DisplayName: name,
		PictureURL:  payload.Picture,
	}, nil
}
