package trace

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/skintel-labs/skintel/internal/model"
)

// Verifier checks that a discovered manufacturer link actually resolves
type Verifier struct {
	httpClient *http.Client
	userAgent  string
}

// NewVerifier creates a new link verifier
func NewVerifier(timeout time.Duration, userAgent string) *Verifier {
	return &Verifier{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: userAgent,
	}
}

// Check HEAD-requests the URL and records accessibility. Best effort: all
// failures are captured in the result, never returned.
func (v *Verifier) Check(ctx context.Context, rawURL string) model.LinkCheck {
	now := time.Now().UTC()
	result := model.LinkCheck{CheckedAt: &now}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		result.Error = fmt.Sprintf("create request: %v", err)
		return result
	}
	req.Header.Set("User-Agent", v.userAgent)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result
	}
	defer func() { _ = resp.Body.Close() }()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		result.IsAccessible = true
	}

	if resp.Request.URL.String() != rawURL {
		result.RedirectURL = resp.Request.URL.String()
	}

	return result
}
