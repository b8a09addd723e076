package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrIdentityRejected means the provider did not accept the access
// token. Callers should surface this as an authentication failure,
// not a server error.
var ErrIdentityRejected = errors.New("identity provider rejected the token")

// Identity is the provider's verified profile. Only this output
// contract matters to the rest of the system.
type Identity struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type IdentityProvider interface {
	Userinfo(ctx context.Context, accessToken string) (*Identity, error)
}

// OIDCProvider resolves access tokens against the provider's
// userinfo endpoint (Auth0-style OIDC domain).
type OIDCProvider struct {
	Domain string
	Client *http.Client
}

func NewOIDCProvider(domain string) *OIDCProvider {
	return &OIDCProvider{
		Domain: domain,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *OIDCProvider) Userinfo(ctx context.Context, accessToken string) (*Identity, error) {
	url := fmt.Sprintf("https://%s/userinfo", p.Domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrIdentityRejected
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, err
	}
	if identity.Email == "" {
		return nil, errors.New("identity has no email claim")
	}
	return &identity, nil
}
