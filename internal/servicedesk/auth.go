package servicedesk

import "net/http"

// Authenticator owns the static bearer token and the shared HTTP client
// every resource client sends through. Building it once keeps a single
// connection pool for all backend traffic.
type Authenticator struct {
	token  string
	client *http.Client
}

// NewAuthenticator wraps the default transport with bearer-token
// injection. The token is expected to be validated by config loading.
func NewAuthenticator(token string) *Authenticator {
	return &Authenticator{
		token: token,
		client: &http.Client{
			Transport: &bearerTransport{token: token, base: http.DefaultTransport},
		},
	}
}

// Token returns the configured bearer token for diagnostic use.
func (a *Authenticator) Token() string {
	return a.token
}

// Client returns the shared bearer-authenticated HTTP client.
func (a *Authenticator) Client() *http.Client {
	return a.client
}

// bearerTransport sets the credentials and content negotiation headers
// on every outgoing request.
type bearerTransport struct {
	token string
	base  http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone per RoundTripper contract: the original request must not
	// be mutated.
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+t.token)
	clone.Header.Set("Accept", "application/json")
	return t.base.RoundTrip(clone)
}
