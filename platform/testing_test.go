package platform

import (
	"net/http/httptest"
	"testing"
	"time"
)

var testAuth = Auth{Token: "platform-token", UserID: 1, AdminType: "admin"}

// newTestClient points every host of a client at srv.
func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	return New(Config{
		BaseURL:          srv.URL,
		RateURL:          srv.URL,
		CountryURL:       srv.URL,
		ExchangeURL:      srv.URL,
		Timeout:          5 * time.Second,
		AudioConcurrency: 2,
	})
}
