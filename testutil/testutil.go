package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ihdeveloper/nateq-server/cliparse"
	"github.com/ihdeveloper/nateq-server/registry"
	"github.com/ihdeveloper/nateq-server/router"
)

// TestSecret signs every token issued inside tests.
const TestSecret = "test-secret"

// GetTestConfig returns a standard test configuration. No archive database
// is configured, so registrations stay in memory.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            5000,
		TokenSecret:     TestSecret,
		DefaultLanguage: "ar",
		Zones:           []string{"mina", "arafat", "muzdalifah", "jamarat"},
	}
}

// Fixture bundles a fresh set of registries with a router mounted on them.
type Fixture struct {
	Config  cliparse.Config
	Clients *registry.Clients
	Screens *registry.Screens
	Groups  *registry.Groups
	Mux     *http.ServeMux
}

// NewFixture builds an isolated server fixture for one test.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()

	cfg := GetTestConfig()
	clients := registry.NewClients(cfg.TokenSecret)
	screens := registry.NewScreens(cfg.TokenSecret, cfg.DefaultLanguage)
	groups := registry.NewGroups()

	return &Fixture{
		Config:  cfg,
		Clients: clients,
		Screens: screens,
		Groups:  groups,
		Mux:     router.NewRouter(cfg, clients, screens, groups, nil),
	}
}

// MakeRequest creates an HTTP test request. A non-empty token is sent in
// the Authentication header under the JWT scheme.
func MakeRequest(method, path string, body any, token string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if token != "" {
		req.Header.Set("Authentication", "JWT "+token)
	}
	return req
}

// Do runs a request through the fixture's router and returns the recorder.
func (f *Fixture) Do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.Mux.ServeHTTP(w, req)
	return w
}

// DecodeEnvelope unpacks a {code, data} response body.
func DecodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) (int, map[string]any) {
	t.Helper()

	var body struct {
		Code int            `json:"code"`
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response envelope: %v. Body: %s", err, w.Body.String())
	}
	return body.Code, body.Data
}
