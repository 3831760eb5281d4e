package handlers

import (
	"log/slog"

	"github.com/ihdeveloper/nateq-server/dispatch"
	"github.com/ihdeveloper/nateq-server/envelope"
	"github.com/ihdeveloper/nateq-server/registry"
)

// AuthFunction logs clients and screens in against their registries.
type AuthFunction struct {
	clients *registry.Clients
	screens *registry.Screens
}

func NewAuthFunction(clients *registry.Clients, screens *registry.Screens) *AuthFunction {
	return &AuthFunction{clients: clients, screens: screens}
}

func (f *AuthFunction) Name() string    { return "auth" }
func (f *AuthFunction) NeedsAuth() bool { return false }

func (f *AuthFunction) On(method string, params, body dispatch.Params, _ registry.Principal) *envelope.Envelope {
	switch method {
	case "client":
		return f.client(body)
	case "screen":
		return f.screen(body)
	}
	return dispatch.RequireMethod()
}

func (f *AuthFunction) client(body dispatch.Params) *envelope.Envelope {
	if e := dispatch.Require(body, "username"); e != nil {
		return e
	}
	if e := dispatch.Require(body, "password"); e != nil {
		return e
	}
	username := dispatch.Str(body, "username")
	password := dispatch.Str(body, "password")

	client := f.clients.Get(username)
	if client == nil {
		return invalidCredentials("Invalid username and password")
	}
	token, ok := f.clients.CheckPassword(client, password)
	if !ok {
		return invalidCredentials("Invalid username and password")
	}

	slog.Info("client logged in", "function", f.Name(), "username", username)
	return envelope.OK(map[string]any{
		"message": "Successfully logged in!",
		"token":   token,
	})
}

// screen answers OK with whatever token the password check produced: when
// the password does not match the token is empty, but the code is still 0.
func (f *AuthFunction) screen(body dispatch.Params) *envelope.Envelope {
	if e := dispatch.Require(body, "id"); e != nil {
		return e
	}
	if e := dispatch.Require(body, "password"); e != nil {
		return e
	}
	id := dispatch.Str(body, "id")
	password := dispatch.Str(body, "password")

	if !f.screens.Exists(id) {
		return invalidCredentials("Invalid ID and password")
	}

	screen := f.screens.Get(id)
	token, _ := f.screens.CheckPassword(screen, password)

	slog.Info("screen verified", "function", f.Name(), "id", id)
	return envelope.OK(map[string]any{
		"message": "Successfully verified that you are one of our screens!",
		"token":   token,
	})
}

func invalidCredentials(message string) *envelope.Envelope {
	return envelope.New(envelope.CodeInvalid, map[string]any{
		"message": message,
	})
}
