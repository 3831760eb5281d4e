package handlers

import (
	"log/slog"

	"github.com/ihdeveloper/nateq-server/dispatch"
	"github.com/ihdeveloper/nateq-server/envelope"
	"github.com/ihdeveloper/nateq-server/registry"
)

// Archiver persists registration documents to the external document store.
// Writes are fire-and-forget: handlers never observe the outcome.
type Archiver interface {
	SaveMember(client *registry.Client)
	SaveGroup(group *registry.Group)
}

// clientRequiredFields is the fixed validation order for Client/create; the
// first missing field decides the error the caller sees.
var clientRequiredFields = []string{
	"username", "password", "type", "firstname",
	"lastname", "nationality", "gender", "phonenumber",
}

// ClientFunction registers client accounts.
type ClientFunction struct {
	clients *registry.Clients
	archive Archiver
}

func NewClientFunction(clients *registry.Clients, archive Archiver) *ClientFunction {
	return &ClientFunction{clients: clients, archive: archive}
}

func (f *ClientFunction) Name() string    { return "Client" }
func (f *ClientFunction) NeedsAuth() bool { return true }

func (f *ClientFunction) On(method string, params, body dispatch.Params, _ registry.Principal) *envelope.Envelope {
	if method == "create" {
		return f.create(body)
	}
	return dispatch.RequireMethod()
}

func (f *ClientFunction) create(body dispatch.Params) *envelope.Envelope {
	for _, field := range clientRequiredFields {
		if e := dispatch.Require(body, field); e != nil {
			return e
		}
	}

	username := dispatch.Str(body, "username")
	password := dispatch.Str(body, "password")
	typ, _ := dispatch.Int(body, "type")
	gender, _ := dispatch.Int(body, "gender")

	client, err := f.clients.Register(
		username,
		password,
		registry.ClientType(typ),
		dispatch.Str(body, "firstname"),
		dispatch.Str(body, "lastname"),
		dispatch.Str(body, "nationality"),
		gender == 1,
		dispatch.Str(body, "phonenumber"),
	)
	if err != nil {
		slog.Error("client registration failed", "function", f.Name(), "username", username, "error", err)
		return envelope.New(envelope.CodeError, map[string]any{
			"message": "Something wrong was not expected happened!",
		})
	}

	if f.archive != nil {
		f.archive.SaveMember(client)
	}

	token, _ := f.clients.CheckPassword(client, password)
	slog.Info("client registered", "function", f.Name(), "username", username, "type", client.Type)
	return envelope.OK(map[string]any{
		"message": "Successfully registered",
		"token":   token,
	})
}
