package handlers

import (
	"errors"
	"log/slog"

	"github.com/ihdeveloper/nateq-server/dispatch"
	"github.com/ihdeveloper/nateq-server/envelope"
	"github.com/ihdeveloper/nateq-server/registry"
)

// ScreenFunction registers information screens.
type ScreenFunction struct {
	screens *registry.Screens
}

func NewScreenFunction(screens *registry.Screens) *ScreenFunction {
	return &ScreenFunction{screens: screens}
}

func (f *ScreenFunction) Name() string    { return "Screen" }
func (f *ScreenFunction) NeedsAuth() bool { return true }

func (f *ScreenFunction) On(method string, params, body dispatch.Params, _ registry.Principal) *envelope.Envelope {
	if body == nil || method != "create" {
		return dispatch.RequireMethod()
	}
	return f.create(body)
}

func (f *ScreenFunction) create(body dispatch.Params) *envelope.Envelope {
	if e := dispatch.Require(body, "id"); e != nil {
		return e
	}
	if e := dispatch.Require(body, "password"); e != nil {
		return e
	}
	id := dispatch.Str(body, "id")
	password := dispatch.Str(body, "password")

	screen, err := f.screens.Register(id, password)
	if err != nil {
		if errors.Is(err, registry.ErrScreenExists) {
			return envelope.New(envelope.CodeInvalid, map[string]any{
				"message": "ID is exist!",
			})
		}
		slog.Error("screen registration failed", "function", f.Name(), "id", id, "error", err)
		return envelope.New(envelope.CodeError, map[string]any{
			"message": "Something wrong was not expected happened!",
		})
	}

	token, _ := f.screens.CheckPassword(screen, password)
	slog.Info("screen registered", "function", f.Name(), "id", id)
	return envelope.OK(map[string]any{
		"message": "Successfully registered the screen!",
		"token":   token,
	})
}
