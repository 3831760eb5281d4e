package handlers

import (
	"testing"

	"github.com/ihdeveloper/nateq-server/dispatch"
	"github.com/ihdeveloper/nateq-server/envelope"
	"github.com/ihdeveloper/nateq-server/registry"
)

func TestScreenCreate(t *testing.T) {
	screens := registry.NewScreens(testSecret, "ar")
	fn := NewScreenFunction(screens)

	resp := fn.On("create", nil, dispatch.Params{"id": "gate-7", "password": "pw"}, nil)
	wantCode(t, resp, envelope.CodeOK)

	token, _ := envelopeData(t, resp)["token"].(string)
	if token == "" {
		t.Fatal("create returned no token")
	}

	screen := screens.Get("gate-7")
	if screen == nil {
		t.Fatal("screen was not registered")
	}
	if screen.Token != token {
		t.Error("returned token differs from the registered one")
	}
	if screen.CurrentLanguage() != "ar" {
		t.Errorf("language = %q, want default ar", screen.CurrentLanguage())
	}
}

func TestScreenCreateDuplicateID(t *testing.T) {
	screens := registry.NewScreens(testSecret, "ar")
	fn := NewScreenFunction(screens)

	resp := fn.On("create", nil, dispatch.Params{"id": "gate-7", "password": "pw"}, nil)
	wantCode(t, resp, envelope.CodeOK)

	resp = fn.On("create", nil, dispatch.Params{"id": "gate-7", "password": "other"}, nil)
	wantCode(t, resp, envelope.CodeInvalid)

	if got := screens.Get("gate-7").Password; got != "pw" {
		t.Errorf("duplicate create mutated the original screen: password = %q", got)
	}
}

func TestScreenValidation(t *testing.T) {
	screens := registry.NewScreens(testSecret, "ar")
	fn := NewScreenFunction(screens)

	resp := fn.On("create", nil, dispatch.Params{}, nil)
	wantCode(t, resp, envelope.CodeRequire)

	resp = fn.On("create", nil, dispatch.Params{"id": "gate-7"}, nil)
	wantCode(t, resp, envelope.CodeRequire)

	resp = fn.On("create", nil, nil, nil)
	wantCode(t, resp, envelope.CodeMethodNotSupported)

	resp = fn.On("reboot", nil, dispatch.Params{"id": "gate-7"}, nil)
	wantCode(t, resp, envelope.CodeMethodNotSupported)
}
