package handlers

import (
	"testing"

	"github.com/ihdeveloper/nateq-server/dispatch"
	"github.com/ihdeveloper/nateq-server/envelope"
)

func TestLanguageStore(t *testing.T) {
	fn := NewLanguageFunction()

	// First hit starts the counter at 1, the second increments it.
	resp := fn.On("store", dispatch.Params{"section": "ar"}, nil, nil)
	wantCode(t, resp, envelope.CodeOK)
	if got := envelopeData(t, resp)["count"]; got != 1 {
		t.Errorf("first store count = %v, want 1", got)
	}

	resp = fn.On("store", dispatch.Params{"section": "ar"}, nil, nil)
	wantCode(t, resp, envelope.CodeOK)
	if got := envelopeData(t, resp)["count"]; got != 2 {
		t.Errorf("second store count = %v, want 2", got)
	}

	// Sections are independent.
	resp = fn.On("store", dispatch.Params{"section": "en"}, nil, nil)
	wantCode(t, resp, envelope.CodeOK)
	if got := envelopeData(t, resp)["count"]; got != 1 {
		t.Errorf("en store count = %v, want 1", got)
	}
}

func TestLanguageStoreUnknownSection(t *testing.T) {
	fn := NewLanguageFunction()

	resp := fn.On("store", dispatch.Params{"section": "zz"}, nil, nil)
	wantCode(t, resp, envelope.CodeNotFound)

	want := "Section/zz was not found in the selects"
	if got := envelopeData(t, resp)["message"]; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestLanguageRecommand(t *testing.T) {
	fn := NewLanguageFunction()

	// Known recommendation keys count directly.
	resp := fn.On("recommand", dispatch.Params{"section": "fr"}, nil, nil)
	wantCode(t, resp, envelope.CodeOK)
	if got := envelopeData(t, resp)["count"]; got != 1 {
		t.Errorf("fr count = %v, want 1", got)
	}

	// Unknown keys fold into the other bucket with no error.
	resp = fn.On("recommand", dispatch.Params{"section": "sw"}, nil, nil)
	wantCode(t, resp, envelope.CodeOK)
	if got := envelopeData(t, resp)["count"]; got != 1 {
		t.Errorf("first unknown count = %v, want 1", got)
	}

	resp = fn.On("recommand", dispatch.Params{"section": "zz"}, nil, nil)
	wantCode(t, resp, envelope.CodeOK)
	if got := envelopeData(t, resp)["count"]; got != 2 {
		t.Errorf("second unknown count = %v, want 2 (shared other bucket)", got)
	}
}

func TestLanguageValidation(t *testing.T) {
	fn := NewLanguageFunction()

	resp := fn.On("store", dispatch.Params{}, nil, nil)
	wantCode(t, resp, envelope.CodeRequire)

	resp = fn.On("change", dispatch.Params{"section": "ar"}, nil, nil)
	wantCode(t, resp, envelope.CodeMethodNotSupported)
}
