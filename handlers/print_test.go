package handlers

import (
	"testing"

	"github.com/ihdeveloper/nateq-server/dispatch"
	"github.com/ihdeveloper/nateq-server/envelope"
)

func TestPrintUseAndView(t *testing.T) {
	fn := NewPrintFunction()

	tests := []struct {
		name      string
		method    string
		printType string
		wantCount int
	}{
		{"first sms use", "use", "1", 1},
		{"second sms use", "use", "1", 2},
		{"paper use independent", "use", "2", 1},
		{"sms view independent of use", "view", "1", 1},
		{"save view", "view", "3", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := fn.On(tt.method, dispatch.Params{"type": tt.printType}, nil, nil)
			wantCode(t, resp, envelope.CodeOK)
			if got := envelopeData(t, resp)["count"]; got != tt.wantCount {
				t.Errorf("count = %v, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestPrintUnknownType(t *testing.T) {
	fn := NewPrintFunction()

	tests := []struct {
		name      string
		method    string
		printType string
	}{
		{"type outside the set", "use", "9"},
		{"type zero", "view", "0"},
		{"non-numeric type", "use", "paper"},
		{"unknown method with unknown type", "burn", "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := fn.On(tt.method, dispatch.Params{"type": tt.printType}, nil, nil)
			wantCode(t, resp, envelope.CodeNotFound)
		})
	}
}

func TestPrintValidation(t *testing.T) {
	fn := NewPrintFunction()

	resp := fn.On("use", dispatch.Params{}, nil, nil)
	wantCode(t, resp, envelope.CodeRequire)

	// A known type with an unrecognized method is a method error, not a
	// type error.
	resp = fn.On("burn", dispatch.Params{"type": "1"}, nil, nil)
	wantCode(t, resp, envelope.CodeMethodNotSupported)
}
