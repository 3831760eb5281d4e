package handlers

import (
	"testing"

	"github.com/ihdeveloper/nateq-server/dispatch"
	"github.com/ihdeveloper/nateq-server/envelope"
)

func TestAlertAllowed(t *testing.T) {
	tests := []struct {
		name        string
		random      float64
		wantAllowed bool
	}{
		{"above threshold", 0.9, true},
		{"exactly threshold", 0.5, true},
		{"below threshold", 0.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := NewAlertFunction()
			fn.random = func() float64 { return tt.random }

			resp := fn.On("allowed", dispatch.Params{"zone": "mina"}, nil, nil)
			wantCode(t, resp, envelope.CodeOK)

			data := envelopeData(t, resp)
			if data["id"] != "mina" {
				t.Errorf("id = %v, want mina", data["id"])
			}
			if data["allowed"] != tt.wantAllowed {
				t.Errorf("allowed = %v, want %v", data["allowed"], tt.wantAllowed)
			}
		})
	}
}

func TestAlertValidation(t *testing.T) {
	fn := NewAlertFunction()

	resp := fn.On("allowed", dispatch.Params{}, nil, nil)
	wantCode(t, resp, envelope.CodeRequire)

	resp = fn.On("panic", dispatch.Params{"zone": "mina"}, nil, nil)
	wantCode(t, resp, envelope.CodeMethodNotSupported)
}
