package handlers

import (
	"log/slog"
	"math/rand/v2"

	"github.com/ihdeveloper/nateq-server/dispatch"
	"github.com/ihdeveloper/nateq-server/envelope"
	"github.com/ihdeveloper/nateq-server/registry"
)

// AlertFunction answers whether a zone may admit more pilgrims. The
// decision is a stub: an unweighted coin flip, not a real admission model.
type AlertFunction struct {
	random func() float64
}

func NewAlertFunction() *AlertFunction {
	return &AlertFunction{random: rand.Float64}
}

func (f *AlertFunction) Name() string    { return "alert" }
func (f *AlertFunction) NeedsAuth() bool { return false }

func (f *AlertFunction) On(method string, params, body dispatch.Params, _ registry.Principal) *envelope.Envelope {
	if e := dispatch.Require(params, "zone"); e != nil {
		return e
	}
	zone := dispatch.Str(params, "zone")

	if method == "allowed" {
		allowed := f.random() >= 0.5
		slog.Info("zone admission decided", "function", f.Name(), "zone", zone, "allowed", allowed)
		return envelope.OK(map[string]any{
			"id":      zone,
			"allowed": allowed,
		})
	}
	return dispatch.RequireMethod()
}
