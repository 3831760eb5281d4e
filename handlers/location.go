package handlers

import (
	"fmt"
	"log/slog"

	"github.com/ihdeveloper/nateq-server/counter"
	"github.com/ihdeveloper/nateq-server/dispatch"
	"github.com/ihdeveloper/nateq-server/envelope"
	"github.com/ihdeveloper/nateq-server/registry"
)

// LocationFunction tallies activity per zone.
type LocationFunction struct {
	actives *counter.Tally
}

// NewLocationFunction creates the handler with the set of known zones.
func NewLocationFunction(zones []string) *LocationFunction {
	return &LocationFunction{actives: counter.New(zones...)}
}

func (f *LocationFunction) Name() string    { return "location" }
func (f *LocationFunction) NeedsAuth() bool { return false }

func (f *LocationFunction) On(method string, params, body dispatch.Params, _ registry.Principal) *envelope.Envelope {
	if e := dispatch.Require(params, "zone"); e != nil {
		return e
	}
	zone := dispatch.Str(params, "zone")

	if method == "active" {
		return f.active(zone)
	}
	return dispatch.RequireMethod()
}

func (f *LocationFunction) active(zone string) *envelope.Envelope {
	count, ok := f.actives.Hit(zone)
	if !ok {
		return envelope.New(envelope.CodeNotFound, map[string]any{
			"message": fmt.Sprintf("Zone/%s was not found in the system", zone),
		})
	}
	slog.Info("zone activity stored", "function", f.Name(), "zone", zone, "count", count)
	return envelope.OK(map[string]any{
		"message": fmt.Sprintf("Successfully execute activity for the zone %s", zone),
		"count":   count,
	})
}
