package handlers

import (
	"log/slog"
	"strconv"

	"github.com/ihdeveloper/nateq-server/counter"
	"github.com/ihdeveloper/nateq-server/dispatch"
	"github.com/ihdeveloper/nateq-server/envelope"
	"github.com/ihdeveloper/nateq-server/registry"
)

// Print delivery types. The numeric values are part of the wire contract.
const (
	PrintTypeSMS   = 1
	PrintTypePaper = 2
	PrintTypeSave  = 3
)

// PrintFunction tallies views and uses of the print feature per delivery
// type.
type PrintFunction struct {
	views *counter.Tally
	uses  *counter.Tally
}

func NewPrintFunction() *PrintFunction {
	keys := []string{
		strconv.Itoa(PrintTypeSMS),
		strconv.Itoa(PrintTypePaper),
		strconv.Itoa(PrintTypeSave),
	}
	return &PrintFunction{
		views: counter.New(keys...),
		uses:  counter.New(keys...),
	}
}

func (f *PrintFunction) Name() string    { return "print" }
func (f *PrintFunction) NeedsAuth() bool { return false }

func (f *PrintFunction) On(method string, params, body dispatch.Params, _ registry.Principal) *envelope.Envelope {
	if e := dispatch.Require(params, "type"); e != nil {
		return e
	}

	printType, ok := dispatch.Int(params, "type")
	if !ok {
		printType = -1
	}
	key := strconv.Itoa(printType)

	var tally *counter.Tally
	switch method {
	case "use":
		tally = f.uses
	case "view":
		tally = f.views
	default:
		// The type check runs before the method check, so an unknown
		// type wins over an unknown method.
		if _, known := f.uses.Count(key); !known {
			return notFoundType()
		}
		return dispatch.RequireMethod()
	}

	count, known := tally.Hit(key)
	if !known {
		return notFoundType()
	}
	slog.Info("print event stored", "function", f.Name(), "method", method, "type", printType, "count", count)
	return envelope.OK(map[string]any{
		"message": "Successfully execute the " + method + " request",
		"count":   count,
	})
}

func notFoundType() *envelope.Envelope {
	return envelope.New(envelope.CodeNotFound, map[string]any{
		"message": "Not found the type number",
	})
}
