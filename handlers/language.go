package handlers

import (
	"fmt"
	"log/slog"

	"github.com/ihdeveloper/nateq-server/counter"
	"github.com/ihdeveloper/nateq-server/dispatch"
	"github.com/ihdeveloper/nateq-server/envelope"
	"github.com/ihdeveloper/nateq-server/registry"
)

// LanguageFunction tallies language selections on the screens and language
// recommendations from pilgrims.
type LanguageFunction struct {
	selects    *counter.Tally
	recommands *counter.Tally
}

func NewLanguageFunction() *LanguageFunction {
	return &LanguageFunction{
		selects:    counter.New("en", "ar"),
		recommands: counter.New("fr", "du", counter.OtherKey),
	}
}

func (f *LanguageFunction) Name() string    { return "language" }
func (f *LanguageFunction) NeedsAuth() bool { return false }

func (f *LanguageFunction) On(method string, params, body dispatch.Params, _ registry.Principal) *envelope.Envelope {
	if e := dispatch.Require(params, "section"); e != nil {
		return e
	}
	section := dispatch.Str(params, "section")

	switch method {
	case "store":
		return f.store(section)
	case "recommand":
		return f.recommand(section)
	}
	return dispatch.RequireMethod()
}

func (f *LanguageFunction) store(section string) *envelope.Envelope {
	count, ok := f.selects.Hit(section)
	if !ok {
		return envelope.New(envelope.CodeNotFound, map[string]any{
			"message": fmt.Sprintf("Section/%s was not found in the selects", section),
		})
	}
	slog.Info("language select stored", "function", f.Name(), "section", section, "count", count)
	return envelope.OK(map[string]any{
		"message": "Successfully execute the store method",
		"count":   count,
	})
}

func (f *LanguageFunction) recommand(section string) *envelope.Envelope {
	count := f.recommands.HitOrOther(section)
	slog.Info("language recommand stored", "function", f.Name(), "section", section, "count", count)
	return envelope.OK(map[string]any{
		"message": "Successfully execute the recommand method",
		"count":   count,
	})
}
