package router

import (
	"net/http"

	"github.com/ihdeveloper/nateq-server/bot"
	"github.com/ihdeveloper/nateq-server/channel"
	"github.com/ihdeveloper/nateq-server/cliparse"
	"github.com/ihdeveloper/nateq-server/dispatch"
	"github.com/ihdeveloper/nateq-server/envelope"
	"github.com/ihdeveloper/nateq-server/handlers"
	"github.com/ihdeveloper/nateq-server/middleware"
	"github.com/ihdeveloper/nateq-server/registry"
)

// NewRouter wires every Function under its resource path. A resource
// answers GET and POST on both /{Resource}/{method} and the bare
// /{Resource}; the bare form reaches the dispatcher with an empty method
// segment and fails there. Resource names are case-sensitive.
func NewRouter(cfg cliparse.Config, clients *registry.Clients, screens *registry.Screens, groups *registry.Groups, archive handlers.Archiver) *http.ServeMux {
	mux := http.NewServeMux()

	// Screens resolve first so a token valid in both registries acts as
	// the screen.
	dispatcher := dispatch.NewDispatcher(screens, clients)

	functions := []dispatch.Function{
		handlers.NewLanguageFunction(),
		handlers.NewLocationFunction(cfg.Zones),
		handlers.NewPrintFunction(),
		handlers.NewClientFunction(clients, archive),
		handlers.NewAuthFunction(clients, screens),
		handlers.NewAlertFunction(),
		handlers.NewGroupFunction(groups, archive),
		handlers.NewScreenFunction(screens),
	}

	for _, fn := range functions {
		mount(mux, dispatcher, fn)
	}

	// Health check
	mux.HandleFunc("GET /ping", middleware.WithLogging(func(w http.ResponseWriter, r *http.Request) {
		envelope.OK(nil).Write(w)
	}))

	// Live push channel
	mux.Handle("/channel", channel.NewHub().Handler())

	// Companion chat bot
	mux.HandleFunc("POST /api/messages", middleware.WithLogging(bot.New().Handler()))

	return mux
}

func mount(mux *http.ServeMux, dispatcher *dispatch.Dispatcher, fn dispatch.Function) {
	withMethod := middleware.WithLogging(func(w http.ResponseWriter, r *http.Request) {
		dispatcher.Run(fn, r, r.PathValue("method")).Write(w)
	})
	bare := middleware.WithLogging(func(w http.ResponseWriter, r *http.Request) {
		dispatcher.Run(fn, r, "").Write(w)
	})

	mux.HandleFunc("GET /"+fn.Name()+"/{method}", withMethod)
	mux.HandleFunc("POST /"+fn.Name()+"/{method}", withMethod)
	mux.HandleFunc("GET /"+fn.Name(), bare)
	mux.HandleFunc("POST /"+fn.Name(), bare)
}
