package channel

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/net/websocket"
)

// Welcome alerts pushed to every connecting client. The Arabic alert is
// the default; the English one is sent when the client asks to switch.
const (
	WelcomeAlert        = "مرحبا بكم في ناطق | هاكثون الحج"
	WelcomeAlertEnglish = "Welcome to Nateq | Hajj Hackathon"
)

// Event is a JSON frame on the live channel.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// GroupLocation is the fixed payload answered to whereismygroup.
type GroupLocation struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Hub serves the live push channel. Events are out-of-band notifications
// triggered either by the connection itself or by an inbound event; there
// is no request/response protocol and no negotiation.
type Hub struct {
	location GroupLocation
}

func NewHub() *Hub {
	return &Hub{
		location: GroupLocation{
			Address: "8946 Radwan Baibars, Aziziyah, Jeddah 23342, Saudi Arabia",
			Lat:     21.561344,
			Lng:     39.206911999999996,
		},
	}
}

// Handler mounts the hub as an HTTP handler.
func (h *Hub) Handler() http.Handler {
	return websocket.Handler(h.serve)
}

func (h *Hub) serve(conn *websocket.Conn) {
	id := uuid.NewString()
	slog.Info("channel connected", "conn", id, "remote", conn.Request().RemoteAddr)

	if err := websocket.JSON.Send(conn, Event{Event: "alert", Data: WelcomeAlert}); err != nil {
		slog.Error("failed to send welcome alert", "conn", id, "error", err)
		return
	}

	for {
		var event Event
		if err := websocket.JSON.Receive(conn, &event); err != nil {
			if err != io.EOF {
				slog.Info("channel closed", "conn", id, "error", err)
			}
			return
		}
		h.handle(conn, id, event)
	}
}

func (h *Hub) handle(conn *websocket.Conn, id string, event Event) {
	switch event.Event {
	case "question":
		slog.Info("channel question received", "conn", id, "data", event.Data)
	case "help":
		if err := websocket.JSON.Send(conn, event); err != nil {
			slog.Error("failed to echo help event", "conn", id, "error", err)
		}
	case "whereismygroup":
		reply := Event{Event: "whereismygroup", Data: h.location}
		if err := websocket.JSON.Send(conn, reply); err != nil {
			slog.Error("failed to send group location", "conn", id, "error", err)
		}
	case "lang":
		reply := Event{Event: "alert", Data: WelcomeAlertEnglish}
		if err := websocket.JSON.Send(conn, reply); err != nil {
			slog.Error("failed to send language alert", "conn", id, "error", err)
		}
	default:
		slog.Info("unknown channel event ignored", "conn", id, "event", event.Event)
	}
}
