package leaderboardhandlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	leaderboardservice "github.com/Black-And-White-Club/golf-trip/app/modules/leaderboard/application"
	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// Live message types.
const (
	MessageLeaderboard = "leaderboard"
	MessageError       = "error"
)

// LiveMessage is one frame on the live leaderboard socket.
type LiveMessage struct {
	Type        string                   `json:"type"`
	Leaderboard *leaderboardservice.View `json:"leaderboard,omitempty"`
	Error       string                   `json:"error,omitempty"`
}

// HandleLive streams the round's leaderboard over a websocket, sending the
// current view on connect and a fresh one whenever an edit to the trip
// changes what the round shows.
func (h *LeaderboardHandlers) HandleLive(w http.ResponseWriter, r *http.Request) {
	trip, ok := h.loadTrip(w, r)
	if !ok {
		return
	}
	roundID := roundIDParam(r)
	view, err := h.service.Leaderboard(r.Context(), trip, roundID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		h.logger.WarnContext(r.Context(), "Websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, stop := h.trips.Watch(ctx, trip.ID)
	defer stop()

	closed := make(chan struct{})
	go readPump(conn, closed)

	h.logger.InfoContext(ctx, "Live leaderboard connected",
		slog.String("trip_id", trip.ID.String()),
		slog.String("round_id", roundID.String()),
	)

	if err := writeFrame(conn, LiveMessage{Type: MessageLeaderboard, Leaderboard: view}); err != nil {
		return
	}

	last := view.Fingerprint
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-changes:
			view, err := h.current(ctx, trip.ID, roundID)
			if err != nil {
				_ = writeFrame(conn, LiveMessage{Type: MessageError, Error: err.Error()})
				closeNormally(conn)
				return
			}
			if view.Fingerprint == last {
				continue
			}
			last = view.Fingerprint
			if err := writeFrame(conn, LiveMessage{Type: MessageLeaderboard, Leaderboard: view}); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *LeaderboardHandlers) current(ctx context.Context, tripID rounddomain.TripID, roundID rounddomain.RoundID) (*leaderboardservice.View, error) {
	trip, err := h.trips.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return h.service.Leaderboard(ctx, trip, roundID)
}

// readPump drains client frames so control messages are processed, and
// closes closed when the peer goes away.
func readPump(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeFrame(conn *websocket.Conn, msg LiveMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}

func closeNormally(conn *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}
