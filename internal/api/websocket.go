package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/FocuswithJustin/CedarBible/core/corpus"
	"github.com/FocuswithJustin/CedarBible/internal/logging"
)

// upgrader configures the WebSocket handshake. The server binds to
// loopback, so all origins are accepted.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SearchRequest is an incoming live-search query.
type SearchRequest struct {
	ID    string `json:"id,omitempty"`
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// SearchResponse is the reply to a live-search query.
type SearchResponse struct {
	ID        string         `json:"id"`
	Query     string         `json:"query"`
	Total     int            `json:"total"`
	Results   []corpus.Verse `json:"results"`
	Cancelled bool           `json:"cancelled,omitempty"`
}

// handleSearchSocket upgrades the connection and serves live search: each
// incoming query cancels the previous in-flight one for this connection,
// so a fast typist only ever sees results for the newest query.
func (s *Server) handleSearchSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	session := uuid.New().String()
	logging.WebSocketEvent("search_client_connected", 1, "session", session)
	defer logging.WebSocketEvent("search_client_disconnected", 0, "session", session)

	var (
		writeMu sync.Mutex
		cancel  context.CancelFunc
	)
	defer func() {
		if cancel != nil {
			cancel()
		}
	}()

	for {
		var req SearchRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Debug("websocket read failed", "session", session, "error", err)
			}
			return
		}

		if req.ID == "" {
			req.ID = uuid.New().String()
		}
		if req.Limit <= 0 {
			req.Limit = 50
		}

		if cancel != nil {
			cancel()
		}
		ctx, newCancel := context.WithCancel(r.Context())
		cancel = newCancel

		go func(req SearchRequest, ctx context.Context) {
			results, err := s.mgr.SearchVerses(ctx, req.Query, req.Limit)

			resp := SearchResponse{
				ID:      req.ID,
				Query:   req.Query,
				Total:   len(results),
				Results: results,
			}
			if err != nil {
				// Superseded by a newer query; tell the client so it
				// can discard the partial results.
				resp.Cancelled = true
			}

			writeMu.Lock()
			defer writeMu.Unlock()
			if err := conn.WriteJSON(resp); err != nil {
				logging.Debug("websocket write failed", "session", session, "error", err)
			}
		}(req, ctx)
	}
}
