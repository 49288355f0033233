// Package ws exposes a shared draughts session to websocket clients. It
// translates JSON commands into session calls and pushes piece-moved and
// piece-crowned notifications to every connected client.
package ws

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"nhooyr.io/websocket"

	"github.com/lgbarn/draughts-go/internal/draughts"
	"github.com/lgbarn/draughts-go/internal/encoding"
	"github.com/lgbarn/draughts-go/internal/session"
	"github.com/lgbarn/draughts-go/internal/storage"
)

// Msg is the JSON envelope for commands and notifications.
type Msg struct {
	T string                 `json:"t"`           // type
	M map[string]interface{} `json:"m,omitempty"` // payload
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub owns one shared session and the set of connected clients. It
// registers itself as the session's observer so state-change notifications
// reach every client, in order, only on applied moves.
type Hub struct {
	allowOrigins map[string]bool
	store        *storage.Store // may be nil; save/load disabled without it

	mu      sync.RWMutex
	clients map[*client]struct{}

	sessMu sync.RWMutex
	sess   *session.Session
}

// NewHub creates a hub over a fresh session. store may be nil to disable
// persistence commands.
func NewHub(allow []string, store *storage.Store) *Hub {
	m := map[string]bool{}
	for _, a := range allow {
		if a != "" {
			m[a] = true
		}
	}
	h := &Hub{
		allowOrigins: m,
		store:        store,
		clients:      map[*client]struct{}{},
	}
	h.setSession(session.New())
	return h
}

func (h *Hub) setSession(s *session.Session) {
	s.AddObserver(h)
	h.sessMu.Lock()
	h.sess = s
	h.sessMu.Unlock()
}

func (h *Hub) session() *session.Session {
	h.sessMu.RLock()
	defer h.sessMu.RUnlock()
	return h.sess
}

// Session returns the hub's current session, for host-side handlers such as
// board rendering.
func (h *Hub) Session() *session.Session {
	return h.session()
}

// PieceMoved implements session.Observer.
func (h *Hub) PieceMoved(fromX, fromY, toX, toY int) {
	h.broadcast(Msg{T: "piece_moved", M: map[string]interface{}{
		"from_x": fromX, "from_y": fromY, "to_x": toX, "to_y": toY,
	}})
}

// PieceCrowned implements session.Observer.
func (h *Hub) PieceCrowned(x, y int) {
	h.broadcast(Msg{T: "piece_crowned", M: map[string]interface{}{
		"x": x, "y": y,
	}})
}

func randID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ServeWS upgrades the request and runs the client's read loop until it
// disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	if origin != "" && len(h.allowOrigins) > 0 && !h.allowOrigins[origin] {
		http.Error(w, "forbidden origin", http.StatusForbidden)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		return
	}

	c := &client{id: randID(), conn: conn, send: make(chan []byte, 64)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	log.Printf("client %s connected", c.id)

	go h.writePump(r.Context(), c)
	h.readPump(r.Context(), c)

	h.mu.Lock()
	delete(h.clients, c)
	close(c.send)
	h.mu.Unlock()
	log.Printf("client %s disconnected", c.id)
}

func (h *Hub) writePump(ctx context.Context, c *client) {
	ping := time.NewTicker(15 * time.Second)
	defer func() {
		ping.Stop()
		_ = c.conn.Close(websocket.StatusNormalClosure, "bye")
	}()
	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.conn.Write(ctx, websocket.MessageText, msg)
		case <-ping.C:
			_ = c.conn.Ping(ctx)
		}
	}
}

func (h *Hub) readPump(ctx context.Context, c *client) {
	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			return
		}
		var m Msg
		if err := json.Unmarshal(data, &m); err != nil {
			continue
		}
		h.handle(c, m)
	}
}

func (h *Hub) handle(c *client, m Msg) {
	switch m.T {
	case "move":
		fromX, fromY := intField(m, "from_x"), intField(m, "from_y")
		toX, toY := intField(m, "to_x"), intField(m, "to_y")
		res := h.session().MovePiece(fromX, fromY, toX, toY)
		h.sendTo(c, Msg{T: "move_result", M: map[string]interface{}{"ok": res == 1}})

	case "board":
		h.sendTo(c, h.boardMsg())

	case "turn":
		h.sendTo(c, Msg{T: "turn", M: map[string]interface{}{
			"turn": h.session().CurrentTurn(),
		}})

	case "get_piece":
		x, y := intField(m, "x"), intField(m, "y")
		h.sendTo(c, Msg{T: "piece", M: map[string]interface{}{
			"x": x, "y": y, "piece": h.session().GetPiece(x, y),
		}})

	case "legal_moves":
		moves := h.session().LegalMoves()
		list := make([]map[string]interface{}, len(moves))
		for i, mv := range moves {
			list[i] = map[string]interface{}{
				"from_x": mv.From.X, "from_y": mv.From.Y,
				"to_x": mv.To.X, "to_y": mv.To.Y,
			}
		}
		h.sendTo(c, Msg{T: "legal_moves", M: map[string]interface{}{"moves": list}})

	case "new_game":
		h.setSession(session.New())
		h.broadcast(h.boardMsg())

	case "save_game":
		id, _ := m.M["id"].(string)
		h.saveGame(c, id)

	case "load_game":
		id, _ := m.M["id"].(string)
		h.loadGame(c, id)

	case "ping":
		h.sendTo(c, Msg{T: "pong"})
	}
}

func (h *Hub) saveGame(c *client, id string) {
	if h.store == nil || id == "" {
		h.sendTo(c, Msg{T: "error", M: map[string]interface{}{"code": "NO_STORE"}})
		return
	}
	sess := h.session()
	rec := &storage.GameRecord{ID: id, Snapshot: sess.Snapshot(), History: sess.History()}
	if err := h.store.SaveGame(rec); err != nil {
		log.Printf("save game %s: %v", id, err)
		h.sendTo(c, Msg{T: "error", M: map[string]interface{}{"code": "SAVE_FAILED"}})
		return
	}
	h.sendTo(c, Msg{T: "saved", M: map[string]interface{}{"id": id}})
}

func (h *Hub) loadGame(c *client, id string) {
	if h.store == nil || id == "" {
		h.sendTo(c, Msg{T: "error", M: map[string]interface{}{"code": "NO_STORE"}})
		return
	}
	rec, err := h.store.LoadGame(id)
	if err != nil {
		log.Printf("load game %s: %v", id, err)
		h.sendTo(c, Msg{T: "error", M: map[string]interface{}{"code": "LOAD_FAILED"}})
		return
	}
	h.setSession(session.Restore(rec.Snapshot, rec.History))
	h.broadcast(h.boardMsg())
}

// boardMsg encodes the full board with the boundary piece encoding: 0 for
// empty squares, colour/crown flags otherwise.
func (h *Hub) boardMsg() Msg {
	snap := h.session().Snapshot()

	grid := make([][]int, draughts.BoardSize)
	for x := 0; x < draughts.BoardSize; x++ {
		grid[x] = make([]int, draughts.BoardSize)
		for y := 0; y < draughts.BoardSize; y++ {
			if p := snap.Board[x][y]; p != nil {
				grid[x][y] = encoding.EncodePiece(*p)
			} else {
				grid[x][y] = encoding.EncodedEmpty
			}
		}
	}
	return Msg{T: "board", M: map[string]interface{}{
		"grid":       grid,
		"turn":       encoding.EncodeColour(snap.ToMove),
		"move_count": snap.MoveCount,
	}}
}

func intField(m Msg, key string) int {
	if v, ok := m.M[key].(float64); ok {
		return int(v)
	}
	return -1
}

func (h *Hub) sendTo(c *client, msg Msg) {
	b, _ := json.Marshal(msg)
	select {
	case c.send <- b:
	default:
	}
}

func (h *Hub) broadcast(msg Msg) {
	b, _ := json.Marshal(msg)
	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.send <- b:
		default:
		}
	}
	h.mu.RUnlock()
}
