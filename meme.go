// Meme Master game server
//
// Players join a coded room, draw number cards to pick the first judge,
// then play rounds: the judge puts a photo card up, everyone else submits
// a caption from their hand, and the judge crowns a winner. Trophies
// accumulate until someone hits the target and takes the game.
//
// Features:
// - One hub goroutine per room: every mutating action for a room is
//   funneled through its channel and applied strictly in arrival order
// - Full-state snapshots after every mutation; clients never see diffs
// - Hidden number cards are masked per recipient until revealed
// - Soft disconnects: a dropped connection flips isOnline and keeps the
//   hand and trophies intact for rejoin
// - Structurally identical repeated actions inside a short window are
//   dropped to absorb client-side double-fires
// - Rooms auto-reaped after a configurable idle timeout
// - In-browser QR codes to share a room, backed by go-qrcode

package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"golang.org/x/time/rate"
)

// Messages coming from clients
type ClientMessage struct {
	Type     string `json:"type"`               // "join_room", "start_game", "reveal_number_card", "start_round", "select_photo_card", "submit_caption_card", "exchange_card", "select_winner", "restart_game"
	PlayerID string `json:"playerId,omitempty"` // join_room
	RoomID   string `json:"roomId,omitempty"`   // join_room
	CardID   string `json:"cardId,omitempty"`   // select_photo_card / submit_caption_card / exchange_card
	WinnerID string `json:"winnerId,omitempty"` // select_winner
}

// GameState is the snapshot unit sent to clients after every mutation.
type GameState struct {
	Room    Room     `json:"room"`
	Players []Player `json:"players"`
	Deck    DeckView `json:"deck"`
}

// DeckView exposes deck sizes only, so remaining card order never leaks.
type DeckView struct {
	Remaining int `json:"remaining"`
	Discarded int `json:"discarded"`
}

// ServerMessage is the envelope for everything sent to clients.
type ServerMessage struct {
	Type      string     `json:"type"`
	Message   string     `json:"message,omitempty"`
	PlayerID  string     `json:"playerId,omitempty"`
	Winner    *Player    `json:"winner,omitempty"`
	NewJudge  *Player    `json:"newJudge,omitempty"`
	GameState *GameState `json:"gameState,omitempty"`
}

func errorMessage(msg string) ServerMessage {
	return ServerMessage{Type: "error", Message: msg}
}

type Client struct {
	conn    *websocket.Conn
	send    chan any
	limiter *rate.Limiter

	// Guards send against closure; both the hub and the read goroutine
	// queue messages, and either side may be the one tearing down.
	sendMu sync.Mutex
	closed bool

	// Bound by join_room, read only by the owning hub afterwards.
	hub      *Hub
	playerID string

	// Idempotency bookkeeping, touched only by the hub goroutine.
	lastActionKey string
	lastActionAt  time.Time
}

// trySend queues a message without blocking. Returns false if the client
// is gone or its buffer is full.
func (c *Client) trySend(msg any) bool {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// closeSend closes the outbound queue exactly once.
func (c *Client) closeSend() {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

type actionRequest struct {
	client *Client
	msg    ClientMessage
}

// actionReplayWindow is how long a structurally identical repeated action
// from the same connection is treated as a client-side double-fire.
const actionReplayWindow = 500 * time.Millisecond

// Hub serializes all mutations for one room. Actions for different rooms
// run fully in parallel; nothing here blocks on another room.
type Hub struct {
	roomID string
	engine *session

	clients  map[*Client]bool
	register chan *Client
	unreg    chan *Client
	actions  chan actionRequest
	done     chan struct{}

	mu sync.RWMutex

	createdAt  time.Time
	lastActive time.Time
}

func newHub(roomID string, engine *session) *Hub {
	now := time.Now()
	return &Hub{
		roomID:     roomID,
		engine:     engine,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unreg:      make(chan *Client),
		actions:    make(chan actionRequest, 16),
		done:       make(chan struct{}),
		createdAt:  now,
		lastActive: now,
	}
}

func (h *Hub) run(cfg *Config) {
	for {
		select {
		case <-h.done:
			return

		case c := <-h.register:
			h.mu.Lock()
			h.lastActive = time.Now()
			h.clients[c] = true

			if player, ok := h.engine.store.Player(c.playerID); ok {
				player.IsOnline = true
			}

			// Reply with a full current-state snapshot, never a diff.
			if snapshot, ok := h.engine.Snapshot(h.roomID, c.playerID); ok {
				h.sendLocked(c, ServerMessage{
					Type:      "game_state",
					GameState: &snapshot,
				})
			} else {
				h.sendLocked(c, errorMessage("Room not found or game state unavailable"))
			}
			h.mu.Unlock()

		case c := <-h.unreg:
			h.mu.Lock()
			h.lastActive = time.Now()

			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				c.closeSend()
			}
			playerID := c.playerID

			if playerID != "" {
				if player, ok := h.engine.MarkOffline(playerID); ok {
					logf(cfg, "GAMES: Player %q disconnected from room %s", player.Name, h.roomID)
					h.broadcastLocked(ServerMessage{
						Type:     "player_disconnected",
						PlayerID: playerID,
					})
				}
			}
			h.mu.Unlock()

		case a := <-h.actions:
			h.mu.Lock()
			h.lastActive = time.Now()
			h.handleAction(cfg, a)
			h.mu.Unlock()
		}
	}
}

// handleAction applies one inbound action and fans out the resulting
// snapshot. Assumes h.mu is held.
func (h *Hub) handleAction(cfg *Config, a actionRequest) {
	c := a.client
	msg := a.msg

	key := msg.Type + "/" + msg.CardID + msg.WinnerID
	now := time.Now()
	if c.lastActionKey == key && now.Sub(c.lastActionAt) < actionReplayWindow {
		logf(cfg, "GAMES: Dropped duplicate %s from %s in room %s", msg.Type, c.playerID, h.roomID)
		return
	}
	c.lastActionKey = key
	c.lastActionAt = now

	var (
		err   error
		event ServerMessage
		reply bool // send to the acting connection only
	)

	switch msg.Type {
	case "start_game":
		err = h.engine.StartGame(h.roomID, c.playerID)
		event = ServerMessage{Type: "judge_selection_started"}

	case "reveal_number_card":
		err = h.engine.RevealNumber(h.roomID, c.playerID)
		event = ServerMessage{Type: "number_card_revealed", PlayerID: c.playerID}

	case "start_round":
		err = h.engine.StartRound(h.roomID)
		event = ServerMessage{Type: "round_started"}

	case "select_photo_card":
		err = h.engine.SelectPhoto(h.roomID, c.playerID, msg.CardID)
		event = ServerMessage{Type: "photo_card_selected"}

	case "submit_caption_card":
		err = h.engine.SubmitCaption(h.roomID, c.playerID, msg.CardID)
		event = ServerMessage{Type: "card_submitted"}

	case "exchange_card":
		err = h.engine.ExchangeCard(h.roomID, c.playerID, msg.CardID)
		// Hand contents are private, so the refreshed snapshot goes to the
		// acting connection only.
		event = ServerMessage{Type: "card_exchanged"}
		reply = true

	case "select_winner":
		var res winnerResult
		res, err = h.engine.SelectWinner(h.roomID, c.playerID, msg.WinnerID)
		if err == nil {
			switch res.outcome {
			case outcomeFinished:
				event = ServerMessage{Type: "game_finished", Winner: res.winner}
				logf(cfg, "GAMES: %q won the game in room %s", res.winner.Name, h.roomID)
			case outcomeContinues:
				event = ServerMessage{Type: "round_continues", Winner: res.winner}
			case outcomeRotated:
				event = ServerMessage{Type: "judge_rotated", Winner: res.winner, NewJudge: res.newJudge}
			}
		}

	case "restart_game":
		err = h.engine.Restart(h.roomID, c.playerID)
		event = ServerMessage{Type: "game_restarted"}

	default:
		logf(cfg, "GAMES: Ignored unknown action %q in room %s", msg.Type, h.roomID)
		return
	}

	if err != nil {
		switch kind, _ := kindOf(err); kind {
		case errInvalidTransition:
			// Out-of-order actions are dropped without a response; the
			// client keeps its current snapshot.
			logf(cfg, "GAMES: Rejected %s: %v", msg.Type, err)
		default:
			logf(cfg, "GAMES: Failed %s: %v", msg.Type, err)
			h.sendLocked(c, errorMessage(err.Error()))
		}
		return
	}

	if reply {
		h.sendEventLocked(c, event)
		return
	}
	h.broadcastLocked(event)
}

// broadcastLocked sends the event to every connection in the room, each
// with its own masked snapshot. Assumes h.mu is held.
func (h *Hub) broadcastLocked(event ServerMessage) {
	for client := range h.clients {
		h.sendEventLocked(client, event)
	}
}

// sendEventLocked attaches the recipient's snapshot to the event and
// queues it. Assumes h.mu is held.
func (h *Hub) sendEventLocked(c *Client, event ServerMessage) {
	if snapshot, ok := h.engine.Snapshot(h.roomID, c.playerID); ok {
		event.GameState = &snapshot
	}
	if event.Winner != nil {
		winner := playerViewFor(*event.Winner, c.playerID)
		event.Winner = &winner
	}
	if event.NewJudge != nil {
		judge := playerViewFor(*event.NewJudge, c.playerID)
		event.NewJudge = &judge
	}
	h.sendLocked(c, event)
}

// sendLocked queues a message for a registered client, dropping the client
// if its buffer is full. Sends to already-evicted clients are silently
// discarded. Assumes h.mu is held.
func (h *Hub) sendLocked(c *Client, msg any) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	if !c.trySend(msg) {
		delete(h.clients, c)
		c.closeSend()
	}
}

// closeAll disconnects all clients of this hub (used by the reaper).
func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		c.closeSend()
		if c.conn != nil {
			_ = c.conn.Close()
		}
		delete(h.clients, c)
	}
}

// shutdown stops the run loop and disconnects everyone. Call at most once,
// after the hub is unreachable through its GameManager.
func (h *Hub) shutdown() {
	close(h.done)
	h.closeAll()
}

// Snapshot builds a deep-copied view of the room for one recipient. Every
// other player's hidden number card is masked; the deck appears as counts.
func (s *session) Snapshot(roomID, viewerID string) (GameState, bool) {
	room, ok := s.store.Room(roomID)
	if !ok {
		return GameState{}, false
	}

	roomCopy := *room
	if room.SelectedPhotoCard != nil {
		photo := *room.SelectedPhotoCard
		roomCopy.SelectedPhotoCard = &photo
	}
	roomCopy.SubmittedCards = append([]SubmittedCard{}, room.SubmittedCards...)

	players := s.store.PlayersByRoom(roomID)
	views := make([]Player, 0, len(players))
	for _, player := range players {
		views = append(views, playerViewFor(*player, viewerID))
	}

	var deckView DeckView
	if deck, ok := s.store.Deck(roomID); ok {
		deckView.Remaining = deck.remaining()
		deckView.Discarded = len(deck.Discard)
	}

	return GameState{
		Room:    roomCopy,
		Players: views,
		Deck:    deckView,
	}, true
}

// playerViewFor deep-copies a player, masking the hidden number card
// unless the viewer owns it.
func playerViewFor(player Player, viewerID string) Player {
	player.Hand = append([]CaptionCard{}, player.Hand...)

	if player.NumberCard != nil {
		n := *player.NumberCard
		player.NumberCard = &n
	}

	if player.HiddenNumberCard != nil && player.ID == viewerID {
		n := *player.HiddenNumberCard
		player.HiddenNumberCard = &n
	} else {
		player.HiddenNumberCard = nil
	}

	return player
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GameManager holds a hub per room id, creating them lazily as players
// join over websocket.
type GameManager struct {
	mu          sync.Mutex
	hubs        map[string]*Hub
	engine      *session
	idleTimeout time.Duration
}

func newGameManager(engine *session, idleTimeout time.Duration) *GameManager {
	gm := &GameManager{
		hubs:        make(map[string]*Hub),
		engine:      engine,
		idleTimeout: idleTimeout,
	}
	if idleTimeout > 0 {
		go gm.reaperLoop()
	}
	return gm
}

func (gm *GameManager) getHub(cfg *Config, roomID string) *Hub {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if hub, ok := gm.hubs[roomID]; ok {
		return hub
	}

	hub := newHub(roomID, gm.engine)
	gm.hubs[roomID] = hub
	go hub.run(cfg)
	return hub
}

// peekHub returns an existing hub without creating one.
func (gm *GameManager) peekHub(roomID string) (*Hub, bool) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	hub, ok := gm.hubs[roomID]
	return hub, ok
}

// reaperLoop periodically removes rooms that have been idle longer than
// idleTimeout.
func (gm *GameManager) reaperLoop() {
	ticker := time.NewTicker(gm.idleTimeout / 2)
	for range ticker.C {
		gm.reapIdle(time.Now().Add(-gm.idleTimeout))
	}
}

// reapIdle tears down every room idle since before the cutoff: the hub's
// run loop exits, its connections close, and the room's entities leave
// the store.
func (gm *GameManager) reapIdle(cutoff time.Time) {
	var stale []*Hub

	gm.mu.Lock()
	for id, hub := range gm.hubs {
		hub.mu.RLock()
		last := hub.lastActive
		hub.mu.RUnlock()

		if last.Before(cutoff) {
			delete(gm.hubs, id)
			stale = append(stale, hub)
		}
	}
	gm.mu.Unlock()

	for _, hub := range stale {
		hub.shutdown()
		gm.engine.store.DeleteRoom(hub.roomID)
	}
}

func (c *Client) readPump(cfg *Config, gm *GameManager) {
	defer func() {
		if c.hub != nil {
			select {
			case c.hub.unreg <- c:
			case <-c.hub.done:
				c.closeSend()
			}
		} else {
			c.closeSend()
		}
		_ = c.conn.Close()
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		if !c.limiter.Allow() {
			continue
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.trySend(errorMessage("Invalid message format"))
			continue
		}

		if msg.Type == "join_room" {
			c.handleJoin(cfg, gm, msg)
			continue
		}

		if c.hub == nil {
			c.trySend(errorMessage("Join a room first"))
			continue
		}

		select {
		case c.hub.actions <- actionRequest{client: c, msg: msg}:
		case <-c.hub.done:
			return
		}
	}
}

// handleJoin binds the connection to (playerId, roomId) and registers it
// with the room's hub. Re-issuing join_room resynchronizes the client with
// a fresh snapshot.
func (c *Client) handleJoin(cfg *Config, gm *GameManager, msg ClientMessage) {
	if msg.RoomID == "" || msg.PlayerID == "" {
		c.trySend(errorMessage("Room not found or game state unavailable"))
		return
	}

	if _, ok := gm.engine.store.Room(msg.RoomID); !ok {
		c.trySend(errorMessage("Room not found or game state unavailable"))
		return
	}

	player, ok := gm.engine.store.Player(msg.PlayerID)
	if !ok || player.RoomID != msg.RoomID {
		c.trySend(errorMessage("Player not found in this room"))
		return
	}

	if c.hub != nil && c.hub.roomID != msg.RoomID {
		c.trySend(errorMessage("Connection already bound to another room"))
		return
	}

	c.playerID = msg.PlayerID
	if c.hub == nil {
		c.hub = gm.getHub(cfg, msg.RoomID)
	}

	logf(cfg, "GAMES: Player %q joined room %s", player.Name, msg.RoomID)
	select {
	case c.hub.register <- c:
	case <-c.hub.done:
		c.closeSend()
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// WebSocket handler; connections start anonymous and bind via join_room.
func serveWS(cfg *Config, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			conn:    conn,
			send:    make(chan any, 8),
			limiter: rate.NewLimiter(rate.Limit(20), 40),
		}

		go client.writePump()
		client.readPump(cfg, gm)
	}
}

// ---- Room/player allocation REST collaborators ----

// REST reads and mutations take the room hub's lock, the same lock the
// hub's run loop holds while applying actions, so room state stays
// serialized across both entry points.
func createRoomHandler(cfg *Config, engine *session, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var body struct {
			HostID string `json:"hostId"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		room, err := engine.store.CreateRoom()
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create room"})
			return
		}

		hub := gm.getHub(cfg, room.ID)
		hub.mu.Lock()
		if body.HostID != "" {
			room.HostID = body.HostID
		}
		engine.store.PutDeck(room.ID, newDeck(engine.catalog))
		view := *room
		view.SubmittedCards = append([]SubmittedCard{}, room.SubmittedCards...)
		hub.mu.Unlock()

		logf(cfg, "GAMES: Created room %s (%s)", view.Code, view.ID)
		writeJSON(w, http.StatusOK, map[string]any{"room": view})
	}
}

func getRoomHandler(cfg *Config, engine *session, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		room, ok := engine.store.RoomByCode(p.ByName("code"))
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Room not found"})
			return
		}

		hub := gm.getHub(cfg, room.ID)
		hub.mu.RLock()
		snapshot, _ := engine.Snapshot(room.ID, "")
		hub.mu.RUnlock()

		writeJSON(w, http.StatusOK, snapshot)
	}
}

func joinRoomHandler(cfg *Config, engine *session, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		var body struct {
			Name   string `json:"name"`
			IsHost bool   `json:"isHost"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Failed to join room"})
			return
		}

		room, ok := engine.store.RoomByCode(p.ByName("code"))
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Room not found"})
			return
		}

		hub := gm.getHub(cfg, room.ID)
		hub.mu.Lock()

		if room.Status != StatusWaiting {
			hub.mu.Unlock()
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Game already in progress"})
			return
		}

		player := engine.store.CreatePlayer(room.ID, body.Name)

		// The room creator joins like everyone else and claims the host
		// slot if it is still the placeholder.
		if body.IsHost && room.HostID == tempHostID {
			room.HostID = player.ID
			logf(cfg, "GAMES: Room %s host is now %q", room.Code, player.Name)
		}

		hub.broadcastLocked(ServerMessage{Type: "player_joined"})

		snapshot, _ := engine.Snapshot(room.ID, player.ID)
		playerView := playerViewFor(*player, player.ID)
		hub.mu.Unlock()

		writeJSON(w, http.StatusOK, map[string]any{
			"player":    playerView,
			"gameState": snapshot,
		})
	}
}

func photoCardsHandler(engine *session) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		writeJSON(w, http.StatusOK, engine.catalog.Photos())
	}
}

// QR handler: generates a PNG QR code pointing at the room's join URL.
func qrHandler(cfg *Config, engine *session) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		room, ok := engine.store.RoomByCode(p.ByName("code"))
		if !ok {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}

		// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}

		url := scheme + "://" + r.Host + cfg.prefix + "/?code=" + room.Code

		const qrSize = 320 // mobile-friendly size
		png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// registerMemeGame sets up the game's REST and websocket routes.
func registerMemeGame(cfg *Config, mux *httprouter.Router, engine *session) *GameManager {
	gm := newGameManager(engine, cfg.sessionTimeout)

	mux.POST(cfg.prefix+"/api/rooms", createRoomHandler(cfg, engine, gm))
	mux.GET(cfg.prefix+"/api/rooms/:code", getRoomHandler(cfg, engine, gm))
	mux.POST(cfg.prefix+"/api/rooms/:code/join", joinRoomHandler(cfg, engine, gm))
	mux.GET(cfg.prefix+"/api/rooms/:code/qr", qrHandler(cfg, engine))
	mux.GET(cfg.prefix+"/api/cards/photo", photoCardsHandler(engine))

	mux.GET(cfg.prefix+"/ws", serveWS(cfg, gm))

	return gm
}
