package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotMasksHiddenNumbers(t *testing.T) {
	t.Parallel()

	engine := testEngine(t, 30)
	room, players := newTestRoom(t, engine, 3)
	require.NoError(t, engine.StartGame(room.ID, players[0].ID))

	snapshot, ok := engine.Snapshot(room.ID, players[0].ID)
	require.True(t, ok)
	require.Len(t, snapshot.Players, 3)

	for _, view := range snapshot.Players {
		if view.ID == players[0].ID {
			assert.NotNil(t, view.HiddenNumberCard)
		} else {
			assert.Nil(t, view.HiddenNumberCard)
		}
	}

	// A spectator view masks everyone.
	snapshot, ok = engine.Snapshot(room.ID, "")
	require.True(t, ok)
	for _, view := range snapshot.Players {
		assert.Nil(t, view.HiddenNumberCard)
	}

	_, ok = engine.Snapshot("no-such-room", "")
	assert.False(t, ok)
}

func TestSnapshotDeckCounts(t *testing.T) {
	t.Parallel()

	engine := testEngine(t, 30)
	room, players := newTestRoom(t, engine, 3)
	require.NoError(t, engine.StartGame(room.ID, players[0].ID))
	revealAll(t, engine, room, players)
	require.NoError(t, engine.StartRound(room.ID))

	_, rest := judgeAndRest(room, players)
	require.NoError(t, engine.ExchangeCard(room.ID, rest[0].ID, rest[0].Hand[0].ID))

	snapshot, ok := engine.Snapshot(room.ID, rest[0].ID)
	require.True(t, ok)

	assert.Equal(t, 30-21-1, snapshot.Deck.Remaining)
	assert.Equal(t, 1, snapshot.Deck.Discarded)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	t.Parallel()

	engine := testEngine(t, 30)
	room, players := newTestRoom(t, engine, 3)
	require.NoError(t, engine.StartGame(room.ID, players[0].ID))
	revealAll(t, engine, room, players)
	require.NoError(t, engine.StartRound(room.ID))

	snapshot, ok := engine.Snapshot(room.ID, players[0].ID)
	require.True(t, ok)

	snapshot.Players[0].Hand[0].Text = "mutated"
	snapshot.Room.SubmittedCards = append(snapshot.Room.SubmittedCards, SubmittedCard{})

	assert.NotEqual(t, "mutated", players[0].Hand[0].Text)
	assert.Empty(t, room.SubmittedCards)
}

func TestPlayerViewFor(t *testing.T) {
	t.Parallel()

	hidden, revealed := 3, 2
	player := Player{
		ID:               "p",
		Hand:             []CaptionCard{{ID: "c1", Text: "one"}},
		NumberCard:       &revealed,
		HiddenNumberCard: &hidden,
	}

	own := playerViewFor(player, "p")
	require.NotNil(t, own.HiddenNumberCard)
	assert.Equal(t, hidden, *own.HiddenNumberCard)

	other := playerViewFor(player, "someone-else")
	assert.Nil(t, other.HiddenNumberCard)
	require.NotNil(t, other.NumberCard)
	assert.Equal(t, revealed, *other.NumberCard)

	other.Hand[0].Text = "mutated"
	assert.Equal(t, "one", player.Hand[0].Text)
}

// testClient builds a hub-side client with a buffered send queue and no
// underlying connection.
func testClient(playerID string, hub *Hub) *Client {
	return &Client{
		send:     make(chan any, 8),
		hub:      hub,
		playerID: playerID,
	}
}

func recvMessage(t *testing.T, c *Client) ServerMessage {
	t.Helper()

	select {
	case msg, ok := <-c.send:
		require.True(t, ok, "send channel closed")
		sm, ok := msg.(ServerMessage)
		require.True(t, ok)
		return sm
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a message")
		return ServerMessage{}
	}
}

func assertNoMessage(t *testing.T, c *Client) {
	t.Helper()

	select {
	case msg := <-c.send:
		t.Fatalf("unexpected message: %+v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubRegisterSendsSnapshot(t *testing.T) {
	t.Parallel()

	cfg := &Config{winTrophies: 5}
	engine := newSession(cfg, NewMemStore(), testCatalog(30))
	room, players := newTestRoom(t, engine, 3)

	hub := newHub(room.ID, engine)
	go hub.run(cfg)

	players[0].IsOnline = false
	c := testClient(players[0].ID, hub)
	hub.register <- c

	msg := recvMessage(t, c)
	assert.Equal(t, "game_state", msg.Type)
	require.NotNil(t, msg.GameState)
	assert.Equal(t, room.Code, msg.GameState.Room.Code)

	// Registration flips the player back online.
	assert.True(t, players[0].IsOnline)
}

func TestHubBroadcastMasksPerRecipient(t *testing.T) {
	t.Parallel()

	cfg := &Config{winTrophies: 5}
	engine := newSession(cfg, NewMemStore(), testCatalog(30))
	room, players := newTestRoom(t, engine, 3)

	hub := newHub(room.ID, engine)
	go hub.run(cfg)

	clients := make([]*Client, len(players))
	for i, p := range players {
		clients[i] = testClient(p.ID, hub)
		hub.register <- clients[i]
		recvMessage(t, clients[i])
	}

	hub.actions <- actionRequest{client: clients[0], msg: ClientMessage{Type: "start_game"}}

	for i, c := range clients {
		msg := recvMessage(t, c)
		assert.Equal(t, "judge_selection_started", msg.Type)
		require.NotNil(t, msg.GameState)

		for _, view := range msg.GameState.Players {
			if view.ID == players[i].ID {
				assert.NotNil(t, view.HiddenNumberCard)
			} else {
				assert.Nil(t, view.HiddenNumberCard)
			}
		}
	}
}

func TestHubDisconnectBroadcast(t *testing.T) {
	t.Parallel()

	cfg := &Config{winTrophies: 5}
	engine := newSession(cfg, NewMemStore(), testCatalog(30))
	room, players := newTestRoom(t, engine, 3)

	hub := newHub(room.ID, engine)
	go hub.run(cfg)

	a := testClient(players[0].ID, hub)
	b := testClient(players[1].ID, hub)
	hub.register <- a
	hub.register <- b
	recvMessage(t, a)
	recvMessage(t, b)

	hub.unreg <- b

	msg := recvMessage(t, a)
	assert.Equal(t, "player_disconnected", msg.Type)
	assert.Equal(t, players[1].ID, msg.PlayerID)

	// Soft disconnect: the entity stays with its state intact.
	require.NotNil(t, msg.GameState)
	for _, view := range msg.GameState.Players {
		if view.ID == players[1].ID {
			assert.False(t, view.IsOnline)
		}
	}
	assert.False(t, players[1].IsOnline)
}

func TestHubDropsDuplicateActions(t *testing.T) {
	t.Parallel()

	cfg := &Config{winTrophies: 5}
	engine := newSession(cfg, NewMemStore(), testCatalog(30))
	room, players := newTestRoom(t, engine, 3)
	require.NoError(t, engine.StartGame(room.ID, players[0].ID))
	revealAll(t, engine, room, players)
	require.NoError(t, engine.StartRound(room.ID))

	judge, _ := judgeAndRest(room, players)

	hub := newHub(room.ID, engine)
	go hub.run(cfg)

	c := testClient(judge.ID, hub)
	hub.register <- c
	recvMessage(t, c)

	// A missing card is surfaced to the sender once; the immediate repeat
	// is treated as a double-fire and dropped.
	msg := ClientMessage{Type: "select_photo_card", CardID: "bogus"}
	hub.actions <- actionRequest{client: c, msg: msg}
	hub.actions <- actionRequest{client: c, msg: msg}

	got := recvMessage(t, c)
	assert.Equal(t, "error", got.Type)
	assertNoMessage(t, c)
}

func TestHubExchangeRepliesToActorOnly(t *testing.T) {
	t.Parallel()

	cfg := &Config{winTrophies: 5}
	engine := newSession(cfg, NewMemStore(), testCatalog(30))
	room, players := newTestRoom(t, engine, 3)
	require.NoError(t, engine.StartGame(room.ID, players[0].ID))
	revealAll(t, engine, room, players)
	require.NoError(t, engine.StartRound(room.ID))

	_, rest := judgeAndRest(room, players)

	hub := newHub(room.ID, engine)
	go hub.run(cfg)

	actor := testClient(rest[0].ID, hub)
	other := testClient(rest[1].ID, hub)
	hub.register <- actor
	hub.register <- other
	recvMessage(t, actor)
	recvMessage(t, other)

	hub.actions <- actionRequest{
		client: actor,
		msg:    ClientMessage{Type: "exchange_card", CardID: rest[0].Hand[0].ID},
	}

	msg := recvMessage(t, actor)
	assert.Equal(t, "card_exchanged", msg.Type)
	require.NotNil(t, msg.GameState)
	assertNoMessage(t, other)
}

func TestHubSwallowsInvalidTransitions(t *testing.T) {
	t.Parallel()

	cfg := &Config{winTrophies: 5}
	engine := newSession(cfg, NewMemStore(), testCatalog(30))
	room, players := newTestRoom(t, engine, 2)

	hub := newHub(room.ID, engine)
	go hub.run(cfg)

	c := testClient(players[0].ID, hub)
	hub.register <- c
	recvMessage(t, c)

	// Two players cannot start; the action is logged and dropped with no
	// client response.
	hub.actions <- actionRequest{client: c, msg: ClientMessage{Type: "start_game"}}
	assertNoMessage(t, c)

	hub.actions <- actionRequest{client: c, msg: ClientMessage{Type: "no_such_action"}}
	assertNoMessage(t, c)
}

// ---- REST handlers ----

func newTestRouter(t *testing.T, engine *session) (*httprouter.Router, *Config, *GameManager) {
	t.Helper()

	cfg := &Config{winTrophies: 5, sessionTimeout: 0}
	mux := httprouter.New()
	gm := registerMemeGame(cfg, mux, engine)
	return mux, cfg, gm
}

func TestCreateAndJoinRoomHandlers(t *testing.T) {
	t.Parallel()

	engine := newSession(&Config{winTrophies: 5}, NewMemStore(), testCatalog(30))
	mux, _, _ := newTestRouter(t, engine)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/rooms", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Room Room `json:"room"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Len(t, created.Room.Code, 6)
	assert.Equal(t, tempHostID, created.Room.HostID)

	// First joiner with the host flag claims the host slot.
	body := bytes.NewBufferString(`{"name":"alice","isHost":true}`)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/rooms/"+created.Room.Code+"/join", body))
	require.Equal(t, http.StatusOK, w.Code)

	var joined struct {
		Player    Player    `json:"player"`
		GameState GameState `json:"gameState"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &joined))
	assert.Equal(t, "alice", joined.Player.Name)
	assert.Equal(t, joined.Player.ID, joined.GameState.Room.HostID)

	// Later host claims are ignored.
	body = bytes.NewBufferString(`{"name":"bob","isHost":true}`)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/rooms/"+created.Room.Code+"/join", body))
	require.Equal(t, http.StatusOK, w.Code)

	room, ok := engine.store.RoomByCode(created.Room.Code)
	require.True(t, ok)
	assert.Equal(t, joined.Player.ID, room.HostID)
}

func TestJoinRoomHandlerValidation(t *testing.T) {
	t.Parallel()

	engine := newSession(&Config{winTrophies: 5}, NewMemStore(), testCatalog(30))
	mux, _, _ := newTestRouter(t, engine)

	t.Run("unknown code", func(t *testing.T) {
		body := bytes.NewBufferString(`{"name":"alice"}`)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/rooms/ZZZZZZ/join", body))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		room, err := engine.store.CreateRoom()
		require.NoError(t, err)

		body := bytes.NewBufferString(`{}`)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/rooms/"+room.Code+"/join", body))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("game in progress", func(t *testing.T) {
		room, err := engine.store.CreateRoom()
		require.NoError(t, err)
		room.Status = StatusPlaying

		body := bytes.NewBufferString(`{"name":"late"}`)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/rooms/"+room.Code+"/join", body))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetRoomHandler(t *testing.T) {
	t.Parallel()

	engine := newSession(&Config{winTrophies: 5}, NewMemStore(), testCatalog(30))
	mux, _, _ := newTestRouter(t, engine)

	room, err := engine.store.CreateRoom()
	require.NoError(t, err)
	engine.store.PutDeck(room.ID, newDeck(engine.catalog))

	// Lookup is case-insensitive.
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rooms/"+strings.ToLower(room.Code), nil))
	require.Equal(t, http.StatusOK, w.Code)

	var snapshot GameState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	assert.Equal(t, room.Code, snapshot.Room.Code)
	assert.Equal(t, 30, snapshot.Deck.Remaining)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rooms/ZZZZZZ", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPhotoCardsHandler(t *testing.T) {
	t.Parallel()

	engine := newSession(&Config{winTrophies: 5}, NewMemStore(), testCatalog(30))
	mux, _, _ := newTestRouter(t, engine)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cards/photo", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var photos []Card
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &photos))
	require.Len(t, photos, 3)
	for _, photo := range photos {
		assert.Equal(t, CardPhoto, photo.Type)
	}
}

func TestQRHandler(t *testing.T) {
	t.Parallel()

	engine := newSession(&Config{winTrophies: 5}, NewMemStore(), testCatalog(30))
	mux, _, _ := newTestRouter(t, engine)

	room, err := engine.store.CreateRoom()
	require.NoError(t, err)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rooms/"+room.Code+"/qr", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rooms/ZZZZZZ/qr", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHubEvictsSlowClients(t *testing.T) {
	t.Parallel()

	cfg := &Config{winTrophies: 5}
	engine := newSession(cfg, NewMemStore(), testCatalog(30))
	room, players := newTestRoom(t, engine, 3)
	require.NoError(t, engine.StartGame(room.ID, players[0].ID))
	revealAll(t, engine, room, players)
	require.NoError(t, engine.StartRound(room.ID))

	judge, rest := judgeAndRest(room, players)

	hub := newHub(room.ID, engine)
	go hub.run(cfg)

	// A one-slot queue fills with the registration snapshot and never
	// drains, standing in for a stalled connection.
	slow := &Client{send: make(chan any, 1), hub: hub, playerID: judge.ID}
	hub.register <- slow

	// The first error reply finds the queue full and evicts the client;
	// the second finds the client gone and is discarded.
	hub.actions <- actionRequest{client: slow, msg: ClientMessage{Type: "select_photo_card", CardID: "bogus-1"}}
	hub.actions <- actionRequest{client: slow, msg: ClientMessage{Type: "select_photo_card", CardID: "bogus-2"}}

	// The hub is still alive and serving other connections.
	c := testClient(rest[0].ID, hub)
	hub.register <- c
	msg := recvMessage(t, c)
	assert.Equal(t, "game_state", msg.Type)

	// The evicted client got the snapshot it never drained, then a close.
	got := recvMessage(t, slow)
	assert.Equal(t, "game_state", got.Type)
	_, open := <-slow.send
	assert.False(t, open)
}

func TestRoomReadsDuringPlay(t *testing.T) {
	t.Parallel()

	engine := newSession(&Config{winTrophies: 5}, NewMemStore(), testCatalog(30))
	mux, cfg, gm := newTestRouter(t, engine)
	room, players := newTestRoom(t, engine, 3)

	hub := gm.getHub(cfg, room.ID)
	host := testClient(players[0].ID, hub)
	hub.register <- host
	recvMessage(t, host)

	// Snapshot reads over REST race the hub's mutations unless both paths
	// hold the room's lock.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rooms/"+room.Code, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	}()

	for i := 0; i < 100; i++ {
		hub.actions <- actionRequest{client: host, msg: ClientMessage{Type: "start_game"}}
		hub.actions <- actionRequest{client: host, msg: ClientMessage{Type: "restart_game"}}
	}
	<-done

	hub.mu.RLock()
	_, ok := engine.store.Room(room.ID)
	hub.mu.RUnlock()
	assert.True(t, ok)
}

func TestReapIdleRemovesRoomState(t *testing.T) {
	t.Parallel()

	cfg := &Config{winTrophies: 5}
	engine := newSession(cfg, NewMemStore(), testCatalog(30))
	room, players := newTestRoom(t, engine, 3)

	gm := newGameManager(engine, 0)
	hub := gm.getHub(cfg, room.ID)

	c := testClient(players[0].ID, hub)
	hub.register <- c
	recvMessage(t, c)

	gm.reapIdle(time.Now().Add(time.Hour))

	_, ok := gm.peekHub(room.ID)
	assert.False(t, ok)

	// The run loop got its exit signal and the connection queue closed.
	select {
	case <-hub.done:
	default:
		t.Fatal("hub run loop was not stopped")
	}
	for range c.send {
	}

	_, ok = engine.store.Room(room.ID)
	assert.False(t, ok)
	_, ok = engine.store.Player(players[0].ID)
	assert.False(t, ok)
	assert.Empty(t, engine.store.PlayersByRoom(room.ID))
	_, ok = engine.store.Deck(room.ID)
	assert.False(t, ok)
}
