package main

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type RoomStatus string

const (
	StatusWaiting        RoomStatus = "waiting"
	StatusSelectingJudge RoomStatus = "selecting_judge"
	StatusPlaying        RoomStatus = "playing"
	StatusFinished       RoomStatus = "finished"
)

// tempHostID marks a room whose host has not joined yet; the first player
// joining with the host flag claims it.
const tempHostID = "temp-host-id"

// SubmittedCard keeps the submitting player server-side for winner
// attribution; clients see submissions as anonymous.
type SubmittedCard struct {
	PlayerID string `json:"playerId"`
	CardID   string `json:"cardId"`
	Text     string `json:"text"`
}

type Room struct {
	ID                string          `json:"id"`
	Code              string          `json:"code"`
	HostID            string          `json:"hostId"`
	Status            RoomStatus      `json:"status"`
	CurrentJudgeID    string          `json:"currentJudgeId,omitempty"`
	CurrentRound      int             `json:"currentRound"`
	SelectedPhotoCard *PhotoCard      `json:"selectedPhotoCard"`
	SubmittedCards    []SubmittedCard `json:"submittedCards"`
	CreatedAt         time.Time       `json:"createdAt"`
}

type Player struct {
	ID               string        `json:"id"`
	RoomID           string        `json:"roomId"`
	Name             string        `json:"name"`
	IsOnline         bool          `json:"isOnline"`
	Hand             []CaptionCard `json:"hand"`
	Trophies         int           `json:"trophies"`
	NumberCard       *int          `json:"numberCard"`
	HiddenNumberCard *int          `json:"hiddenNumberCard"`
	HasSubmittedCard bool          `json:"hasSubmittedCard"`
	HasExchangedCard bool          `json:"hasExchangedCard"`
	JoinedAt         time.Time     `json:"joinedAt"`
}

// Repository is the session engine's view of entity storage. The in-memory
// implementation below is the reference one; anything that preserves
// per-room serialization can stand in for it.
type Repository interface {
	Room(id string) (*Room, bool)
	RoomByCode(code string) (*Room, bool)
	CreateRoom() (*Room, error)
	DeleteRoom(roomID string)
	Player(id string) (*Player, bool)
	PlayersByRoom(roomID string) []*Player
	CreatePlayer(roomID, name string) *Player
	Deck(roomID string) (*Deck, bool)
	PutDeck(roomID string, deck *Deck)
}

// MemStore holds all mutable session state in maps. The store mutex guards
// map shape only; entity mutation is serialized per room by each room's hub.
type MemStore struct {
	mu          sync.RWMutex
	rooms       map[string]*Room
	players     map[string]*Player
	roomPlayers map[string][]string // join order per room
	decks       map[string]*Deck
}

func NewMemStore() *MemStore {
	return &MemStore{
		rooms:       make(map[string]*Room),
		players:     make(map[string]*Player),
		roomPlayers: make(map[string][]string),
		decks:       make(map[string]*Deck),
	}
}

func (s *MemStore) Room(id string) (*Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[id]
	return room, ok
}

// RoomByCode compares codes case-insensitively, since codes are typed in
// by hand from another player's screen.
func (s *MemStore) RoomByCode(code string) (*Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, room := range s.rooms {
		if strings.EqualFold(room.Code, code) {
			return room, true
		}
	}
	return nil, false
}

func (s *MemStore) CreateRoom() (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, err := s.newRoomCodeLocked()
	if err != nil {
		return nil, err
	}

	room := &Room{
		ID:             uuid.NewString(),
		Code:           code,
		HostID:         tempHostID,
		Status:         StatusWaiting,
		SubmittedCards: []SubmittedCard{},
		CreatedAt:      time.Now(),
	}
	s.rooms[room.ID] = room

	return room, nil
}

// newRoomCodeLocked generates a 6-char room code and retries on the
// (unlikely) collision with a live room.
func (s *MemStore) newRoomCodeLocked() (string, error) {
	const letters = "0123456789ABCDEF"

	for {
		buf := make([]byte, 6)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}

		out := make([]byte, 6)
		for i := range out {
			out[i] = letters[int(buf[i])%len(letters)]
		}
		code := string(out)

		taken := false
		for _, room := range s.rooms {
			if strings.EqualFold(room.Code, code) {
				taken = true
				break
			}
		}
		if !taken {
			return code, nil
		}
	}
}

// DeleteRoom removes the room with all of its players and its deck.
func (s *MemStore) DeleteRoom(roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.roomPlayers[roomID] {
		delete(s.players, id)
	}
	delete(s.roomPlayers, roomID)
	delete(s.rooms, roomID)
	delete(s.decks, roomID)
}

func (s *MemStore) Player(id string) (*Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	player, ok := s.players[id]
	return player, ok
}

// PlayersByRoom returns the room's players in join order.
func (s *MemStore) PlayersByRoom(roomID string) []*Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.roomPlayers[roomID]
	players := make([]*Player, 0, len(ids))
	for _, id := range ids {
		if player, ok := s.players[id]; ok {
			players = append(players, player)
		}
	}
	return players
}

func (s *MemStore) CreatePlayer(roomID, name string) *Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	player := &Player{
		ID:       uuid.NewString(),
		RoomID:   roomID,
		Name:     name,
		IsOnline: true,
		Hand:     []CaptionCard{},
		JoinedAt: time.Now(),
	}
	s.players[player.ID] = player
	s.roomPlayers[roomID] = append(s.roomPlayers[roomID], player.ID)

	return player
}

func (s *MemStore) Deck(roomID string) (*Deck, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deck, ok := s.decks[roomID]
	return deck, ok
}

func (s *MemStore) PutDeck(roomID string, deck *Deck) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.decks[roomID] = deck
}
