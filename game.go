package main

import (
	"crypto/rand"
	"math/big"
)

// session is the rules engine. Every method validates an action against the
// current room state, then either mutates the store and deck or returns a
// typed error; callers are responsible for serializing calls per room and
// broadcasting the resulting snapshot.
type session struct {
	cfg     *Config
	store   Repository
	catalog *Catalog
}

func newSession(cfg *Config, store Repository, catalog *Catalog) *session {
	return &session{
		cfg:     cfg,
		store:   store,
		catalog: catalog,
	}
}

const minPlayers = 3

// StartGame moves a waiting room into judge selection, dealing each player
// a hidden number card from a random permutation of 1..N.
func (s *session) StartGame(roomID, actorID string) error {
	room, ok := s.store.Room(roomID)
	if !ok {
		return notFound("room %s not found", roomID)
	}
	if room.Status != StatusWaiting {
		return invalidTransition("start_game in room %s with status %s", room.Code, room.Status)
	}
	if actorID != room.HostID {
		return invalidTransition("start_game in room %s by non-host %s", room.Code, actorID)
	}

	players := s.store.PlayersByRoom(roomID)
	if len(players) < minPlayers {
		return invalidTransition("start_game in room %s with %d players", room.Code, len(players))
	}

	numbers := randomPermutation(len(players))
	for i, player := range players {
		n := numbers[i]
		player.HiddenNumberCard = &n
		player.NumberCard = nil
	}

	room.Status = StatusSelectingJudge

	return nil
}

// randomPermutation returns 1..n in random order.
func randomPermutation(n int) []int {
	numbers := make([]int, n)
	for i := range numbers {
		numbers[i] = i + 1
	}

	for i := n - 1; i > 0; i-- {
		r, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			continue
		}
		j := int(r.Int64())
		numbers[i], numbers[j] = numbers[j], numbers[i]
	}

	return numbers
}

// RevealNumber copies the player's hidden number card into the visible one.
// Revealing is client-paced; no ordering across players is required.
func (s *session) RevealNumber(roomID, playerID string) error {
	room, ok := s.store.Room(roomID)
	if !ok {
		return notFound("room %s not found", roomID)
	}
	player, ok := s.store.Player(playerID)
	if !ok || player.RoomID != roomID {
		return notFound("player %s not found in room %s", playerID, room.Code)
	}
	if room.Status != StatusSelectingJudge {
		return invalidTransition("reveal_number_card in room %s with status %s", room.Code, room.Status)
	}
	if player.HiddenNumberCard == nil {
		return invalidTransition("reveal_number_card by %s with no hidden card", player.Name)
	}
	if player.NumberCard != nil {
		return invalidTransition("reveal_number_card by %s who already revealed", player.Name)
	}

	n := *player.HiddenNumberCard
	player.NumberCard = &n

	return nil
}

// StartRound begins play once every player has revealed. The judge is the
// player holding the minimum revealed number; ties cannot occur since the
// numbers are a permutation, but first-found order would break them.
func (s *session) StartRound(roomID string) error {
	room, ok := s.store.Room(roomID)
	if !ok {
		return notFound("room %s not found", roomID)
	}
	if room.Status != StatusSelectingJudge {
		return invalidTransition("start_round in room %s with status %s", room.Code, room.Status)
	}

	players := s.store.PlayersByRoom(roomID)

	var judge *Player
	for _, player := range players {
		if player.NumberCard == nil {
			return invalidTransition("start_round in room %s before %s revealed", room.Code, player.Name)
		}
		if judge == nil || *player.NumberCard < *judge.NumberCard {
			judge = player
		}
	}
	if judge == nil {
		return invalidTransition("start_round in room %s with no players", room.Code)
	}

	deck := newDeck(s.catalog)
	deck.deal(players)
	s.store.PutDeck(roomID, deck)

	room.Status = StatusPlaying
	room.CurrentJudgeID = judge.ID
	room.CurrentRound = 1
	room.SelectedPhotoCard = nil
	room.SubmittedCards = []SubmittedCard{}

	return nil
}

// SelectPhoto puts a photo card in play for the round. Only the judge may
// select, and only while no photo is in play.
func (s *session) SelectPhoto(roomID, actorID, cardID string) error {
	room, ok := s.store.Room(roomID)
	if !ok {
		return notFound("room %s not found", roomID)
	}
	if room.Status != StatusPlaying {
		return invalidTransition("select_photo_card in room %s with status %s", room.Code, room.Status)
	}
	if room.SelectedPhotoCard != nil {
		return invalidTransition("select_photo_card in room %s with a photo already in play", room.Code)
	}
	if actorID != room.CurrentJudgeID {
		return invalidTransition("select_photo_card in room %s by non-judge %s", room.Code, actorID)
	}

	card, ok := s.catalog.Card(cardID)
	if !ok || card.Type != CardPhoto {
		return notFound("photo card %s not found", cardID)
	}

	room.SelectedPhotoCard = &PhotoCard{
		ID:          card.ID,
		ImageURL:    card.ImageURL,
		Description: card.Description,
	}

	return nil
}

// SubmitCaption moves a caption from the player's hand into the round's
// submissions. No replacement is dealt; hands shrink over a judge era.
func (s *session) SubmitCaption(roomID, playerID, cardID string) error {
	room, ok := s.store.Room(roomID)
	if !ok {
		return notFound("room %s not found", roomID)
	}
	player, ok := s.store.Player(playerID)
	if !ok || player.RoomID != roomID {
		return notFound("player %s not found in room %s", playerID, room.Code)
	}
	deck, ok := s.store.Deck(roomID)
	if !ok {
		return notFound("deck for room %s not found", room.Code)
	}
	if room.Status != StatusPlaying || room.SelectedPhotoCard == nil {
		return invalidTransition("submit_caption_card in room %s with no photo in play", room.Code)
	}
	if playerID == room.CurrentJudgeID {
		return invalidTransition("submit_caption_card by judge %s", player.Name)
	}
	if player.HasSubmittedCard {
		return invalidTransition("submit_caption_card by %s who already submitted", player.Name)
	}

	card, ok := removeFromHand(player, cardID)
	if !ok {
		return notFound("card %s not in %s's hand", cardID, player.Name)
	}

	deck.discard(card)
	player.HasSubmittedCard = true
	room.SubmittedCards = append(room.SubmittedCards, SubmittedCard{
		PlayerID: playerID,
		CardID:   cardID,
		Text:     card.Text,
	})

	return nil
}

// ExchangeCard swaps one hand card for a random draw from the deck, at most
// once per player per round.
func (s *session) ExchangeCard(roomID, playerID, cardID string) error {
	room, ok := s.store.Room(roomID)
	if !ok {
		return notFound("room %s not found", roomID)
	}
	player, ok := s.store.Player(playerID)
	if !ok || player.RoomID != roomID {
		return notFound("player %s not found in room %s", playerID, room.Code)
	}
	deck, ok := s.store.Deck(roomID)
	if !ok {
		return notFound("deck for room %s not found", room.Code)
	}
	if room.Status != StatusPlaying {
		return invalidTransition("exchange_card in room %s with status %s", room.Code, room.Status)
	}
	if player.HasExchangedCard {
		return invalidTransition("exchange_card by %s who already exchanged", player.Name)
	}
	if deck.remaining() == 0 {
		return exhausted("the deck is out of caption cards")
	}

	card, ok := removeFromHand(player, cardID)
	if !ok {
		return notFound("card %s not in %s's hand", cardID, player.Name)
	}

	deck.discard(card)

	drawn, ok := deck.drawRandom()
	if !ok {
		// Checked above; deck cannot drain between the two calls within a
		// serialized action.
		return exhausted("the deck is out of caption cards")
	}

	player.Hand = append(player.Hand, drawn)
	player.HasExchangedCard = true

	return nil
}

type winnerOutcome int

const (
	outcomeFinished winnerOutcome = iota
	outcomeContinues
	outcomeRotated
)

type winnerResult struct {
	outcome  winnerOutcome
	winner   *Player
	newJudge *Player
}

// SelectWinner awards the round. Depending on remaining hands and the
// trophy target, the game finishes, the round continues under the same
// judge, or the judge rotates with a full redeal.
func (s *session) SelectWinner(roomID, actorID, winnerID string) (winnerResult, error) {
	var res winnerResult

	room, ok := s.store.Room(roomID)
	if !ok {
		return res, notFound("room %s not found", roomID)
	}
	if room.Status != StatusPlaying {
		return res, invalidTransition("select_winner in room %s with status %s", room.Code, room.Status)
	}
	if actorID != room.CurrentJudgeID {
		return res, invalidTransition("select_winner in room %s by non-judge %s", room.Code, actorID)
	}

	players := s.store.PlayersByRoom(roomID)
	if len(room.SubmittedCards) != len(players)-1 {
		return res, invalidTransition("select_winner in room %s with %d of %d submissions",
			room.Code, len(room.SubmittedCards), len(players)-1)
	}

	winner, ok := s.store.Player(winnerID)
	if !ok || winner.RoomID != roomID {
		return res, notFound("player %s not found in room %s", winnerID, room.Code)
	}

	submitted := false
	for _, sc := range room.SubmittedCards {
		if sc.PlayerID == winnerID {
			submitted = true
			break
		}
	}
	if !submitted {
		return res, invalidTransition("select_winner in room %s for non-submitter %s", room.Code, winner.Name)
	}

	winner.Trophies++
	res.winner = winner

	room.SelectedPhotoCard = nil
	room.SubmittedCards = []SubmittedCard{}
	for _, player := range players {
		if player.ID != room.CurrentJudgeID {
			player.HasSubmittedCard = false
			player.HasExchangedCard = false
		}
	}

	if winner.Trophies >= s.cfg.winTrophies {
		room.Status = StatusFinished
		res.outcome = outcomeFinished
		return res, nil
	}

	cardsLeft := false
	for _, player := range players {
		if player.ID != room.CurrentJudgeID && len(player.Hand) > 0 {
			cardsLeft = true
			break
		}
	}

	if cardsLeft {
		room.CurrentRound++
		res.outcome = outcomeContinues
		return res, nil
	}

	// Hands are empty: rotate the judge in join order and give the new era
	// a fresh full-catalog shuffle.
	judgeIndex := 0
	for i, player := range players {
		if player.ID == room.CurrentJudgeID {
			judgeIndex = i
			break
		}
	}
	newJudge := players[(judgeIndex+1)%len(players)]

	deck := newDeck(s.catalog)
	deck.deal(players)
	s.store.PutDeck(roomID, deck)

	room.CurrentJudgeID = newJudge.ID
	room.CurrentRound = 1

	res.outcome = outcomeRotated
	res.newJudge = newJudge
	return res, nil
}

// Restart resets the room and every player back to the waiting state with a
// fresh deck. The only back-edge in the machine, and host-only.
func (s *session) Restart(roomID, actorID string) error {
	room, ok := s.store.Room(roomID)
	if !ok {
		return notFound("room %s not found", roomID)
	}
	if actorID != room.HostID {
		return invalidTransition("restart_game in room %s by non-host %s", room.Code, actorID)
	}

	room.Status = StatusWaiting
	room.CurrentJudgeID = ""
	room.CurrentRound = 0
	room.SelectedPhotoCard = nil
	room.SubmittedCards = []SubmittedCard{}

	for _, player := range s.store.PlayersByRoom(roomID) {
		player.Hand = []CaptionCard{}
		player.Trophies = 0
		player.NumberCard = nil
		player.HiddenNumberCard = nil
		player.HasSubmittedCard = false
		player.HasExchangedCard = false
	}

	s.store.PutDeck(roomID, newDeck(s.catalog))

	return nil
}

// MarkOffline records a soft disconnect; the player entity, hand, and
// trophies persist for rejoin.
func (s *session) MarkOffline(playerID string) (*Player, bool) {
	player, ok := s.store.Player(playerID)
	if !ok {
		return nil, false
	}
	player.IsOnline = false
	return player, true
}

func removeFromHand(player *Player, cardID string) (CaptionCard, bool) {
	for i, card := range player.Hand {
		if card.ID == cardID {
			player.Hand = append(player.Hand[:i], player.Hand[i+1:]...)
			return card, true
		}
	}
	return CaptionCard{}, false
}
