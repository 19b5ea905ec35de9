package main

import (
	"crypto/rand"
	"math/big"
)

// Deck is a room's working copy of the caption catalog. Between the
// remaining captions, the discard pile, and every player's hand, each
// catalog card exists exactly once for the life of a judge era.
type Deck struct {
	Captions []CaptionCard
	Discard  []CaptionCard
}

// newDeck shuffles a fresh copy of the full caption catalog.
func newDeck(catalog *Catalog) *Deck {
	captions := catalog.Captions()
	shuffleCaptions(captions)

	return &Deck{
		Captions: captions,
		Discard:  []CaptionCard{},
	}
}

// shuffleCaptions is a Fisher-Yates shuffle backed by crypto/rand.
func shuffleCaptions(cards []CaptionCard) {
	for i := len(cards) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			continue
		}
		j := int(n.Int64())
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// handSizeFor compensates smaller lobbies with bigger hands: a 3-player
// room deals 7 cards each, larger rooms deal 4.
func handSizeFor(playerCount int) int {
	if playerCount == 3 {
		return 7
	}
	return 4
}

// deal partitions the top of the deck into contiguous hands, one slice per
// player in join order, and resets the per-round flags. The remainder
// stays as the working deck.
func (d *Deck) deal(players []*Player) {
	handSize := handSizeFor(len(players))

	for _, player := range players {
		if handSize > len(d.Captions) {
			handSize = len(d.Captions)
		}

		hand := make([]CaptionCard, handSize)
		copy(hand, d.Captions[:handSize])
		d.Captions = d.Captions[handSize:]

		player.Hand = hand
		player.HasSubmittedCard = false
		player.HasExchangedCard = false
	}
}

// drawRandom removes and returns a uniformly random remaining caption, so
// exchange draws are not predictable FIFO sequencing.
func (d *Deck) drawRandom() (CaptionCard, bool) {
	if len(d.Captions) == 0 {
		return CaptionCard{}, false
	}

	i := 0
	if len(d.Captions) > 1 {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.Captions))))
		if err == nil {
			i = int(n.Int64())
		}
	}

	card := d.Captions[i]
	d.Captions = append(d.Captions[:i], d.Captions[i+1:]...)

	return card, true
}

// discard removes a card from circulation for the rest of the era.
func (d *Deck) discard(card CaptionCard) {
	d.Discard = append(d.Discard, card)
}

func (d *Deck) remaining() int {
	return len(d.Captions)
}
