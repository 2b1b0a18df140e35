// Package dto decodes the one external input format this module reads: a
// JSON description of an observer's view of a deal in progress. Decoding
// happens once, at process startup; everything downstream works with the
// already-validated domain types in internal/card, internal/sampler and
// internal/contract.
package dto

import (
	"encoding/json"
	"fmt"

	"github.com/bran/skat/internal/card"
	"github.com/bran/skat/internal/cards"
	"github.com/bran/skat/internal/contract"
	"github.com/bran/skat/internal/engine"
	"github.com/bran/skat/internal/sampler"
)

// rawGameMode mirrors the wire shape of the "game_mode" object: a bidding
// winner and a game type (each accepting an alias key), plus the four
// optional announcement flags.
type rawGameMode struct {
	Declarer      *string `json:"declarer"`
	BiddingWinner *string `json:"bidding_winner"`
	Type          *string `json:"type"`
	GameType      *string `json:"game_type"`
	Hand          bool    `json:"hand"`
	Schneider     bool    `json:"schneider"`
	Schwarz       bool    `json:"schwarz"`
	Ouvert        bool    `json:"ouvert"`
}

// raw mirrors the top-level wire shape of an observation file: a bidding
// role the observation is taken from, the observer's hand and (if known)
// the skat, the announced game mode, the bidding value, and every card
// played so far, grouped one inner array per trick (the last of which may
// be a partial trick still in progress).
type raw struct {
	Position     string      `json:"position"`
	Hand         []string    `json:"hand"`
	Skat         []string    `json:"skat"`
	GameMode     rawGameMode `json:"game_mode"`
	BiddingValue int         `json:"bidding_value"`
	PlayedCards  [][]string  `json:"played_cards"`
}

// Dto is a fully decoded and validated observation, ready to seed a
// possible-worlds sampler and a contract scorer.
type Dto struct {
	position     engine.BiddingRole
	hand         cards.Cards
	skat         cards.Cards
	hasSkat      bool
	announcement contract.Announcement
	biddingValue int
	biddingWinner engine.BiddingRole
	gameType     card.GameType
	playedCards  []card.Card
}

// Decode parses and validates a JSON observation file.
func Decode(data []byte) (Dto, error) {
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return Dto{}, fmt.Errorf("invalid observation json: %w", err)
	}

	position, err := parseBiddingRole(r.Position)
	if err != nil {
		return Dto{}, fmt.Errorf("position: %w", err)
	}

	hand, err := parseCards(r.Hand)
	if err != nil {
		return Dto{}, fmt.Errorf("hand: %w", err)
	}

	skat, hasSkat, err := parseSkat(r.Skat)
	if err != nil {
		return Dto{}, fmt.Errorf("skat: %w", err)
	}

	biddingWinnerStr := firstNonNil(r.GameMode.Declarer, r.GameMode.BiddingWinner)
	if biddingWinnerStr == "" {
		return Dto{}, fmt.Errorf("game_mode: missing declarer")
	}
	biddingWinner, err := parseBiddingRole(biddingWinnerStr)
	if err != nil {
		return Dto{}, fmt.Errorf("game_mode.declarer: %w", err)
	}

	gameTypeStr := firstNonNil(r.GameMode.Type, r.GameMode.GameType)
	if gameTypeStr == "" {
		return Dto{}, fmt.Errorf("game_mode: missing type")
	}
	g, err := parseGameType(gameTypeStr)
	if err != nil {
		return Dto{}, fmt.Errorf("game_mode.type: %w", err)
	}

	var announcement contract.Announcement
	if g.IsNull() {
		announcement = contract.NewNull(r.GameMode.Hand, r.GameMode.Ouvert)
	} else {
		announcement, err = contract.NewTrump(g, r.GameMode.Hand, r.GameMode.Schneider, r.GameMode.Schwarz, r.GameMode.Ouvert)
		if err != nil {
			return Dto{}, fmt.Errorf("game_mode: %w", err)
		}
	}

	playedCards, err := parsePlayedCards(r.PlayedCards)
	if err != nil {
		return Dto{}, fmt.Errorf("played_cards: %w", err)
	}

	return Dto{
		position:      position,
		hand:          hand,
		skat:          skat,
		hasSkat:       hasSkat,
		announcement:  announcement,
		biddingValue:  r.BiddingValue,
		biddingWinner: biddingWinner,
		gameType:      g,
		playedCards:   playedCards,
	}, nil
}

// PreGameObservations builds the observer's view of the deal before any
// card was played, alongside the contract being played for. The two are
// returned as sibling values rather than one nested inside the other: the
// possible-worlds sampler only ever needs the former, and bundling the
// latter in would make internal/sampler depend on internal/contract for no
// real coupling between the two concerns.
func (d Dto) PreGameObservations() (sampler.ObservedInitialGameState, contract.Contract) {
	state := sampler.ObservedInitialGameState{
		StartHand:     d.hand,
		SkatIfKnown:   d.skat,
		HasSkat:       d.hasSkat,
		GameType:      d.gameType,
		BiddingRole:   d.position,
		BiddingWinner: d.biddingWinner,
	}
	c := contract.Contract{BiddingValue: d.biddingValue, Announcement: d.announcement}
	return state, c
}

// PlayedCards returns every card played so far, flattened across tricks in
// play order (completed tricks first, then any partial trailing trick).
func (d Dto) PlayedCards() []card.Card {
	return d.playedCards
}

func firstNonNil(preferred, fallback *string) string {
	if preferred != nil {
		return *preferred
	}
	if fallback != nil {
		return *fallback
	}
	return ""
}

func parseBiddingRole(s string) (engine.BiddingRole, error) {
	switch s {
	case "FirstReceiver":
		return engine.FirstReceiver, nil
	case "FirstCaller":
		return engine.FirstCaller, nil
	case "SecondCaller":
		return engine.SecondCaller, nil
	default:
		return 0, fmt.Errorf("unrecognized bidding role %q", s)
	}
}

// parseGameType accepts the canonical suit/Null/Grand names alongside the
// German aliases "Eichel" (Clubs), "Herz" (Hearts) and "Green" (Spades).
func parseGameType(s string) (card.GameType, error) {
	switch s {
	case "Null":
		return card.Null, nil
	case "Grand":
		return card.Grand, nil
	case "Diamonds":
		return card.TrumpSuit(card.Diamonds), nil
	case "Hearts", "Herz":
		return card.TrumpSuit(card.Hearts), nil
	case "Spades", "Green":
		return card.TrumpSuit(card.Spades), nil
	case "Clubs", "Eichel":
		return card.TrumpSuit(card.Clubs), nil
	default:
		return card.GameType{}, fmt.Errorf("unrecognized game type %q", s)
	}
}

func parseCards(symbols []string) (cards.Cards, error) {
	var result cards.Cards
	for _, sym := range symbols {
		c, ok := card.ParseSymbol(sym)
		if !ok {
			return cards.Empty, fmt.Errorf("invalid card symbol %q", sym)
		}
		result = result.Or(cards.Just(c))
	}
	return result, nil
}

func parseSkat(symbols []string) (cards.Cards, bool, error) {
	switch len(symbols) {
	case 0:
		return cards.Empty, false, nil
	case 2:
		c, err := parseCards(symbols)
		return c, true, err
	default:
		return cards.Empty, false, fmt.Errorf("skat must have 0 or 2 cards, got %d", len(symbols))
	}
}

func parsePlayedCards(tricks [][]string) ([]card.Card, error) {
	var result []card.Card
	for _, trick := range tricks {
		for _, sym := range trick {
			c, ok := card.ParseSymbol(sym)
			if !ok {
				return nil, fmt.Errorf("invalid card symbol %q", sym)
			}
			result = append(result, c)
		}
	}
	return result, nil
}
