// Package engine implements the per-trick and per-situation machinery that
// sits between the card primitives (internal/card, internal/cards) and the
// solver: trick resolution, the three player roles, bounds, and the
// OpenSituation state the solver recurses over.
package engine

import "github.com/bran/skat/internal/card"

// Role is a player's relationship to the contract: the Declarer plays
// against the two Defenders.
type Role uint8

const (
	Declarer Role = iota
	FirstDefender
	SecondDefender
)

func (r Role) String() string {
	switch r {
	case Declarer:
		return "Declarer"
	case FirstDefender:
		return "FirstDefender"
	default:
		return "SecondDefender"
	}
}

// Next returns the role that plays after r within a trick.
func (r Role) Next() Role {
	switch r {
	case Declarer:
		return FirstDefender
	case FirstDefender:
		return SecondDefender
	default:
		return Declarer
	}
}

// FirstActive returns the role that leads the very first trick, given
// which bidding seat won the bidding and became declarer.
func FirstActive(declarer BiddingRole) Role {
	switch declarer {
	case FirstReceiver:
		return Declarer
	case FirstCaller:
		return SecondDefender
	default: // SecondCaller
		return FirstDefender
	}
}

// BiddingRole is a player's seat relative to the bidding order, independent
// of who won the bidding.
type BiddingRole uint8

const (
	FirstReceiver BiddingRole = iota
	FirstCaller
	SecondCaller
)

// Dealer is the seat that deals, always the last to bid.
const Dealer = SecondCaller

// FirstActivePlayer is the seat that speaks first during bidding.
const FirstActivePlayer = FirstReceiver

// SecondReceiver is an alias for the seat that receives the second bid.
const SecondReceiver = FirstCaller

func (b BiddingRole) String() string {
	switch b {
	case FirstReceiver:
		return "FirstReceiver"
	case FirstCaller:
		return "FirstCaller"
	default:
		return "SecondCaller"
	}
}

// Next returns the next seat in bidding order.
func (b BiddingRole) Next() BiddingRole {
	switch b {
	case FirstReceiver:
		return FirstCaller
	case FirstCaller:
		return SecondCaller
	default:
		return FirstReceiver
	}
}

// ToRole translates a bidding seat into its Role once biddingWinner has won
// the bidding and become declarer.
func (b BiddingRole) ToRole(biddingWinner BiddingRole) Role {
	firstActive := FirstActive(biddingWinner)
	switch b {
	case FirstReceiver:
		return firstActive
	case FirstCaller:
		return firstActive.Next()
	default:
		return firstActive.Next().Next()
	}
}

// Position is a card's position within a trick, independent of role.
type Position uint8

const (
	Forehand Position = iota
	Middlehand
	Rearhand
)

func (p Position) String() string {
	switch p {
	case Forehand:
		return "Forehand"
	case Middlehand:
		return "Middlehand"
	default:
		return "Rearhand"
	}
}

// Role returns the bidding seat that holds this trick position, given which
// seat leads (is Forehand).
func (p Position) Role(firstPlayer BiddingRole) BiddingRole {
	switch p {
	case Forehand:
		return firstPlayer
	case Middlehand:
		return firstPlayer.Next()
	default:
		return firstPlayer.Next().Next()
	}
}

// MinimaxRole is which side of the minimax search a Role plays: the side
// trying to maximize trick yield, or the side trying to minimize it.
type MinimaxRole uint8

const (
	Min MinimaxRole = iota
	Max
)

// MinimaxRoleOf derives the minimax role of a player role under a game
// type: the declarer maximizes in every contract except Null, where the
// declarer instead tries to avoid taking any trick at all, flipping the
// two sides.
func MinimaxRoleOf(role Role, g card.GameType) MinimaxRole {
	isDeclarer := role == Declarer
	isNull := g.IsNull()
	if isDeclarer != isNull {
		return Max
	}
	return Min
}
