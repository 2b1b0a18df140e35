package sampler

import (
	"math/rand"

	"github.com/bran/skat/internal/card"
	"github.com/bran/skat/internal/cards"
)

// cardTypePool is the still-unassigned cards of one CardType.
type cardTypePool struct {
	cardType card.CardType
	cards    []card.Card
}

func newCardTypePool(ct card.CardType, pool cards.Cards) cardTypePool {
	return cardTypePool{cardType: ct, cards: pool.ToSlice()}
}

// openCards buckets every still-unassigned card by CardType, matching the
// field order ColorDistribution uses.
type openCards struct {
	hearts, spades, diamonds, clubs, trump cardTypePool
}

func newOpenCards(unassigned cards.Cards, g card.GameType) openCards {
	return openCards{
		hearts:   newCardTypePool(card.OfSuit(card.Hearts), cards.OfCardType(card.OfSuit(card.Hearts), g).And(unassigned)),
		spades:   newCardTypePool(card.OfSuit(card.Spades), cards.OfCardType(card.OfSuit(card.Spades), g).And(unassigned)),
		diamonds: newCardTypePool(card.OfSuit(card.Diamonds), cards.OfCardType(card.OfSuit(card.Diamonds), g).And(unassigned)),
		clubs:    newCardTypePool(card.OfSuit(card.Clubs), cards.OfCardType(card.OfSuit(card.Clubs), g).And(unassigned)),
		trump:    newCardTypePool(card.Trump, cards.OfCardType(card.Trump, g).And(unassigned)),
	}
}

func (o *openCards) pools() [5]*cardTypePool {
	return [5]*cardTypePool{&o.hearts, &o.spades, &o.diamonds, &o.clubs, &o.trump}
}

func (o *openCards) shuffle(rng *rand.Rand) {
	for _, p := range o.pools() {
		rng.Shuffle(len(p.cards), func(i, j int) {
			p.cards[i], p.cards[j] = p.cards[j], p.cards[i]
		})
	}
}

// take removes and returns the first n cards of pool p.
func (p *cardTypePool) take(n int) cards.Cards {
	result := cards.Empty
	for _, c := range p.cards[:n] {
		result = result.Add(c)
	}
	p.cards = p.cards[n:]
	return result
}

func (o *openCards) countsFor(cd ColorDistribution) [5]int {
	return [5]int{cd.Hearts, cd.Spades, cd.Diamonds, cd.Clubs, cd.Trump}
}

// assignFront hands out cd's counts from the front of each pool — call
// shuffle first if the draw needs to be uniformly random.
func (o *openCards) assignFront(cd ColorDistribution) cards.Cards {
	result := cards.Empty
	pools := o.pools()
	counts := o.countsFor(cd)
	for i, p := range pools {
		result = result.Or(p.take(counts[i]))
	}
	return result
}

// Sampler draws possible-worlds Deals consistent with a CardKnowledge: it
// enumerates, per CardType, how many cards of it each holder could still
// hold (distributeColors), weights each such count-assignment by how
// many distinct card-level deals it represents (possibilities), and then
// draws from them uniformly at random, or lists every count-assignment's
// deals exactly when the caller's budget allows full enumeration.
type Sampler struct {
	knowledge     CardKnowledge
	gameType      card.GameType
	unassigned    cards.Cards
	distributions [][]ColorDistribution
	weights       []int
	total         int
}

// New builds a Sampler over every deal consistent with knowledge, given
// the game's trump suit (or Null).
func New(knowledge CardKnowledge, g card.GameType) Sampler {
	unassigned := cards.All.Without(knowledge.ObservedCards())
	open := ColorDistribution{
		Hearts:   cards.OfCardType(card.OfSuit(card.Hearts), g).And(unassigned).Len(),
		Spades:   cards.OfCardType(card.OfSuit(card.Spades), g).And(unassigned).Len(),
		Diamonds: cards.OfCardType(card.OfSuit(card.Diamonds), g).And(unassigned).Len(),
		Clubs:    cards.OfCardType(card.OfSuit(card.Clubs), g).And(unassigned).Len(),
		Trump:    cards.OfCardType(card.Trump, g).And(unassigned).Len(),
	}

	unknownSlice := knowledge.UnknownCardsSlice()
	distributions := distributeColors(unknownSlice[:], open)

	weights := make([]int, len(distributions))
	total := 0
	for i, d := range distributions {
		weights[i] = possibilities(d)
		total += weights[i]
	}

	return Sampler{
		knowledge:     knowledge,
		gameType:      g,
		unassigned:    unassigned,
		distributions: distributions,
		weights:       weights,
		total:         total,
	}
}

// NumberOfPossibilities returns the number of distinct fully observable
// deals consistent with the Sampler's CardKnowledge.
func (s Sampler) NumberOfPossibilities() int {
	return s.total
}

func (s Sampler) dealFromHolderCards(holderCards [4]cards.Cards) Deal {
	return Deal{
		FirstReceiver: s.knowledge.observedCards[holderFirstReceiver].Or(holderCards[holderFirstReceiver]),
		FirstCaller:   s.knowledge.observedCards[holderFirstCaller].Or(holderCards[holderFirstCaller]),
		SecondCaller:  s.knowledge.observedCards[holderSecondCaller].Or(holderCards[holderSecondCaller]),
		Skat:          s.knowledge.observedCards[holderSkat].Or(holderCards[holderSkat]),
	}
}

// GetAllPossibilities exhaustively enumerates every deal consistent with
// the Sampler's CardKnowledge. Only affordable when NumberOfPossibilities
// is small; the caller decides that by checking it first.
func (s Sampler) GetAllPossibilities() []Deal {
	var result []Deal
	for _, bucket := range s.distributions {
		result = append(result, s.enumerateBucket(bucket)...)
	}
	return result
}

// enumerateBucket lists every Deal whose per-holder, per-CardType card
// counts match bucket, by choosing, CardType by CardType and holder by
// holder, every combination of which specific cards go where.
func (s Sampler) enumerateBucket(bucket []ColorDistribution) []Deal {
	perType := [5][][4]cards.Cards{}
	pools := [5]cards.Cards{
		cards.OfCardType(card.OfSuit(card.Hearts), s.gameType).And(s.unassigned),
		cards.OfCardType(card.OfSuit(card.Spades), s.gameType).And(s.unassigned),
		cards.OfCardType(card.OfSuit(card.Diamonds), s.gameType).And(s.unassigned),
		cards.OfCardType(card.OfSuit(card.Clubs), s.gameType).And(s.unassigned),
		cards.OfCardType(card.Trump, s.gameType).And(s.unassigned),
	}

	for typeIdx, pool := range pools {
		counts := make([]int, len(bucket))
		for h, cd := range bucket {
			counts[h] = [5]int{cd.Hearts, cd.Spades, cd.Diamonds, cd.Clubs, cd.Trump}[typeIdx]
		}
		perType[typeIdx] = partitionsOf(pool, counts)
	}

	var holderCombos [][4]cards.Cards
	for _, h0 := range perType[0] {
		for _, h1 := range perType[1] {
			for _, h2 := range perType[2] {
				for _, h3 := range perType[3] {
					for _, h4 := range perType[4] {
						holderCombos = append(holderCombos, [4]cards.Cards{
							h0[0].Or(h1[0]).Or(h2[0]).Or(h3[0]).Or(h4[0]),
							h0[1].Or(h1[1]).Or(h2[1]).Or(h3[1]).Or(h4[1]),
							h0[2].Or(h1[2]).Or(h2[2]).Or(h3[2]).Or(h4[2]),
							h0[3].Or(h1[3]).Or(h2[3]).Or(h3[3]).Or(h4[3]),
						})
					}
				}
			}
		}
	}

	result := make([]Deal, len(holderCombos))
	for i, hc := range holderCombos {
		result[i] = s.dealFromHolderCards(hc)
	}
	return result
}

// partitionsOf returns every way to split pool's cards into four
// disjoint groups (one per holder, in FirstReceiver/FirstCaller/
// SecondCaller/Skat order) of sizes counts[0..3], exhausting the pool.
func partitionsOf(pool cards.Cards, counts []int) [][4]cards.Cards {
	var assign func(remaining cards.Cards, holder int, acc [4]cards.Cards) [][4]cards.Cards
	assign = func(remaining cards.Cards, holder int, acc [4]cards.Cards) [][4]cards.Cards {
		if holder == len(counts) {
			return [][4]cards.Cards{acc}
		}
		var result [][4]cards.Cards
		for _, combo := range subsetsOf(remaining, counts[holder]) {
			next := acc
			next[holder] = combo
			result = append(result, assign(remaining.Without(combo), holder+1, next)...)
		}
		return result
	}
	return assign(pool, 0, [4]cards.Cards{})
}

// subsetsOf returns every k-card subset of pool, as cards.Cards values.
func subsetsOf(pool cards.Cards, k int) []cards.Cards {
	slice := pool.ToSlice()
	if k == 0 {
		return []cards.Cards{cards.Empty}
	}
	if k > len(slice) {
		return nil
	}

	var result []cards.Cards
	var pick func(start int, chosen cards.Cards, left int)
	pick = func(start int, chosen cards.Cards, left int) {
		if left == 0 {
			result = append(result, chosen)
			return
		}
		for i := start; i <= len(slice)-left; i++ {
			pick(i+1, chosen.Add(slice[i]), left-1)
		}
	}
	pick(0, cards.Empty, k)
	return result
}

// Sample draws a single Deal uniformly at random from every deal
// consistent with the Sampler's CardKnowledge, by first picking a
// ColorDistribution bucket weighted by how many Deals it represents,
// then shuffling each CardType's open pool and handing out the bucket's
// counts from the front.
func (s Sampler) Sample(rng *rand.Rand) Deal {
	bucket := s.distributions[weightedIndex(rng, s.weights, s.total)]

	open := newOpenCards(s.unassigned, s.gameType)
	open.shuffle(rng)

	var assigned [4]cards.Cards
	for holder, cd := range bucket {
		assigned[holder] = open.assignFront(cd)
	}

	return s.dealFromHolderCards(assigned)
}

func weightedIndex(rng *rand.Rand, weights []int, total int) int {
	if total <= 0 {
		return 0
	}
	pick := rng.Intn(total)
	for i, w := range weights {
		if pick < w {
			return i
		}
		pick -= w
	}
	return len(weights) - 1
}

// SampleMany draws n Deals independently via Sample.
func (s Sampler) SampleMany(rng *rand.Rand, n int) []Deal {
	result := make([]Deal, n)
	for i := range result {
		result[i] = s.Sample(rng)
	}
	return result
}
