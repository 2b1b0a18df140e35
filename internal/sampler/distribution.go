package sampler

import "github.com/bran/skat/internal/card"

// ColorDistribution counts, per CardType, how many cards of it are
// involved in some partial accounting — either "still open" (unassigned
// to any holder) or "assigned to this holder". Field names follow the
// source's (hearts, spades, diamonds, clubs, trump) rather than the
// encoding-order (Diamonds, Hearts, Spades, Clubs) used elsewhere in this
// module; the two orderings are otherwise unrelated.
type ColorDistribution struct {
	Hearts   int
	Spades   int
	Diamonds int
	Clubs    int
	Trump    int
}

func (d ColorDistribution) without(n int, ct card.CardType) ColorDistribution {
	switch {
	case ct.IsTrump():
		d.Trump -= n
	case ct.Suit() == card.Hearts:
		d.Hearts -= n
	case ct.Suit() == card.Spades:
		d.Spades -= n
	case ct.Suit() == card.Diamonds:
		d.Diamonds -= n
	default:
		d.Clubs -= n
	}
	return d
}

// Len returns the total number of cards this distribution accounts for
// across every CardType.
func (d ColorDistribution) Len() int {
	return d.Hearts + d.Spades + d.Diamonds + d.Clubs + d.Trump
}

func (d ColorDistribution) add(other ColorDistribution) ColorDistribution {
	return ColorDistribution{
		Hearts:   d.Hearts + other.Hearts,
		Spades:   d.Spades + other.Spades,
		Diamonds: d.Diamonds + other.Diamonds,
		Clubs:    d.Clubs + other.Clubs,
		Trump:    d.Trump + other.Trump,
	}
}

// partiallyDistributeResult is one way to hand some of unknown's cards a
// CardType, leaving the rest of open's pool for earlier holders (the
// recursion in distributeColors processes holders back to front).
type partiallyDistributeResult struct {
	distributed ColorDistribution
	stillOpen   ColorDistribution
}

// partiallyDistribute enumerates every way to assign unknown.Number cards
// of open's still-unassigned pool to a single holder, consistent with
// which CardTypes that holder could still hold.
func partiallyDistribute(unknown UnknownCards, open ColorDistribution) []partiallyDistributeResult {
	var result []partiallyDistributeResult

	maxH := min(unknown.MaxPossible(card.OfSuit(card.Hearts)), open.Hearts)
	for h := 0; h <= maxH; h++ {
		rem1 := unknown
		rem1.Remove(h)
		open1 := open.without(h, card.OfSuit(card.Hearts))

		maxD := min(rem1.MaxPossible(card.OfSuit(card.Diamonds)), open1.Diamonds)
		for d := 0; d <= maxD; d++ {
			rem2 := rem1
			rem2.Remove(d)
			open2 := open1.without(d, card.OfSuit(card.Diamonds))

			maxC := min(rem2.MaxPossible(card.OfSuit(card.Clubs)), open2.Clubs)
			for c := 0; c <= maxC; c++ {
				rem3 := rem2
				rem3.Remove(c)
				open3 := open2.without(c, card.OfSuit(card.Clubs))

				maxS := min(rem3.MaxPossible(card.OfSuit(card.Spades)), open3.Spades)
				for s := 0; s <= maxS; s++ {
					rem4 := rem3
					rem4.Remove(s)
					open4 := open3.without(s, card.OfSuit(card.Spades))

					maxT := min(rem4.MaxPossible(card.Trump), open4.Trump)
					for t := 0; t <= maxT; t++ {
						rem5 := rem4
						rem5.Remove(t)
						open5 := open4.without(t, card.Trump)

						if rem5.IsEmpty() {
							result = append(result, partiallyDistributeResult{
								distributed: ColorDistribution{Hearts: h, Diamonds: d, Clubs: c, Spades: s, Trump: t},
								stillOpen:   open5,
							})
						}
					}
				}
			}
		}
	}

	return result
}

// distributeColors enumerates every way to hand out open's cards among
// the holders in unknownSlice, one ColorDistribution per holder, such
// that every holder's CardType restrictions and card count are honored
// and every open card ends up with exactly one holder. Returns one
// []ColorDistribution per valid full assignment, in unknownSlice's
// holder order.
func distributeColors(unknownSlice []UnknownCards, open ColorDistribution) [][]ColorDistribution {
	if len(unknownSlice) == 0 {
		if open.Len() == 0 {
			return [][]ColorDistribution{{}}
		}
		return nil
	}

	last := unknownSlice[len(unknownSlice)-1]
	rest := unknownSlice[:len(unknownSlice)-1]

	var result [][]ColorDistribution
	for _, partial := range partiallyDistribute(last, open) {
		for _, restAssignment := range distributeColors(rest, partial.stillOpen) {
			result = append(result, append(append([]ColorDistribution{}, restAssignment...), partial.distributed))
		}
	}
	return result
}

// possibilities returns the number of distinct card-level deals that
// share this [holder]ColorDistribution count assignment: the product,
// holder by holder, of how many ways to choose that holder's cards of
// each CardType from what's still available once earlier holders (in
// the same order distributeColors emits them) have taken theirs.
func possibilities(colorDistributions []ColorDistribution) int {
	soFar := ColorDistribution{}
	result := 1
	for _, cd := range colorDistributions {
		soFar = soFar.add(cd)
		result *= choose(soFar.Hearts, cd.Hearts)
		result *= choose(soFar.Spades, cd.Spades)
		result *= choose(soFar.Diamonds, cd.Diamonds)
		result *= choose(soFar.Clubs, cd.Clubs)
		result *= choose(soFar.Trump, cd.Trump)
	}
	return result
}

// choose returns total-choose-selected (n-choose-k), used to weight a
// ColorDistributions bucket by how many distinct card assignments it
// represents, so uniform sampling over deals — not over count buckets —
// stays exactly uniform.
func choose(total, selected int) int {
	if selected < 0 || selected > total {
		return 0
	}
	selected = min(selected, total-selected)
	numerator, denominator := 1, 1
	for i := 0; i < selected; i++ {
		numerator *= total - i
		denominator *= i + 1
	}
	return numerator / denominator
}
