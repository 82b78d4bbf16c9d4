package domain

// playSizes are the hand sizes worth enumerating when a player may lead
// anything. Singles are handled separately since every card is playable.
var playSizes = []int{2, 3, 5}

// PossiblePlays enumerates every valid play a hand can make given the trick
// state. When lastPlay is non-nil, only combinations of the same size that
// beat it are returned. When openingPlay is true, every returned play
// contains the three of diamonds. Otherwise the player is leading a fresh
// round and any valid shape qualifies.
//
// The returned plays are freshly allocated, never aliasing the input hand.
// An empty result means the player must pass.
func PossiblePlays(hand Hand, lastPlay Hand, openingPlay bool) []Hand {
	if lastPlay != nil {
		var plays []Hand
		for _, candidate := range hand.Combinations(len(lastPlay)) {
			if MayFollow(lastPlay, candidate) == nil {
				plays = append(plays, candidate)
			}
		}
		return plays
	}

	if openingPlay {
		if !hand.Contains(ThreeOfDiamonds) {
			return nil
		}
		var plays []Hand
		plays = append(plays, Hand{ThreeOfDiamonds})
		for _, size := range playSizes {
			for _, candidate := range hand.Combinations(size) {
				if candidate.Contains(ThreeOfDiamonds) && candidate.Validate() == nil {
					plays = append(plays, candidate)
				}
			}
		}
		return plays
	}

	var plays []Hand
	for _, card := range hand {
		plays = append(plays, Hand{card})
	}
	for _, size := range playSizes {
		for _, candidate := range hand.Combinations(size) {
			if candidate.Validate() == nil {
				plays = append(plays, candidate)
			}
		}
	}
	return plays
}
