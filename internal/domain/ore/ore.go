// Package ore implements the One Roll Engine set parser: the decomposition
// of a pool of ten-sided dice into matched sets and loose dice.
package ore

// Faces is the number of faces on every ORE die.
const Faces = 10

// DiceSet is a group of two or more dice showing the same face.
// Width is the number of matching dice and Height their shared face value.
// RollsInSet repeats Height Width times for display.
type DiceSet struct {
	Width      int
	Height     int
	RollsInSet []int
}

// RollResult is the outcome of one ORE roll.
// Sets are ascending by Height; LooseDice holds faces rolled exactly once,
// ascending.
type RollResult struct {
	RawRolls   []int
	FlavorText *string
	Sets       []DiceSet
	LooseDice  []int
}

// ParseRawRoll groups rawRolls into sets and loose dice.
//
// Every die lands in exactly one place: a face rolled once becomes a
// loose die, a face rolled c >= 2 times becomes a single set of width c.
// Values outside [1, Faces] are not counted. The input slice is copied, never
// modified, and the result is the same for the same input.
func ParseRawRoll(rawRolls []int, flavorText *string) RollResult {
	var counts [Faces + 1]int // index 0 unused
	for _, face := range rawRolls {
		if face < 1 || face > Faces {
			continue
		}
		counts[face]++
	}

	sets := []DiceSet{}
	loose := []int{}
	for face := 1; face <= Faces; face++ {
		switch c := counts[face]; {
		case c == 1:
			loose = append(loose, face)
		case c >= 2:
			sets = append(sets, newDiceSet(face, c))
		}
	}

	raw := make([]int, len(rawRolls))
	copy(raw, rawRolls)

	return RollResult{
		RawRolls:   raw,
		FlavorText: flavorText,
		Sets:       sets,
		LooseDice:  loose,
	}
}

func newDiceSet(height, width int) DiceSet {
	rolls := make([]int, width)
	for i := range rolls {
		rolls[i] = height
	}
	return DiceSet{Width: width, Height: height, RollsInSet: rolls}
}

// HasFlavor reports whether the roll carries non-empty flavor text.
func (r RollResult) HasFlavor() bool {
	return r.FlavorText != nil && *r.FlavorText != ""
}

// WidestSet returns the set with the greatest width, breaking ties by the
// higher face. The boolean is false when the roll has no sets.
func (r RollResult) WidestSet() (DiceSet, bool) {
	if len(r.Sets) == 0 {
		return DiceSet{}, false
	}
	best := r.Sets[0]
	for _, s := range r.Sets[1:] {
		if s.Width > best.Width || (s.Width == best.Width && s.Height > best.Height) {
			best = s
		}
	}
	return best, true
}
