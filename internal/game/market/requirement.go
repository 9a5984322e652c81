package market

import "sort"

// Coverage is the result of matching a card's requirements against owned elements.
type Coverage struct {
	Covered bool
	Missing []int
	// Waived is how many missing elements the waiver allowance absorbed.
	Waived int
}

// Covers matches each required element against a distinct owned element.
// Whatever is left over is missing; the card is covered when the missing
// count fits within waivers.
func Covers(required, owned []int, waivers int) Coverage {
	pool := make(map[int]int, len(owned))
	for _, n := range owned {
		pool[n]++
	}

	var missing []int
	for _, n := range required {
		if pool[n] > 0 {
			pool[n]--
			continue
		}
		missing = append(missing, n)
	}
	sort.Ints(missing)

	if len(missing) == 0 {
		return Coverage{Covered: true}
	}
	if waivers < 0 {
		waivers = 0
	}
	return Coverage{
		Covered: len(missing) <= waivers,
		Missing: missing,
		Waived:  min(len(missing), waivers),
	}
}
