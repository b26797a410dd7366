package model

import "log"

// Alone marks a position left without element in a ceremony
const Alone = -1

// Ceremony is an observed assignment of elements to positions along with the number of right pairs it contains.
// Pairs[position] is an element id or Alone; an element may appear twice (the doublon seated twice)
type Ceremony struct {
	Pairs   []int
	Matches int
}

// Counts the positions where the arrangement agrees with the ceremony (an Alone position never agrees)
func (ceremony Ceremony) CountMatches(arrangement []int) int {
	matches := 0
	for position, element := range ceremony.Pairs {
		if element != Alone && arrangement[position] == element {
			matches++
		}
	}
	return matches
}

func validateCeremony(n int, ceremony Ceremony) {
	if len(ceremony.Pairs) != n {
		log.Panicf("ceremony must pair %v positions: %v", n, ceremony.Pairs)
	}
	for _, element := range ceremony.Pairs {
		if element != Alone {
			validateElement(n, element)
		}
	}
	if ceremony.Matches < 0 || ceremony.Matches > n {
		log.Panicf("ceremony matches must be between 0 and %v: %v", n, ceremony.Matches)
	}
}

func validateElement(n, element int) {
	if element < 0 || element > n-2 {
		log.Panicf("element %v out of range [0, %v]", element, n-2)
	}
}

func validatePosition(n, position int) {
	if position < 0 || position > n-1 {
		log.Panicf("position %v out of range [0, %v]", position, n-1)
	}
}
