package model

import (
	"iter"
	"log"

	"github.com/limaJavier/matchodds/pkg/combinatorics"
)

// Constraint tells whether an arrangement is kept. The arrangement slice must not be retained
type Constraint func(arrangement []int) bool

// Keeps the arrangements where element sits (present) or does not sit (!present) at position
func NewCoupleConstraint(n, element, position int, present bool) Constraint {
	validateElement(n, element)
	validatePosition(n, position)
	return func(arrangement []int) bool {
		return (arrangement[position] == element) == present
	}
}

// Keeps the arrangements sharing exactly ceremony.Matches pairs with the ceremony
func NewCeremonyConstraint(n int, ceremony Ceremony) Constraint {
	validateCeremony(n, ceremony)
	return func(arrangement []int) bool {
		return ceremony.CountMatches(arrangement) == ceremony.Matches
	}
}

// Keeps the arrangements where position holds the doubled element
func NewDoublonConstraint(n, position int) Constraint {
	validatePosition(n, position)
	return func(arrangement []int) bool {
		_, first, second := combinatorics.Doublon(arrangement)
		return first == position || second == position
	}
}

// Walks every arrangement once and clears the survivors failing any constraint. Returns the new survivor count
func Apply(survivors *SurvivorSet, n int, constraints ...Constraint) uint64 {
	validateSurvivors(survivors, n)

	var remaining uint64
	for index, arrangement := range combinatorics.Arrangements(n) {
		if !survivors.Alive(index) {
			continue
		}

		kept := true
		for _, constraint := range constraints {
			if !constraint(arrangement) {
				kept = false
				break
			}
		}

		if kept {
			remaining++
		} else {
			survivors.Kill(index)
		}
	}

	return remaining
}

func ApplyCouple(survivors *SurvivorSet, n, element, position int, present bool) uint64 {
	return Apply(survivors, n, NewCoupleConstraint(n, element, position, present))
}

func ApplyCeremony(survivors *SurvivorSet, n int, ceremony Ceremony) uint64 {
	return Apply(survivors, n, NewCeremonyConstraint(n, ceremony))
}

func ApplyKnownDoublon(survivors *SurvivorSet, n, position int) uint64 {
	return Apply(survivors, n, NewDoublonConstraint(n, position))
}

// Survivor is an alive arrangement along with its index
type Survivor struct {
	Index       uint64
	Arrangement []int
}

// Returns the first limit surviving arrangements (all of them when limit <= 0)
func Survivors(survivors *SurvivorSet, n int, limit int) []Survivor {
	validateSurvivors(survivors, n)

	result := make([]Survivor, 0)
	if survivors.Count() == 0 {
		return result
	}

	//** Walk arrangements only up to the last wanted survivor
	next, stop := iter.Pull(survivors.Indices())
	defer stop()
	wanted, ok := next()
	for index, arrangement := range combinatorics.Arrangements(n) {
		if !ok || (limit > 0 && len(result) == limit) {
			break
		} else if index != wanted {
			continue
		}
		result = append(result, Survivor{Index: index, Arrangement: append([]int(nil), arrangement...)})
		wanted, ok = next()
	}
	return result
}

func validateSurvivors(survivors *SurvivorSet, n int) {
	if expected := combinatorics.ArrangementCount(n); survivors.Len() != expected {
		log.Panicf("survivor set of length %v does not match %v positions (%v arrangements)", survivors.Len(), n, expected)
	}
}
