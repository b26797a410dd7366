package combinatorics

import (
	"iter"
	"log"
)

// Returns n! for n in [0, 20]
func Factorial(n int) uint64 {
	if n < 0 || n > 20 {
		log.Panicf("factorial out of uint64 range: %v", n)
	}
	var result uint64 = 1
	for i := 2; i <= n; i++ {
		result *= uint64(i)
	}
	return result
}

// Returns the number of arrangements of n-1 elements over n positions: C(n, 2) * (n-1) * (n-2)! = n! * (n-1) / 2
func ArrangementCount(n int) uint64 {
	validateSize(n)
	return Factorial(n) * uint64(n-1) / 2
}

// Arrangements yields every (index, arrangement) pair in emission order. Each range starts a fresh enumeration.
// The arrangement slice is reused between iterations; clone it to keep it
func Arrangements(n int) iter.Seq2[uint64, []int] {
	return func(yield func(uint64, []int) bool) {
		generator := NewArrangementGenerator(n)
		defer generator.Reset()

		var index uint64
		for arrangement := generator.Next(); arrangement != nil; arrangement = generator.Next() {
			if !yield(index, arrangement) {
				return
			}
			index++
		}
	}
}

// Doublon returns the doubled value of an arrangement and the two positions holding it, or (-1, -1, -1) if there is none.
// Values outside [0, MaxPositions) are ignored
func Doublon(arrangement []int) (value, first, second int) {
	var seen [MaxPositions]int // position+1 of the first occurrence, 0 when unseen
	for position, element := range arrangement {
		if element < 0 || element >= MaxPositions {
			continue
		}
		if seen[element] != 0 {
			return element, seen[element] - 1, position
		}
		seen[element] = position + 1
	}
	return -1, -1, -1
}
