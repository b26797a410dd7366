package combinatorics

import "log"

// MaxPositions is the largest number of positions supported by the generators; ArrangementCount(MaxPositions) still fits in a uint64
const MaxPositions = 12

// PermutationGenerator walks the permutations of {0..n-1} in lexicographic order, one at a time.
//
// Example (n = 3):
//
//	generator := combinatorics.NewPermutationGenerator(3)
//	for permutation := generator.Next(); permutation != nil; permutation = generator.Next() {
//		// [0 1 2], [0 2 1], [1 0 2], [1 2 0], [2 0 1], [2 1 0]
//	}
type PermutationGenerator interface {
	// Returns the next permutation, or nil once the last one has been returned (the generator is then reset).
	// The returned slice is owned by the generator and is only valid until the following call
	Next() []int
	// Drops the current state so the following Next returns the identity permutation
	Reset()
	// Returns the number of values being permuted
	Size() int
}

func NewPermutationGenerator(n int) PermutationGenerator {
	validateSize(n)
	return &permutationGeneratorImplementation{n: n}
}

type permutationGeneratorImplementation struct {
	n           int
	permutation []int // nil when no enumeration is in progress
}

func (generator *permutationGeneratorImplementation) Next() []int {
	if generator.permutation == nil {
		generator.permutation = make([]int, generator.n)
		for i := range generator.permutation {
			generator.permutation[i] = i
		}
		return generator.permutation
	}

	permutation := generator.permutation

	// Find the head of the longest non-increasing suffix
	i := len(permutation) - 1
	for i > 0 && permutation[i-1] > permutation[i] {
		i--
	}
	if i == 0 { // The whole sequence is decreasing: the last permutation has been reached
		generator.Reset()
		return nil
	}

	// Swap the pivot with the smallest suffix value greater than it (the suffix is decreasing, so scan from the end)
	pivot := i - 1
	j := len(permutation) - 1
	for permutation[j] < permutation[pivot] {
		j--
	}
	permutation[pivot], permutation[j] = permutation[j], permutation[pivot]

	// Restore the suffix to ascending order
	for left, right := i, len(permutation)-1; left < right; left, right = left+1, right-1 {
		permutation[left], permutation[right] = permutation[right], permutation[left]
	}

	return permutation
}

func (generator *permutationGeneratorImplementation) Reset() {
	generator.permutation = nil
}

func (generator *permutationGeneratorImplementation) Size() int {
	return generator.n
}

func validateSize(n int) {
	if n < 2 || n > MaxPositions {
		log.Panicf("number of positions must be between 2 and %v: %v", MaxPositions, n)
	}
}
