package combinatorics

import "slices"

// ArrangementGenerator walks every arrangement of n-1 elements over n positions (exactly one element is doubled).
// The emission order is fixed: index i of an arrangement is the same on every pass and for every generator of the same size.
//
// Example (n = 4), first arrangements:
//
//	0 1 2 0
//	0 1 2 1
//	0 1 2 2
//	0 1 0 2
//	0 1 1 2
//	0 2 1 0
//	...
//	2 2 1 0 (36th and last)
type ArrangementGenerator interface {
	// Returns the next arrangement, or nil once the last one has been returned (the generator is then reset).
	// The returned slice is owned by the generator and is only valid until the following call
	Next() []int
	// Drops the current state so the following Next returns the first arrangement
	Reset()
	// Returns the number of positions
	Size() int
}

func NewArrangementGenerator(n int) ArrangementGenerator {
	validateSize(n)
	return &arrangementGeneratorImplementation{
		n:            n,
		permutations: NewPermutationGenerator(n),
	}
}

// Each permutation P of {0..n-1} is turned into arrangements by overwriting the position p holding n-1 with a doubled value k.
// The copy of k already present in P sits either before or after p; only the "before" case is emitted,
// the other one is reached from the permutation where the two positions are swapped
type arrangementGeneratorImplementation struct {
	n            int
	permutations PermutationGenerator
	arrangement  []int // nil when no enumeration is in progress
	doubled      int   // Value currently doubled (k)
	position     int   // Position of n-1 in the base permutation (p)
	exhausted    bool  // Every doubled value of the base permutation has been tried
}

func (generator *arrangementGeneratorImplementation) Next() []int {
	if generator.arrangement == nil {
		generator.arrangement = make([]int, generator.n)
		generator.exhausted = true
	}

	for {
		if generator.exhausted {
			permutation := generator.permutations.Next()
			// Once n-1 leads, p is 0 and no doubled value can have its copy before it; every remaining permutation also starts with n-1
			if permutation == nil || permutation[0] == generator.n-1 {
				generator.Reset()
				return nil
			}

			copy(generator.arrangement, permutation)
			generator.position = slices.Index(generator.arrangement, generator.n-1)
			generator.doubled = 0
			generator.exhausted = false
		} else {
			generator.doubled++
		}

		generator.arrangement[generator.position] = generator.doubled
		if generator.doubled == generator.n-2 {
			generator.exhausted = true
		}

		if !slices.Contains(generator.arrangement[generator.position+1:], generator.doubled) {
			return generator.arrangement
		}
	}
}

func (generator *arrangementGeneratorImplementation) Reset() {
	generator.permutations.Reset()
	generator.arrangement = nil
	generator.exhausted = false
}

func (generator *arrangementGeneratorImplementation) Size() int {
	return generator.n
}
