package model

import (
	"iter"
	"log"
	"math/bits"
)

// SurvivorSet records, for every arrangement index, whether the arrangement is still consistent with all applied constraints.
// Its length never changes and a cleared index is never set again
type SurvivorSet struct {
	words  []uint64
	length uint64
	count  uint64
}

// Returns a set of the given length with every index alive
func NewSurvivorSet(total uint64) *SurvivorSet {
	words := make([]uint64, (total+63)/64)
	for i := range words {
		words[i] = ^uint64(0)
	}
	if remainder := total % 64; remainder != 0 {
		words[len(words)-1] = (uint64(1) << remainder) - 1
	}

	return &SurvivorSet{
		words:  words,
		length: total,
		count:  total,
	}
}

// Returns the number of indices (alive or not)
func (set *SurvivorSet) Len() uint64 {
	return set.length
}

// Returns the number of alive indices
func (set *SurvivorSet) Count() uint64 {
	return set.count
}

func (set *SurvivorSet) Alive(index uint64) bool {
	set.validate(index)
	return set.words[index/64]&(uint64(1)<<(index%64)) != 0
}

// Clears the index; clearing an already cleared index is a no-op
func (set *SurvivorSet) Kill(index uint64) {
	set.validate(index)
	word, mask := index/64, uint64(1)<<(index%64)
	if set.words[word]&mask != 0 {
		set.words[word] &^= mask
		set.count--
	}
}

// Yields the alive indices in ascending order
func (set *SurvivorSet) Indices() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i, word := range set.words {
			for word != 0 {
				offset := uint64(bits.TrailingZeros64(word))
				if !yield(uint64(i)*64 + offset) {
					return
				}
				word &= word - 1
			}
		}
	}
}

func (set *SurvivorSet) validate(index uint64) {
	if index >= set.length {
		log.Panicf("survivor index %v out of range [0, %v)", index, set.length)
	}
}
