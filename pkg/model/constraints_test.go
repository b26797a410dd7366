package model

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/limaJavier/matchodds/pkg/combinatorics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownDoublonThenCouple(t *testing.T) {
	// Arrange
	n := 4
	survivors := NewSurvivorSet(combinatorics.ArrangementCount(n))
	expected := uint64(0)
	for _, arrangement := range combinatorics.Arrangements(n) {
		if _, first, second := combinatorics.Doublon(arrangement); first == 2 || second == 2 {
			expected++
		}
	}

	// Act
	afterDoublon := ApplyKnownDoublon(survivors, n, 2)
	afterCouple := ApplyCouple(survivors, n, 0, 0, true)

	// Assert
	assert.Equal(t, uint64(18), expected)
	assert.Equal(t, expected, afterDoublon)
	assert.Equal(t, uint64(6), afterCouple)
	assert.LessOrEqual(t, afterCouple, afterDoublon)
	assert.Equal(t, afterCouple, survivors.Count())
}

func TestCoupleSoundness(t *testing.T) {
	for range 10 {
		// Arrange
		n := rand.Intn(5) + 2
		element, position := rand.Intn(n-1), rand.Intn(n)
		survivors := NewSurvivorSet(combinatorics.ArrangementCount(n))

		// Act
		present := ApplyCouple(survivors, n, element, position, true)
		absent := ApplyCouple(survivors, n, element, position, false)

		// Assert
		assert.Greater(t, present, uint64(0))
		assert.Equal(t, uint64(0), absent)
	}
}

func TestConstraintsShrinkMonotonically(t *testing.T) {
	// Arrange
	n := 6
	survivors := NewSurvivorSet(combinatorics.ArrangementCount(n))
	previousCount := survivors.Count()
	previouslyDead := make(map[uint64]bool)

	for range 8 {
		// Act
		var count uint64
		switch rand.Intn(3) {
		case 0:
			count = ApplyCouple(survivors, n, rand.Intn(n-1), rand.Intn(n), rand.Intn(4) != 0)
		case 1:
			pairs := rand.Perm(n)
			pairs[rand.Intn(n)] = n - 1
			for i := range pairs {
				if pairs[i] == n-1 {
					pairs[i] = Alone
				}
			}
			count = ApplyCeremony(survivors, n, Ceremony{Pairs: pairs, Matches: rand.Intn(3)})
		case 2:
			count = ApplyKnownDoublon(survivors, n, rand.Intn(n))
		}

		// Assert
		assert.LessOrEqual(t, count, previousCount)
		assert.Equal(t, count, survivors.Count())
		for index := range previouslyDead {
			assert.False(t, survivors.Alive(index))
		}
		for index := range survivors.Len() {
			if !survivors.Alive(index) {
				previouslyDead[index] = true
			}
		}
		previousCount = count
	}
}

func TestCeremonyCountsAloneAsMismatch(t *testing.T) {
	// Arrange
	ceremony := Ceremony{Pairs: []int{0, Alone, 2, 1}, Matches: 2}

	// Act & Assert
	assert.Equal(t, 2, ceremony.CountMatches([]int{0, 1, 2, 2}))
	assert.Equal(t, 3, ceremony.CountMatches([]int{0, 0, 2, 1}))
	assert.Equal(t, 0, ceremony.CountMatches([]int{1, 2, 0, 0}))
}

func TestCeremonyWithDoublonSeatedTwice(t *testing.T) {
	// Arrange
	n := 4
	survivors := NewSurvivorSet(combinatorics.ArrangementCount(n))

	// Act
	remaining := ApplyCeremony(survivors, n, Ceremony{Pairs: []int{0, 1, 2, 2}, Matches: 4})

	// Assert
	require.Equal(t, uint64(1), remaining)
	survivor := Survivors(survivors, n, 0)
	assert.Equal(t, []int{0, 1, 2, 2}, survivor[0].Arrangement)
}

func TestApplyCombinesConstraintsInOneWalk(t *testing.T) {
	// Arrange
	n := 5
	separate := NewSurvivorSet(combinatorics.ArrangementCount(n))
	combined := NewSurvivorSet(combinatorics.ArrangementCount(n))

	// Act
	ApplyCouple(separate, n, 1, 2, true)
	expected := ApplyKnownDoublon(separate, n, 4)
	actual := Apply(combined, n, NewCoupleConstraint(n, 1, 2, true), NewDoublonConstraint(n, 4))

	// Assert
	assert.Equal(t, expected, actual)
	assert.Equal(t, Survivors(separate, n, 0), Survivors(combined, n, 0))
}

func TestSurvivorsLimit(t *testing.T) {
	// Arrange
	n := 4
	survivors := NewSurvivorSet(combinatorics.ArrangementCount(n))
	ApplyKnownDoublon(survivors, n, 2)

	// Act
	limited := Survivors(survivors, n, 5)
	all := Survivors(survivors, n, 0)

	// Assert
	assert.Len(t, limited, 5)
	assert.Len(t, all, 18)
	assert.Equal(t, all[:5], limited)
	for _, survivor := range all {
		assert.True(t, survivors.Alive(survivor.Index))
	}
}

func TestSurvivorsFollowAliveIndices(t *testing.T) {
	// Arrange
	n := 4
	kept := []uint64{0, 17, 35}
	survivors := NewSurvivorSet(combinatorics.ArrangementCount(n))
	for index := range survivors.Len() {
		if !slices.Contains(kept, index) {
			survivors.Kill(index)
		}
	}
	expected := make(map[uint64][]int)
	for index, arrangement := range combinatorics.Arrangements(n) {
		expected[index] = slices.Clone(arrangement)
	}

	// Act
	result := Survivors(survivors, n, 0)

	// Assert
	require.Len(t, result, len(kept))
	for i, survivor := range result {
		assert.Equal(t, kept[i], survivor.Index)
		assert.Equal(t, expected[survivor.Index], survivor.Arrangement)
	}
}

func TestConstraintsFailFast(t *testing.T) {
	n := 4
	survivors := NewSurvivorSet(combinatorics.ArrangementCount(n))

	assert.Panics(t, func() { ApplyCouple(survivors, n, 3, 0, true) })
	assert.Panics(t, func() { ApplyCouple(survivors, n, 0, 4, true) })
	assert.Panics(t, func() { ApplyKnownDoublon(survivors, n, -1) })
	assert.Panics(t, func() { ApplyCeremony(survivors, n, Ceremony{Pairs: []int{0, 1, 2}, Matches: 1}) })
	assert.Panics(t, func() { ApplyCeremony(survivors, n, Ceremony{Pairs: []int{0, 1, 2, 5}, Matches: 1}) })
	assert.Panics(t, func() { ApplyCouple(survivors, 5, 0, 0, true) }) // Mismatched n
	assert.Equal(t, uint64(36), survivors.Count())
}
