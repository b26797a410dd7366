package model

import (
	"cmp"
	"errors"
	"slices"

	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/onsi/gomega/matchers/support/goraph/edge"
	"github.com/samber/lo"
)

var ErrNoSurvivors = errors.New("no arrangement is consistent with the observed constraints")

// Suggestion is a proposed ceremony: every element paired with a distinct position, one position left Alone
type Suggestion struct {
	Pairs          []int   // Pairs[position] is an element id or Alone
	MinProbability float64 // Smallest probability among the proposed pairs
}

type cell struct {
	element, position int
	count             uint64
}

// Suggest proposes a ceremony maximizing the smallest probability of its pairs (bottleneck assignment).
// Cells are admitted by decreasing count until a perfect matching of the elements exists; the admitted prefix is found by binary search
func Suggest(report Report) (Suggestion, error) {
	if report.Survivors == 0 {
		return Suggestion{}, ErrNoSurvivors
	}

	//** Gather possible cells, most likely first
	cells := make([]cell, 0, report.Elements*report.Positions)
	for element, row := range report.Counts {
		for position, count := range row {
			if count > 0 {
				cells = append(cells, cell{element, position, count})
			}
		}
	}
	slices.SortStableFunc(cells, func(a, b cell) int { return cmp.Compare(b.count, a.count) })

	//** Find the shortest prefix admitting a perfect matching
	// Every survivor places each element somewhere on distinct positions, hence the whole list always admits one
	low, high := report.Elements, len(cells)
	best, err := largestMatching(report, cells[:high])
	if err != nil {
		return Suggestion{}, err
	}
	for low < high {
		middle := (low + high) / 2
		matching, err := largestMatching(report, cells[:middle])
		if err != nil {
			return Suggestion{}, err
		}
		if len(matching) == report.Elements {
			high, best = middle, matching
		} else {
			low = middle + 1
		}
	}

	//** Build the suggestion
	suggestion := Suggestion{
		Pairs:          lo.Times(report.Positions, func(_ int) int { return Alone }),
		MinProbability: 1,
	}
	for _, pair := range best {
		element, position := pair[0], pair[1]
		suggestion.Pairs[position] = element
		probability, _ := report.Probability(element, position)
		suggestion.MinProbability = min(suggestion.MinProbability, probability)
	}

	return suggestion, nil
}

// Returns a maximum matching (element, position) over the given cells
func largestMatching(report Report, cells []cell) ([][2]int, error) {
	admitted := make(map[[2]int]bool, len(cells))
	for _, c := range cells {
		admitted[[2]int{c.element, c.position}] = true
	}

	neighbors := func(elementAny any, positionAny any) (bool, error) {
		return admitted[[2]int{elementAny.(int), positionAny.(int)}], nil
	}

	elementsAny := lo.Times(report.Elements, func(element int) any { return element })
	positionsAny := lo.Times(report.Positions, func(position int) any { return position })

	graph, err := bipartitegraph.NewBipartiteGraph(elementsAny, positionsAny, neighbors)
	if err != nil {
		return nil, err
	}

	return lo.Map(graph.LargestMatching(), func(matched edge.Edge, _ int) [2]int {
		left, right := matched.Node1, matched.Node2
		if left >= report.Elements { // Right nodes are numbered after the left ones
			left, right = right, left
		}
		return [2]int{left, right - report.Elements}
	}), nil
}
