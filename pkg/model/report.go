package model

import (
	"github.com/limaJavier/matchodds/pkg/combinatorics"
	"github.com/samber/lo"
)

// Report holds, for every (element, position) cell, the number of surviving arrangements placing element at position
type Report struct {
	Positions int
	Elements  int
	Survivors uint64
	Total     uint64
	Counts    [][]uint64 // Counts[element][position]
}

// Walks every arrangement once and counts element occurrences per position over the survivors
func BuildReport(survivors *SurvivorSet, n int) Report {
	validateSurvivors(survivors, n)

	report := Report{
		Positions: n,
		Elements:  n - 1,
		Total:     survivors.Len(),
		Counts:    lo.Times(n-1, func(_ int) []uint64 { return make([]uint64, n) }),
	}

	if survivors.Count() == 0 {
		return report
	}

	for index, arrangement := range combinatorics.Arrangements(n) {
		if !survivors.Alive(index) {
			continue
		}
		report.Survivors++
		for position, element := range arrangement {
			report.Counts[element][position]++
		}
	}

	return report
}

// Returns count/survivors for the cell; ok is false when there are no survivors (the probability is undefined)
func (report Report) Probability(element, position int) (probability float64, ok bool) {
	validateElement(report.Positions, element)
	validatePosition(report.Positions, position)
	if report.Survivors == 0 {
		return 0, false
	}
	return float64(report.Counts[element][position]) / float64(report.Survivors), true
}

// Checks whether every survivor places element at position
func (report Report) Certain(element, position int) bool {
	validateElement(report.Positions, element)
	validatePosition(report.Positions, position)
	return report.Survivors > 0 && report.Counts[element][position] == report.Survivors
}

// Checks whether no survivor places element at position
func (report Report) Impossible(element, position int) bool {
	validateElement(report.Positions, element)
	validatePosition(report.Positions, position)
	return report.Counts[element][position] == 0
}
