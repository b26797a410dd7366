package model

import "github.com/limaJavier/matchodds/pkg/combinatorics"

// Engine narrows the arrangements of n-1 elements over n positions as constraints are observed
type Engine interface {
	// Returns the number of positions (n)
	Positions() int
	// Returns the number of arrangements before any constraint
	Total() uint64
	// Returns the number of arrangements still consistent with every applied constraint
	Remaining() uint64

	// Element is (present) or is not (!present) paired with position. Returns the new survivor count
	Couple(element, position int, present bool) uint64
	// A full assignment was scored with a number of right pairs. Returns the new survivor count
	Ceremony(ceremony Ceremony) uint64
	// Position is known to hold the doubled element. Returns the new survivor count
	KnownDoublon(position int) uint64
	// Applies several constraints in a single walk. Returns the new survivor count
	Apply(constraints ...Constraint) uint64

	// Builds the probability report over the current survivors
	Report() Report
	// Lists up to limit surviving arrangements (all of them when limit <= 0)
	Survivors(limit int) []Survivor
}

func NewEngine(n int) Engine {
	return &engineImplementation{
		n:         n,
		survivors: NewSurvivorSet(combinatorics.ArrangementCount(n)),
	}
}

type engineImplementation struct {
	n         int
	survivors *SurvivorSet
}

func (engine *engineImplementation) Positions() int {
	return engine.n
}

func (engine *engineImplementation) Total() uint64 {
	return engine.survivors.Len()
}

func (engine *engineImplementation) Remaining() uint64 {
	return engine.survivors.Count()
}

func (engine *engineImplementation) Couple(element, position int, present bool) uint64 {
	return ApplyCouple(engine.survivors, engine.n, element, position, present)
}

func (engine *engineImplementation) Ceremony(ceremony Ceremony) uint64 {
	return ApplyCeremony(engine.survivors, engine.n, ceremony)
}

func (engine *engineImplementation) KnownDoublon(position int) uint64 {
	return ApplyKnownDoublon(engine.survivors, engine.n, position)
}

func (engine *engineImplementation) Apply(constraints ...Constraint) uint64 {
	return Apply(engine.survivors, engine.n, constraints...)
}

func (engine *engineImplementation) Report() Report {
	return BuildReport(engine.survivors, engine.n)
}

func (engine *engineImplementation) Survivors(limit int) []Survivor {
	return Survivors(engine.survivors, engine.n, limit)
}
