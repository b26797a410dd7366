package model

import (
	"fmt"
	"log"
	"strings"
)

type EventKind int

const (
	CoupleEvent EventKind = iota
	CeremonyEvent
	DoublonEvent
)

// Event is one observed constraint
type Event struct {
	Kind     EventKind
	Element  int
	Position int
	Present  bool
	Ceremony Ceremony
}

// Names labels element and position ids
type Names struct {
	Positions []string
	Elements  []string
}

type Step struct {
	Title  string
	Events []Event
}

// Scenario is a scripted sequence of observations over a fixed cast
type Scenario struct {
	Names
	Steps []Step
}

// Result is handed to the observer after the initial state and after every applied event
type Result struct {
	Step        string
	Event       *Event // nil for the initial state
	Description string
	Remaining   uint64
	Report      *Report // nil unless requested for this result
}

type RunOptions struct {
	// Build a report after every event instead of once per step
	ReportEachEvent bool
	// Skip every report
	SkipReports bool
}

// Returns the number of positions (n)
func (scenario Scenario) Size() int {
	return len(scenario.Names.Positions)
}

// Returns an engine sized for the scenario
func (scenario Scenario) NewEngine() Engine {
	return NewEngine(scenario.Size())
}

// Run applies every event in order and reports progress to observe. Returns the final survivor count
func (scenario Scenario) Run(engine Engine, options RunOptions, observe func(Result)) uint64 {
	if engine.Positions() != scenario.Size() {
		log.Panicf("engine built for %v positions cannot run a scenario of %v positions", engine.Positions(), scenario.Size())
	}

	report := func() *Report {
		if options.SkipReports {
			return nil
		}
		built := engine.Report()
		return &built
	}

	observe(Result{Step: "Init", Description: "Initial state", Remaining: engine.Remaining(), Report: report()})

	for _, step := range scenario.Steps {
		if len(step.Events) == 0 {
			observe(Result{Step: step.Title, Description: "No event", Remaining: engine.Remaining(), Report: report()})
			continue
		}
		for i := range step.Events {
			event := step.Events[i]
			remaining := event.Apply(engine)

			result := Result{
				Step:        step.Title,
				Event:       &event,
				Description: event.Describe(scenario.Names),
				Remaining:   remaining,
			}
			if options.ReportEachEvent || i == len(step.Events)-1 {
				result.Report = report()
			}
			observe(result)
		}
	}

	return engine.Remaining()
}

// Applies the event to the engine and returns the new survivor count
func (event Event) Apply(engine Engine) uint64 {
	switch event.Kind {
	case CoupleEvent:
		return engine.Couple(event.Element, event.Position, event.Present)
	case CeremonyEvent:
		return engine.Ceremony(event.Ceremony)
	case DoublonEvent:
		return engine.KnownDoublon(event.Position)
	}
	log.Panicf("unknown event kind: %v", event.Kind)
	return 0
}

// Returns a human readable statement of the event
func (event Event) Describe(names Names) string {
	switch event.Kind {
	case CoupleEvent:
		verb := "is not"
		if event.Present {
			verb = "is"
		}
		return fmt.Sprintf("%v %v in couple with %v", names.element(event.Element), verb, names.position(event.Position))

	case CeremonyEvent:
		var builder strings.Builder
		builder.WriteString("A new ceremony:\n")
		for position, element := range event.Ceremony.Pairs {
			if element == Alone {
				fmt.Fprintf(&builder, "(pos=%d) %v stays alone\n", position, names.position(position))
			} else {
				fmt.Fprintf(&builder, "(pos=%d,elt=%d) %v with %v\n", position, element, names.position(position), names.element(element))
			}
		}
		fmt.Fprintf(&builder, "We have %d matches", event.Ceremony.Matches)
		return builder.String()

	case DoublonEvent:
		return fmt.Sprintf("We know who is the doublon: %v", names.position(event.Position))
	}
	return fmt.Sprintf("unknown event kind %v", event.Kind)
}

func (names Names) element(element int) string {
	if element >= 0 && element < len(names.Elements) {
		return names.Elements[element]
	}
	return fmt.Sprintf("elt=%d", element)
}

func (names Names) position(position int) string {
	if position >= 0 && position < len(names.Positions) {
		return names.Positions[position]
	}
	return fmt.Sprintf("pos=%d", position)
}
