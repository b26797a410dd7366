package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/limaJavier/matchodds/pkg/combinatorics"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type RawEvent struct {
	Kind     string
	Element  *int
	Position *int
	Present  *bool
	Pairs    []int
	Matches  *int
}

type RawStep struct {
	Title  string
	Events []RawEvent
}

type RawScenario struct {
	Positions    []string
	Elements     []string
	Arrangements uint64 // Optional; checked against the computed count when set
	Steps        []RawStep
}

// Reads a scenario from a JSON file, or a YAML file when the extension is .yaml or .yml
func ScenarioFromFile(file string) (Scenario, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Scenario{}, fmt.Errorf("cannot read scenario file: %w", err)
	}

	var inputMap map[string]any
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &inputMap)
	default:
		err = json.Unmarshal(bytes, &inputMap)
	}
	if err != nil {
		return Scenario{}, fmt.Errorf("cannot parse scenario file %v: %w", file, err)
	}

	var rawScenario RawScenario
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: rejectFractionalIds,
		Result:     &rawScenario,
	})
	if err != nil {
		return Scenario{}, fmt.Errorf("cannot build scenario decoder: %w", err)
	}
	if err := decoder.Decode(inputMap); err != nil {
		return Scenario{}, fmt.Errorf("cannot decode scenario file %v: %w", file, err)
	}
	return ProcessRawScenario(rawScenario)
}

// JSON numbers arrive as float64 and mapstructure would truncate them into integer fields
func rejectFractionalIds(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float64 {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if value := data.(float64); value != math.Trunc(value) {
			return nil, fmt.Errorf("%v is not an integer", value)
		}
	}
	return data, nil
}

// Validates every id once so the engine never sees an out-of-range value
func ProcessRawScenario(rawScenario RawScenario) (Scenario, error) {
	n := len(rawScenario.Positions)

	//** Validate names
	if n < 2 || n > combinatorics.MaxPositions {
		return Scenario{}, fmt.Errorf("number of positions must be between 2 and %v: %v", combinatorics.MaxPositions, n)
	} else if len(rawScenario.Elements) != n-1 {
		return Scenario{}, fmt.Errorf("expected %v elements for %v positions: %v", n-1, n, len(rawScenario.Elements))
	} else if duplicates := lo.FindDuplicates(rawScenario.Positions); len(duplicates) > 0 {
		return Scenario{}, fmt.Errorf("position names must be unique: %v", duplicates)
	} else if duplicates := lo.FindDuplicates(rawScenario.Elements); len(duplicates) > 0 {
		return Scenario{}, fmt.Errorf("element names must be unique: %v", duplicates)
	}

	//** Validate arrangements count
	if rawScenario.Arrangements != 0 && rawScenario.Arrangements != combinatorics.ArrangementCount(n) {
		return Scenario{}, fmt.Errorf("declared arrangements %v do not match the %v arrangements of %v positions", rawScenario.Arrangements, combinatorics.ArrangementCount(n), n)
	}

	scenario := Scenario{
		Names: Names{
			Positions: rawScenario.Positions,
			Elements:  rawScenario.Elements,
		},
		Steps: make([]Step, 0, len(rawScenario.Steps)),
	}

	//** Validate events
	for i, rawStep := range rawScenario.Steps {
		title := rawStep.Title
		if title == "" {
			title = fmt.Sprintf("Step %v", i+1)
		}

		step := Step{Title: title, Events: make([]Event, 0, len(rawStep.Events))}
		for j, rawEvent := range rawStep.Events {
			event, err := processRawEvent(n, rawEvent)
			if err != nil {
				return Scenario{}, fmt.Errorf("step \"%v\", event %v: %w", title, j+1, err)
			}
			step.Events = append(step.Events, event)
		}
		scenario.Steps = append(scenario.Steps, step)
	}

	return scenario, nil
}

func processRawEvent(n int, rawEvent RawEvent) (Event, error) {
	switch strings.ToLower(rawEvent.Kind) {
	case "couple":
		if rawEvent.Element == nil || rawEvent.Position == nil || rawEvent.Present == nil {
			return Event{}, fmt.Errorf("couple event requires element, position and present")
		}
		if err := checkElement(n, *rawEvent.Element); err != nil {
			return Event{}, err
		}
		if err := checkPosition(n, *rawEvent.Position); err != nil {
			return Event{}, err
		}
		return Event{Kind: CoupleEvent, Element: *rawEvent.Element, Position: *rawEvent.Position, Present: *rawEvent.Present}, nil

	case "ceremony":
		if rawEvent.Pairs == nil || rawEvent.Matches == nil {
			return Event{}, fmt.Errorf("ceremony event requires pairs and matches")
		} else if len(rawEvent.Pairs) != n {
			return Event{}, fmt.Errorf("ceremony must list %v pairs: %v", n, rawEvent.Pairs)
		} else if *rawEvent.Matches < 0 || *rawEvent.Matches > n {
			return Event{}, fmt.Errorf("ceremony matches must be between 0 and %v: %v", n, *rawEvent.Matches)
		}
		for _, element := range rawEvent.Pairs {
			if element == Alone {
				continue
			}
			if err := checkElement(n, element); err != nil {
				return Event{}, err
			}
		}
		return Event{Kind: CeremonyEvent, Ceremony: Ceremony{Pairs: rawEvent.Pairs, Matches: *rawEvent.Matches}}, nil

	case "doublon":
		if rawEvent.Position == nil {
			return Event{}, fmt.Errorf("doublon event requires position")
		}
		if err := checkPosition(n, *rawEvent.Position); err != nil {
			return Event{}, err
		}
		return Event{Kind: DoublonEvent, Position: *rawEvent.Position}, nil
	}

	return Event{}, fmt.Errorf("unknown event kind \"%v\"", rawEvent.Kind)
}

func checkElement(n, element int) error {
	if element < 0 || element > n-2 {
		return fmt.Errorf("element %v out of range [0, %v]", element, n-2)
	}
	return nil
}

func checkPosition(n, position int) error {
	if position < 0 || position > n-1 {
		return fmt.Errorf("position %v out of range [0, %v]", position, n-1)
	}
	return nil
}
