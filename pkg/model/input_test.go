package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioDirectory = "../../scenarios/"

func writeScenario(t *testing.T, name, content string) string {
	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0666))
	return file
}

func TestScenarioFromJson(t *testing.T) {
	// Act
	scenario, err := ScenarioFromFile(scenarioDirectory + "small.json")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 7, scenario.Size())
	assert.Equal(t, []string{"Ka", "Ke", "Ki", "Ko", "Ku", "Ky"}, scenario.Elements)
	require.Len(t, scenario.Steps, 4)
	assert.Equal(t, Event{Kind: CoupleEvent, Element: 3, Position: 3, Present: true}, scenario.Steps[0].Events[0])
	assert.Equal(t, Event{Kind: CeremonyEvent, Ceremony: Ceremony{Pairs: []int{1, 5, 2, 3, Alone, 0, 4}, Matches: 2}}, scenario.Steps[1].Events[0])
	assert.Equal(t, Event{Kind: DoublonEvent, Position: 6}, scenario.Steps[2].Events[1])
}

func TestScenarioFromYaml(t *testing.T) {
	for _, name := range []string{"season2.yaml", "season3.yaml"} {
		// Act
		scenario, err := ScenarioFromFile(scenarioDirectory + name)

		// Assert
		require.NoError(t, err, name)
		assert.Equal(t, 11, scenario.Size())
		assert.Len(t, scenario.Elements, 10)
		assert.NotEmpty(t, scenario.Steps)
	}
}

func TestScenarioDefaultsStepTitle(t *testing.T) {
	// Arrange
	file := writeScenario(t, "scenario.yml", `
positions: [A, B, C, D]
elements: [w, x, y]
steps:
  - events:
      - {kind: doublon, position: 3}
`)

	// Act
	scenario, err := ScenarioFromFile(file)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Step 1", scenario.Steps[0].Title)
}

func TestScenarioValidation(t *testing.T) {
	scenarios := map[string]string{
		"too few positions":     `{"positions": ["A"], "elements": []}`,
		"wrong element count":   `{"positions": ["A", "B", "C"], "elements": ["x"]}`,
		"duplicate names":       `{"positions": ["A", "A", "C"], "elements": ["x", "y"]}`,
		"wrong arrangements":    `{"positions": ["A", "B", "C"], "elements": ["x", "y"], "arrangements": 12}`,
		"unknown kind":          `{"positions": ["A", "B", "C"], "elements": ["x", "y"], "steps": [{"events": [{"kind": "guess"}]}]}`,
		"element out of range":  `{"positions": ["A", "B", "C"], "elements": ["x", "y"], "steps": [{"events": [{"kind": "couple", "element": 2, "position": 0, "present": true}]}]}`,
		"position out of range": `{"positions": ["A", "B", "C"], "elements": ["x", "y"], "steps": [{"events": [{"kind": "doublon", "position": 3}]}]}`,
		"missing present":       `{"positions": ["A", "B", "C"], "elements": ["x", "y"], "steps": [{"events": [{"kind": "couple", "element": 0, "position": 0}]}]}`,
		"short ceremony":        `{"positions": ["A", "B", "C"], "elements": ["x", "y"], "steps": [{"events": [{"kind": "ceremony", "pairs": [0, 1], "matches": 1}]}]}`,
		"too many matches":      `{"positions": ["A", "B", "C"], "elements": ["x", "y"], "steps": [{"events": [{"kind": "ceremony", "pairs": [0, 1, -1], "matches": 4}]}]}`,
		"ceremony bad element":  `{"positions": ["A", "B", "C"], "elements": ["x", "y"], "steps": [{"events": [{"kind": "ceremony", "pairs": [0, 1, -2], "matches": 1}]}]}`,
		"not an object":         `[1, 2, 3]`,
		"fractional element":    `{"positions": ["A", "B", "C"], "elements": ["x", "y"], "steps": [{"events": [{"kind": "couple", "element": 1.7, "position": 0, "present": true}]}]}`,
		"fractional position":   `{"positions": ["A", "B", "C"], "elements": ["x", "y"], "steps": [{"events": [{"kind": "doublon", "position": 2.9}]}]}`,
		"fractional pair":       `{"positions": ["A", "B", "C"], "elements": ["x", "y"], "steps": [{"events": [{"kind": "ceremony", "pairs": [0, 1.5, -1], "matches": 1}]}]}`,
		"fractional matches":    `{"positions": ["A", "B", "C"], "elements": ["x", "y"], "steps": [{"events": [{"kind": "ceremony", "pairs": [0, 1, -1], "matches": 0.5}]}]}`,
	}

	for name, content := range scenarios {
		// Arrange
		file := writeScenario(t, "scenario.json", content)

		// Act
		_, err := ScenarioFromFile(file)

		// Assert
		assert.Error(t, err, name)
	}
}

func TestScenarioAcceptsWholeFloats(t *testing.T) {
	// Arrange
	file := writeScenario(t, "scenario.json", `{"positions": ["A", "B", "C"], "elements": ["x", "y"], "arrangements": 6.0,
		"steps": [{"events": [{"kind": "couple", "element": 1.0, "position": 2, "present": true}]}]}`)

	// Act
	scenario, err := ScenarioFromFile(file)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Event{Kind: CoupleEvent, Element: 1, Position: 2, Present: true}, scenario.Steps[0].Events[0])
}

func TestScenarioMissingFile(t *testing.T) {
	_, err := ScenarioFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
