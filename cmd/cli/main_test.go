package main

import (
	"bytes"
	"testing"

	"github.com/limaJavier/matchodds/pkg/model"
	"github.com/limaJavier/matchodds/pkg/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResult(t *testing.T) {
	// Arrange
	names := model.Names{Positions: []string{"Ah", "Do", "Ve"}, Elements: []string{"Ka", "Ke"}}
	engine := model.NewEngine(3)
	event := model.Event{Kind: model.DoublonEvent, Position: 2}
	remaining := event.Apply(engine)
	report := engine.Report()
	result := model.Result{Step: "Week 1", Event: &event, Description: event.Describe(names), Remaining: remaining, Report: &report}
	var buffer bytes.Buffer

	// Act
	err := writeResult(&buffer, output.Text, names, result, true)

	// Assert
	require.NoError(t, err)
	assert.Contains(t, buffer.String(), "[Week 1] We know who is the doublon: Ve\n")
	assert.Contains(t, buffer.String(), "Number of possible arrangements : 4 / 6")
	assert.Contains(t, buffer.String(), "Suggested ceremony")
}

func TestWriteResultWithoutReport(t *testing.T) {
	var buffer bytes.Buffer

	err := writeResult(&buffer, output.CSV, model.Names{}, model.Result{Step: "Week 1"}, true)

	require.NoError(t, err)
	assert.Empty(t, buffer.String())
}
