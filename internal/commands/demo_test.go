package commands

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the demo command:
// - BuiltinBridge registers the stock generator exports
// - Demo with an unknown generator fails
// - Demo with NoPrompt falls back to the configured default generator
// - The rows puller exhausts at 40 values under a generous limit
// - The naturals puller stops at the limit without exhausting

func testController() *Controller {
	return &Controller{
		Flags:  &Flags{},
		Logger: zerolog.Nop(),
	}
}

// Test: BuiltinBridge registers the stock generator exports
func TestBuiltinBridge(t *testing.T) {
	bridge, err := BuiltinBridge(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"get_rows", "get_naturals"}, bridge.Generators())
}

// Test: Demo with an unknown generator fails
func TestDemo_UnknownGenerator(t *testing.T) {
	ctrl := testController()

	err := ctrl.Demo(context.Background(), DemoOptions{Generator: "get_nonsense", NoPrompt: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown generator")
}

// Test: Demo with NoPrompt uses the configured default generator
func TestDemo_DefaultGenerator(t *testing.T) {
	ctrl := testController()

	err := ctrl.Demo(context.Background(), DemoOptions{Limit: 5, NoPrompt: true})
	assert.NoError(t, err)
}

// Test: the rows puller exhausts at 40 values under a generous limit
func TestDemoPullers_RowsExhaust(t *testing.T) {
	for _, puller := range demoPullers() {
		if puller.name != "get_rows" {
			continue
		}

		var lines []string
		count, exhausted := puller.pull(1000, func(line string) { lines = append(lines, line) })

		assert.Equal(t, 40, count)
		assert.True(t, exhausted)
		assert.Len(t, lines, 40)
		assert.Equal(t, "[]", lines[0])
		assert.Equal(t, "[0 1 2]", lines[3])
		return
	}
	t.Fatal("get_rows puller not registered")
}

// Test: the naturals puller stops at the limit without exhausting
func TestDemoPullers_NaturalsLimit(t *testing.T) {
	for _, puller := range demoPullers() {
		if puller.name != "get_naturals" {
			continue
		}

		var lines []string
		count, exhausted := puller.pull(5, func(line string) { lines = append(lines, line) })

		assert.Equal(t, 5, count)
		assert.False(t, exhausted)
		assert.Equal(t, []string{"0", "1", "2", "3", "4"}, lines)
		return
	}
	t.Fatal("get_naturals puller not registered")
}
