package guest

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/seqhost/seqhost/internal/boundary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for guest:
// - NewModule rejects empty wasm bytes
// - NewModule rejects a nil bridge
// - NewModule rejects bytes that are not a wasm module

// Test: NewModule rejects empty wasm bytes
func TestNewModule_EmptyBytes(t *testing.T) {
	t.Parallel()

	_, err := NewModule(context.Background(), nil, boundary.NewBridge(zerolog.Nop()))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "wasm bytes cannot be empty")
}

// Test: NewModule rejects a nil bridge
func TestNewModule_NilBridge(t *testing.T) {
	t.Parallel()

	_, err := NewModule(context.Background(), []byte{0x00}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bridge cannot be nil")
}

// Test: NewModule rejects bytes that are not a wasm module
func TestNewModule_InvalidModule(t *testing.T) {
	t.Parallel()

	bridge := boundary.NewBridge(zerolog.Nop())
	_, err := NewModule(context.Background(), []byte("definitely not wasm"), bridge)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile module")
}
