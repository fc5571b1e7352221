package circuits_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xwitty/self/internal/circuits"
)

func TestHashEndpointWithScope(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		first, err := circuits.HashEndpointWithScope("https://api.example.com", "my-app")
		require.NoError(t, err)
		second, err := circuits.HashEndpointWithScope("https://api.example.com", "my-app")
		require.NoError(t, err)
		assert.Zero(t, first.Cmp(second))
	})

	t.Run("scope changes the hash", func(t *testing.T) {
		first, err := circuits.HashEndpointWithScope("https://api.example.com", "my-app")
		require.NoError(t, err)
		second, err := circuits.HashEndpointWithScope("https://api.example.com", "other-app")
		require.NoError(t, err)
		assert.NotZero(t, first.Cmp(second))
	})

	t.Run("endpoint changes the hash", func(t *testing.T) {
		first, err := circuits.HashEndpointWithScope("https://api.example.com", "my-app")
		require.NoError(t, err)
		second, err := circuits.HashEndpointWithScope("https://api.example.org", "my-app")
		require.NoError(t, err)
		assert.NotZero(t, first.Cmp(second))
	})

	t.Run("empty strings are hashable", func(t *testing.T) {
		got, err := circuits.HashEndpointWithScope("", "")
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("chunk boundary strings are hashable", func(t *testing.T) {
		got, err := circuits.HashEndpointWithScope(strings.Repeat("a", 31), strings.Repeat("b", 32))
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("over-long input is rejected", func(t *testing.T) {
		_, err := circuits.HashEndpointWithScope(strings.Repeat("a", 31*16+1), "my-app")
		require.ErrorIs(t, err, circuits.ErrScopeTooLong)
	})
}
