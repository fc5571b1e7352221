package common_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xwitty/self/internal/common"
)

func TestStringToBigInt(t *testing.T) {
	got, err := common.StringToBigInt("12345")
	require.NoError(t, err)
	assert.Equal(t, "12345", got.String())

	got, err = common.StringToBigInt("0xff")
	require.NoError(t, err)
	assert.Equal(t, "255", got.String())

	_, err = common.StringToBigInt("not-a-number")
	require.Error(t, err)
}

func TestArrayStringToBigInt(t *testing.T) {
	got, err := common.ArrayStringToBigInt([]string{"1", "0x2", "3"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2", got[1].String())

	_, err = common.ArrayStringToBigInt([]string{"1", "bad", "3"})
	require.Error(t, err)
}
