package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l, err := New("info")
	require.NoError(t, err)
	require.NotNil(t, l)

	_, err = New("loud")
	require.Error(t, err)
}
