package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger, err := New("info", false)
	require.NoError(t, err)
	assert.NotNil(t, logger.Logger)

	logger, err = New("debug", true)
	require.NoError(t, err)
	assert.NotNil(t, logger.Logger)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New("chatty", false)
	assert.Error(t, err)
}

func TestWithTool(t *testing.T) {
	logger := NewNop()

	scoped := logger.WithTool("word.create")
	require.NotNil(t, scoped)
	assert.NotSame(t, logger, scoped)
	scoped.Info("scoped entry")
}
