package id

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDIsIncreasing(t *testing.T) {
	prev := NewULID()
	for i := 0; i < 1000; i++ {
		cur := NewULID()
		require.Len(t, cur, 26)
		assert.Greater(t, cur, prev)
		prev = cur
	}
}

func TestGenerateEventID(t *testing.T) {
	assert.True(t, strings.HasPrefix(GenerateEventID("evt"), "evt_"))
}

func TestNewRowID(t *testing.T) {
	_, err := uuid.Parse(NewRowID())
	assert.NoError(t, err)
}
