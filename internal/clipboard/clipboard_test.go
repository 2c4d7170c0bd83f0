package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_WriteAll(t *testing.T) {
	m := &Memory{}
	require.NoError(t, m.WriteAll("a@b.com"))
	require.NoError(t, m.WriteAll("c@d.com"))

	assert.Equal(t, "c@d.com", m.Text())
	assert.Equal(t, 2, m.Writes())
}

func TestDetect_MatchesAvailability(t *testing.T) {
	cb := Detect()
	if Available() {
		assert.IsType(t, System{}, cb)
	} else {
		assert.IsType(t, &Memory{}, cb)
	}
}
