package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateCaptureAliasFirstWins(t *testing.T) {
	var st State
	assert.False(t, st.HasAlias())

	st.captureAlias("u")
	assert.True(t, st.HasAlias())
	assert.Equal(t, "u", st.Alias())

	st.captureAlias("o")
	assert.Equal(t, "u", st.Alias(), "first captured alias must stick")
}

func TestStateProjectionRoundTrip(t *testing.T) {
	var st State
	_, ok := st.Projection()
	assert.False(t, ok)

	buf := Buffer{Token{text: "u", trailing: Space}}
	st.setProjection(buf)

	got, ok := st.Projection()
	assert.True(t, ok)
	assert.Equal(t, buf, got)
}
