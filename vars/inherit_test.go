package vars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropagateDefaults_UnsetLocalInheritsEverySetFacet(t *testing.T) {
	c := NewContext(Config{})

	proto, err := c.AssignLocalInt("$meandirwidth", 20)
	require.NoError(t, err)
	proto.SetString("wide")

	fresh, err := c.AllocLocal("$meandirwidth")
	require.NoError(t, err)

	c.PropagateDefaults(fresh, []*Variable{proto})
	assert.Equal(t, uint64(20), fresh.Int())
	assert.Equal(t, "wide", fresh.Str())
	assert.True(t, fresh.HasInt())
	assert.True(t, fresh.HasString())
}

func TestPropagateDefaults_ExplicitConfigurationWins(t *testing.T) {
	c := NewContext(Config{})

	proto, err := c.AssignLocalInt("$nfiles", 1000)
	require.NoError(t, err)

	configured, err := c.AssignLocalInt("$nfiles", 50)
	require.NoError(t, err)

	c.PropagateDefaults(configured, []*Variable{proto})
	assert.Equal(t, uint64(50), configured.Int())
	assert.False(t, configured.HasString())
}

func TestPropagateDefaults_NoMatchingPrototypeEntry(t *testing.T) {
	c := NewContext(Config{})

	proto, err := c.AssignLocalInt("$other", 3)
	require.NoError(t, err)

	fresh, err := c.AllocLocal("$nfiles")
	require.NoError(t, err)

	c.PropagateDefaults(fresh, []*Variable{proto})
	assert.False(t, fresh.HasInt())
	assert.False(t, fresh.HasBool())
	assert.False(t, fresh.HasDouble())
	assert.False(t, fresh.HasString())
}

func TestPropagateDefaults_NewestPrototypeEntryWins(t *testing.T) {
	c := NewContext(Config{})

	older, err := c.AssignLocalInt("$depth", 1)
	require.NoError(t, err)
	newer, err := c.AssignLocalInt("$depth", 2)
	require.NoError(t, err)

	fresh, err := c.AllocLocal("$depth")
	require.NoError(t, err)

	c.PropagateDefaults(fresh, []*Variable{older, newer})
	assert.Equal(t, uint64(2), fresh.Int())
}
