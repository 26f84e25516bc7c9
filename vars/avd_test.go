package vars

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiterals_MatchingReaders(t *testing.T) {
	c := NewContext(Config{})

	assert.Equal(t, uint64(42), IntLiteral(42).Int())
	assert.Equal(t, 42.0, IntLiteral(42).Double())
	assert.True(t, BoolLiteral(true).Bool())

	s, err := c.StringLiteral("abc")
	require.NoError(t, err)
	got, ok := s.Str()
	assert.True(t, ok)
	assert.Equal(t, "abc", got)
}

func TestIntegerTruthiness(t *testing.T) {
	assert.True(t, IntLiteral(7).Bool())
	assert.False(t, IntLiteral(0).Bool())

	c := NewContext(Config{})
	require.NoError(t, c.AssignInt("$threads", 4))
	avd, err := c.Reference("$threads")
	require.NoError(t, err)
	assert.True(t, avd.Bool())

	require.NoError(t, c.AssignInt("$threads", 0))
	assert.False(t, avd.Bool())
}

func TestAbsentAVD_ReadsAsZeroWithoutLogging(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	var a *AVD
	assert.Equal(t, uint64(0), a.Int())
	assert.Equal(t, 0.0, a.Double())
	assert.False(t, a.Bool())
	_, ok := a.Str()
	assert.False(t, ok)

	// "No attribute was ever set" is a normal default path, not an error.
	assert.Empty(t, hook.Entries)
}

func TestTypeMismatch_ZeroValueAndErrorLog(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	c := NewContext(Config{})
	require.NoError(t, c.AssignString("$dir", "/tmp/work"))
	avd, err := c.Reference("$dir")
	require.NoError(t, err)

	assert.Equal(t, uint64(0), avd.Int())
	assert.Equal(t, 0.0, avd.Double())
	assert.False(t, avd.Bool())

	require.Len(t, hook.Entries, 3)
	for _, e := range hook.Entries {
		assert.Equal(t, logrus.ErrorLevel, e.Level)
	}

	hook.Reset()
	_, ok := BoolLiteral(true).Str()
	assert.False(t, ok)
	require.Len(t, hook.Entries, 1)
}

func TestFacetRoundTrip_EachType(t *testing.T) {
	c := NewContext(Config{})

	require.NoError(t, c.AssignBool("$sync", true))
	b, err := c.Reference("$sync")
	require.NoError(t, err)
	assert.True(t, b.Bool())

	require.NoError(t, c.AssignInt("$nfiles", 100000))
	i, err := c.Reference("$nfiles")
	require.NoError(t, err)
	assert.Equal(t, uint64(100000), i.Int())
	assert.Equal(t, 100000.0, i.Double())

	require.NoError(t, c.AssignString("$path", "/mnt/fs"))
	s, err := c.Reference("$path")
	require.NoError(t, err)
	got, ok := s.Str()
	assert.True(t, ok)
	assert.Equal(t, "/mnt/fs", got)

	_, err = c.AssignLocalDouble("$load", 1.5)
	require.NoError(t, err)
	d, err := c.Reference("$load")
	require.NoError(t, err)
	assert.Equal(t, 1.5, d.Double())
}

func TestReference_LiveAliasing(t *testing.T) {
	c := NewContext(Config{})
	require.NoError(t, c.AssignInt("$iosize", 4096))

	avd, err := c.Reference("$iosize")
	require.NoError(t, err)
	assert.Equal(t, uint64(4096), avd.Int())

	// Reads observe the variable's current value, not a snapshot.
	require.NoError(t, c.AssignInt("$iosize", 8192))
	assert.Equal(t, uint64(8192), avd.Int())
}

func TestReference_UnsetVariableReadsAsZero(t *testing.T) {
	c := NewContext(Config{})
	avd, err := c.Reference("$later")
	require.NoError(t, err)

	assert.Equal(t, uint64(0), avd.Int())
	assert.Equal(t, 0.0, avd.Double())

	// A set statement after model load is observed through the reference.
	require.NoError(t, c.AssignInt("$later", 77))
	assert.Equal(t, uint64(77), avd.Int())
}
