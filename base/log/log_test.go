package log

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithFieldDoesNotShareFields(t *testing.T) {
	base := Log().WithField("a", 1)
	x := base.WithField("b", 2)
	y := base.WithField("c", 3)

	require.Equal(t, []interface{}{"a", 1}, base.fields)
	require.Equal(t, []interface{}{"a", 1, "b", 2}, x.fields)
	require.Equal(t, []interface{}{"a", 1, "c", 3}, y.fields)
}

func TestSetLevel(t *testing.T) {
	defer func() { _ = SetLevel("info") }()

	require.NoError(t, SetLevel("warn"))
	require.False(t, zapSugaredLogger.Desugar().Core().Enabled(-1))
	require.Error(t, SetLevel("loud"))
}
