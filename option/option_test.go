package option_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koldar/phdtester-go/option"
)

func TestNew_EmptyName(t *testing.T) {
	_, err := option.New("", "desc", option.Int, option.Settings)
	require.ErrorIs(t, err, option.ErrEmptyName)
}

func TestDomain(t *testing.T) {
	o, err := option.New("algorithm", "which algorithm", option.Str, option.UnderTest)
	require.NoError(t, err)
	require.False(t, o.IsDiscrete())
	require.True(t, o.InDomain("anything"))

	o.WithDomain("BUBBLE", "MERGE")
	require.True(t, o.IsDiscrete())
	require.True(t, o.InDomain("BUBBLE"))
	require.False(t, o.InDomain("QUICK"))
}

func TestWithDefault(t *testing.T) {
	o, err := option.New("size", "problem size", option.Int, option.Settings)
	require.NoError(t, err)
	require.False(t, o.HasDefault)

	o.WithDefault(int64(10))
	require.True(t, o.HasDefault)
	require.Equal(t, int64(10), o.Default)
}

func TestParseValue_Scalars(t *testing.T) {
	v, err := option.ParseValue(option.Int, "42")
	require.NoError(t, err)
	require.Equal(t, int64(42), v)

	v, err = option.ParseValue(option.Float, "3.5")
	require.NoError(t, err)
	require.Equal(t, 3.5, v)

	v, err = option.ParseValue(option.Bool, "true")
	require.NoError(t, err)
	require.Equal(t, true, v)

	v, err = option.ParseValue(option.PercentageInt, "101")
	require.True(t, errors.Is(err, option.ErrConversionFailed))
	require.Nil(t, v)
}

func TestParseValue_Lists(t *testing.T) {
	v, err := option.ParseValue(option.IntList, "1,2,3")
	require.NoError(t, err)
	require.Equal(t, []interface{}{int64(1), int64(2), int64(3)}, v)

	v, err = option.ParseValue(option.StrList, "")
	require.NoError(t, err)
	require.Equal(t, []interface{}{}, v)
}

func TestFormatValue_RoundTrip(t *testing.T) {
	v, err := option.ParseValue(option.IntList, "1,2,3")
	require.NoError(t, err)
	require.Equal(t, "1,2,3", option.FormatValue(option.IntList, v))
}
