package bundlecodec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koldar/phdtester-go/bundle"
	"github.com/koldar/phdtester-go/bundlecodec"
)

func TestParse_UnnamedDictionary(t *testing.T) {
	d, err := bundlecodec.Parse("|a=5|", bundlecodec.DefaultParseOptions())
	require.NoError(t, err)
	require.Equal(t, 1, d.Len())
	dict, err := d.DictAt(0)
	require.NoError(t, err)
	require.False(t, dict.HasName)
	require.Equal(t, "5", dict.Values["a"])
}

func TestParse_NamedAndMultipleDictionaries(t *testing.T) {
	d, err := bundlecodec.Parse("myIdentifier|basic:a=5_b=3|c=4|", bundlecodec.DefaultParseOptions())
	require.NoError(t, err)
	require.True(t, d.HasIdentifier)
	require.Equal(t, "myIdentifier", d.Identifier)
	require.Equal(t, 2, d.Len())

	basic, err := d.DictNamed("basic")
	require.NoError(t, err)
	require.Equal(t, "5", basic.Values["a"])
	require.Equal(t, "3", basic.Values["b"])

	second, err := d.DictAt(1)
	require.NoError(t, err)
	require.False(t, second.HasName)
	require.Equal(t, "4", second.Values["c"])
}

func TestParse_EscapedSeparators(t *testing.T) {
	d, err := bundlecodec.Parse("|a::=5|||", bundlecodec.DefaultParseOptions())
	require.NoError(t, err)
	require.Equal(t, 1, d.Len())
	dict, err := d.DictAt(0)
	require.NoError(t, err)
	require.Equal(t, "5|", dict.Values["a:"])
}

func TestParse_EmptyNamedDictionary(t *testing.T) {
	d, err := bundlecodec.Parse("|a=5|empty:|", bundlecodec.DefaultParseOptions())
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())
	empty, err := d.DictNamed("empty")
	require.NoError(t, err)
	require.Len(t, empty.Values, 0)
}

func TestParse_EmptyUnnamedDictionaryRejected(t *testing.T) {
	_, err := bundlecodec.Parse("|a=|", bundlecodec.DefaultParseOptions())
	require.ErrorIs(t, err, bundlecodec.ErrEmptyUnnamedDict)
}

func TestDumpParse_RoundTrip(t *testing.T) {
	d := bundlecodec.New().WithIdentifier("run1")
	d.AddKeyValue("basic", "a", "5")
	d.AddKeyValue("basic", "b", "3")
	d.AddKeyValueAt(1, "c", "4")

	s := bundlecodec.Dump(d, bundlecodec.DefaultDumpOptions())
	roundTripped, err := bundlecodec.Parse(s, bundlecodec.DefaultParseOptions())
	require.NoError(t, err)
	require.True(t, d.Equal(roundTripped))
}

func TestDump_EscapesSeparators(t *testing.T) {
	d := bundlecodec.New()
	d.AddKeyValueAt(0, "a:", "5|")
	s := bundlecodec.Dump(d, bundlecodec.DefaultDumpOptions())
	require.Equal(t, "|a::=5|||", s)
}

func TestDump_KeyAndValueAliases(t *testing.T) {
	d := bundlecodec.New()
	d.AddKeyValueAt(0, "foo", "3")
	require.NoError(t, d.SetKeyAlias("foo", "f"))
	require.NoError(t, d.SetValueAlias("foo", "3", "three"))

	s := bundlecodec.Dump(d, bundlecodec.DefaultDumpOptions())
	require.Equal(t, "|f=three|", s)
}

func TestParse_ResolvesAliasesBackToOfficialNames(t *testing.T) {
	opts := bundlecodec.DefaultParseOptions()
	opts.KeyAliases = map[string]string{"foo": "f"}
	d, err := bundlecodec.Parse("|f=3|", opts)
	require.NoError(t, err)
	dict, err := d.DictAt(0)
	require.NoError(t, err)
	require.Equal(t, "3", dict.Values["foo"])
}

func TestMerge_AppendsDictionariesKeepingFirstIdentifier(t *testing.T) {
	a := bundlecodec.New().WithIdentifier("a")
	a.AddKeyValueAt(0, "x", "1")
	b := bundlecodec.New().WithIdentifier("b")
	b.AddKeyValue("y", "z", "2")

	merged := bundlecodec.Merge(a, b)
	require.Equal(t, "a", merged.Identifier)
	require.Equal(t, 2, merged.Len())

	_, err := a.DictNamed("y")
	require.ErrorIs(t, err, bundlecodec.ErrDictNotFound)
}

func TestContains_SubBundleSemantics(t *testing.T) {
	haystack := bundlecodec.New()
	haystack.AddKeyValue("basic", "a", "5")
	haystack.AddKeyValue("basic", "b", "3")
	haystack.AddKeyValueAt(1, "c", "4")

	needle := bundlecodec.New()
	needle.AddKeyValueAt(0, "a", "5")
	require.True(t, bundlecodec.Contains(haystack, needle))

	absent := bundlecodec.New()
	absent.AddKeyValueAt(0, "a", "999")
	require.False(t, bundlecodec.Contains(haystack, absent))
}

func TestFromTestContext_StringifiesValues(t *testing.T) {
	sutSchema := bundle.NewSchema(bundle.StuffUnderTest, "algorithm")
	envSchema := bundle.NewSchema(bundle.EnvironmentKind, "size")
	sut := bundle.New(sutSchema)
	env := bundle.New(envSchema)
	require.NoError(t, sut.Set("algorithm", "MERGE"))
	require.NoError(t, env.Set("size", int64(10)))
	tc, err := bundle.NewTestContext(sut, env)
	require.NoError(t, err)

	doc := bundlecodec.FromTestContext(tc, "", false)
	flat := doc.Flatten()
	require.Equal(t, "MERGE", flat["algorithm"])
	require.Equal(t, "10", flat["size"])
}
