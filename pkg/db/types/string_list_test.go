package dbtypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringListRoundTrip(t *testing.T) {
	in := StringList{"pool", "wine cellar", "smart home"}

	v, err := in.Value()
	require.NoError(t, err)

	var out StringList
	require.NoError(t, out.Scan(v))
	require.Equal(t, in, out)
}

func TestStringListScanNilAndEmpty(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan(nil))
	require.Empty(t, l)

	require.NoError(t, l.Scan("[]"))
	require.Empty(t, l)

	require.NoError(t, l.Scan([]byte("null")))
	require.Empty(t, l)
}

func TestStringListScanPreservesOrder(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan(`["c","a","b"]`))
	require.Equal(t, StringList{"c", "a", "b"}, l)
}

func TestStringListScanRejectsBadJSON(t *testing.T) {
	var l StringList
	require.Error(t, l.Scan("{not json"))
}
