package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_String(t *testing.T) {
	assert.Equal(t, "1.234", FoundValue("1.234").String())
	assert.Equal(t, NotFoundText, NotFoundValue().String())
	assert.Equal(t, FileMissingText, FileMissingValue().String())
	assert.Equal(t, "", Value{}.String())
}

func TestValue_FoundTextEqualToPlaceholderIsStillFound(t *testing.T) {
	v := FoundValue(FileMissingText)

	require.True(t, v.IsFound())
	require.NotEqual(t, FileMissingValue(), v)
}

func TestKind_RoundTrip(t *testing.T) {
	for _, k := range []Kind{Found, NotFound, FileMissing} {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}

	_, err := ParseKind("bogus")
	require.Error(t, err)
}

func TestAugmentedRecord_Field(t *testing.T) {
	a := AugmentedRecord{
		Record: NewRecord("degree", "4"),
		Metrics: map[string]Value{
			"simSeconds": FoundValue("0.5"),
			"insts":      NotFoundValue(),
		},
	}

	v, ok := a.Field("degree")
	require.True(t, ok)
	require.Equal(t, FoundValue("4"), v)

	v, ok = a.Field("insts")
	require.True(t, ok)
	require.Equal(t, NotFound, v.Kind)

	_, ok = a.Field("missing")
	require.False(t, ok)

	require.Equal(t, 3, a.Len())
}
