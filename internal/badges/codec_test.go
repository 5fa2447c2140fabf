package badges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeList(t *testing.T) {
	assert.Equal(t, "[]", EncodeList(nil))
	assert.Equal(t, `["first_blastoff","streak_king"]`, EncodeList([]ID{FirstBlastoff, StreakKing}))
}

func TestDecodeList_RoundTrip(t *testing.T) {
	ids := []ID{FirstBlastoff, MoonWalker}
	got, err := DecodeList(EncodeList(ids))
	require.NoError(t, err)
	assert.Equal(t, ids, got)
}

func TestDecodeList_Empty(t *testing.T) {
	got, err := DecodeList("")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = DecodeList("[]")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeList_DropsUnknownIDs(t *testing.T) {
	got, err := DecodeList(`["first_blastoff","retired_badge"]`)
	require.NoError(t, err)
	assert.Equal(t, []ID{FirstBlastoff}, got)
}

func TestDecodeList_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "first_blastoff"},
		{"object", `{"id":"first_blastoff"}`},
		{"numbers", `[1, 2]`},
		{"duplicates", `["first_blastoff","first_blastoff"]`},
		{"bad id", `["First Blastoff"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeList(tt.raw)
			assert.Error(t, err)
		})
	}
}
