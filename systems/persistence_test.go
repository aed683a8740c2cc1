package systems

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSaveRoundTrip(t *testing.T) {
	store := newMemStore()
	want := SaveData{X: 12.5, Y: 40.0, Health: 80, LevelID: "tutorial"}

	require.NoError(t, SaveGame(store, want))
	assert.Equal(t, "12.5 40 80 tutorial", string(store.items[SaveGameKey]))

	got := LoadGame(store, zap.NewNop())
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
	assert.True(t, HasSaveGame(store))
}

func TestDecodeSave(t *testing.T) {
	tests := []struct {
		name string
		data string
		want *SaveData
	}{
		{name: "without level", data: "1 2 3", want: &SaveData{X: 1, Y: 2, Health: 3}},
		{name: "extra whitespace", data: "  -4.25\t8  99 castle\n", want: &SaveData{X: -4.25, Y: 8, Health: 99, LevelID: "castle"}},
		{name: "empty", data: ""},
		{name: "too few fields", data: "1 2"},
		{name: "bad x", data: "a 2 3"},
		{name: "bad y", data: "1 b 3"},
		{name: "fractional health", data: "1 2 3.5"},
		{name: "nan x", data: "NaN 2 3"},
		{name: "inf y", data: "1 Inf 3"},
		{name: "signed inf x", data: "+Inf 2 3 tutorial"},
		{name: "negative inf y", data: "1 -inf 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeSave([]byte(tt.data)))
		})
	}
}

func TestLoadGameDegradesToNoSave(t *testing.T) {
	store := newMemStore()
	assert.Nil(t, LoadGame(store, zap.NewNop()), "missing")

	store.items[SaveGameKey] = []byte("garbage")
	assert.Nil(t, LoadGame(store, zap.NewNop()), "malformed")
	assert.False(t, HasSaveGame(store))

	store.err = errors.New("disk on fire")
	assert.Nil(t, LoadGame(store, zap.NewNop()), "read error")
	assert.False(t, HasSaveGame(store))

	assert.Nil(t, LoadGame(nil, zap.NewNop()))
}

func TestClearGame(t *testing.T) {
	store := newMemStore()
	require.NoError(t, SaveGame(store, SaveData{X: 1, Y: 2, Health: 3}))
	require.True(t, HasSaveGame(store))

	require.NoError(t, ClearGame(store))
	assert.NotContains(t, store.items, SaveGameKey)
	assert.False(t, HasSaveGame(store))
	assert.Nil(t, LoadGame(store, zap.NewNop()))

	// Clearing again is fine
	require.NoError(t, ClearGame(store))
}

func TestSaveErrorsAreWrapped(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("read-only")

	err := SaveGame(store, SaveData{})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.err)
	assert.ErrorIs(t, ClearGame(store), store.err)
}
