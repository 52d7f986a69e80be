package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surreal-look0e/Base-Horizon/internal/app"
)

func TestSessionStoreEmpty(t *testing.T) {
	var store app.SessionStore
	_, ok := store.Current()
	assert.False(t, ok)
}

func TestSessionStoreConnect(t *testing.T) {
	var store app.SessionStore
	sess := store.Connect("0xd8da6bf26964af9d7eed9e03e53415d37aa96045", 84532)

	assert.Equal(t, int64(84532), sess.ChainID)

	cur, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, sess, cur)
}

func TestSessionStoreReplaceLastWriteWins(t *testing.T) {
	var store app.SessionStore
	store.Connect("0x1111111111111111111111111111111111111111", 84532)
	store.Connect("0x2222222222222222222222222222222222222222", 8453)

	cur, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "0x2222222222222222222222222222222222222222", cur.Address)
	assert.Equal(t, int64(8453), cur.ChainID)
}

func TestSessionStoreClear(t *testing.T) {
	var store app.SessionStore
	store.Connect("0x1111111111111111111111111111111111111111", 84532)
	store.Clear()

	_, ok := store.Current()
	assert.False(t, ok)
}
