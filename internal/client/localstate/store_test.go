package localstate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGet_NotExists_ReturnsNilNil(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	v, err := s.Get(ctx, "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("old")))
	require.NoError(t, s.Set(ctx, "k", []byte("new")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)
}

func TestCredentials_RoundTripAndClear(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	c, err := s.Credentials(ctx)
	require.NoError(t, err)
	require.Nil(t, c)

	require.NoError(t, s.SetCredentials(ctx, &Credentials{AccessToken: "a1", RefreshToken: "r1"}))

	c, err = s.Credentials(ctx)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "a1", c.AccessToken)
	assert.Equal(t, "r1", c.RefreshToken)

	require.NoError(t, s.ClearCredentials(ctx))

	c, err = s.Credentials(ctx)
	require.NoError(t, err)
	require.Nil(t, c)
}

func TestSubscribe_NotifiedOnSetAndDelete(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	var keys []string
	s.Subscribe(func(key string) { keys = append(keys, key) })

	require.NoError(t, s.SetCredentials(ctx, &Credentials{AccessToken: "a", RefreshToken: "r"}))
	require.NoError(t, s.SetTheme(ctx, "dark"))
	require.NoError(t, s.ClearCredentials(ctx))

	assert.Equal(t, []string{KeyCredentials, KeyTheme, KeyCredentials}, keys)
}

func TestThemeAndSidebar_Defaults(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	theme, err := s.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", theme)

	collapsed, err := s.SidebarCollapsed(ctx)
	require.NoError(t, err)
	assert.False(t, collapsed)

	require.NoError(t, s.SetSidebarCollapsed(ctx, true))
	collapsed, err = s.SidebarCollapsed(ctx)
	require.NoError(t, err)
	assert.True(t, collapsed)
}
