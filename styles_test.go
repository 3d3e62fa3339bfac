package stringify_test

import (
	"testing"

	"github.com/bjaus/stringify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStylesGet(t *testing.T) {
	t.Parallel()
	key := stringify.NewStyle(stringify.Add, 1)
	styles := stringify.NewStyles(stringify.Bind(stringify.RoleKey, key))

	got, err := styles.Get(stringify.RoleKey)
	require.NoError(t, err)
	assert.Equal(t, key, got)

	_, err = styles.Get("Key")
	require.ErrorIs(t, err, stringify.ErrStyleNotFound)
	var nf *stringify.StyleNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Key", nf.Role)
}

func TestStylesZeroValue(t *testing.T) {
	t.Parallel()
	var styles stringify.Styles
	assert.Equal(t, 0, styles.Len())
	assert.Empty(t, styles.Roles())
	assert.False(t, styles.Has(stringify.RoleStart))
	_, ok := styles.Lookup(stringify.RoleStart)
	assert.False(t, ok)
	_, err := styles.Get(stringify.RoleStart)
	assert.ErrorIs(t, err, stringify.ErrStyleNotFound)
}

func TestNewStylesLastBindingWins(t *testing.T) {
	t.Parallel()
	styles := stringify.NewStyles(
		stringify.Bind(stringify.RoleName, stringify.NewStyle(stringify.Omit, 1)),
		stringify.Bind(stringify.RoleName, stringify.NewStyle(stringify.Add, 4)),
	)
	assert.Equal(t, 1, styles.Len())
	got, err := styles.Get(stringify.RoleName)
	require.NoError(t, err)
	assert.Equal(t, stringify.NewStyle(stringify.Add, 4), got)
}

func TestStylesWithDoesNotMutate(t *testing.T) {
	t.Parallel()
	base := stringify.NewStyles(stringify.Bind(stringify.RoleStart, stringify.NewStyle(stringify.Omit, 0)))
	derived := base.With(
		stringify.Bind(stringify.RoleStart, stringify.NewStyle(stringify.Add, 2)),
		stringify.Bind(stringify.RoleEnd, stringify.NewStyle(stringify.Omit, 2)),
	)

	assert.Equal(t, []string{stringify.RoleStart}, base.Roles())
	assert.Equal(t, []string{stringify.RoleEnd, stringify.RoleStart}, derived.Roles())
	got, _ := base.Lookup(stringify.RoleStart)
	assert.Equal(t, stringify.NewStyle(stringify.Omit, 0), got)
	got, _ = derived.Lookup(stringify.RoleStart)
	assert.Equal(t, stringify.NewStyle(stringify.Add, 2), got)
}

func TestStylesFromCopies(t *testing.T) {
	t.Parallel()
	src := map[string]stringify.Style{stringify.RoleValue: stringify.NewStyle(stringify.Add, 1)}
	styles := stringify.StylesFrom(src)
	src[stringify.RoleValue] = stringify.NewStyle(stringify.Omit, 9)
	delete(src, stringify.RoleValue)

	got, err := styles.Get(stringify.RoleValue)
	require.NoError(t, err)
	assert.Equal(t, stringify.NewStyle(stringify.Add, 1), got)

	all := styles.All()
	all[stringify.RoleKey] = stringify.DefaultStyle()
	assert.False(t, styles.Has(stringify.RoleKey))
}
