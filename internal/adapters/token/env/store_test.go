package env

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htdinh/pfob-cli/internal/domain"
)

func TestStoreLoad(t *testing.T) {
	t.Setenv("PFOB_TEST_TOKEN", "  tok-env \n")

	token, err := NewStore("PFOB_TEST_TOKEN").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-env", token)
}

func TestStoreLoadUnset(t *testing.T) {
	t.Setenv("PFOB_TEST_TOKEN", "")

	_, err := NewStore("PFOB_TEST_TOKEN").Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestStoreDefaultsVariable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultVar, NewStore("").variable)
}

func TestStoreIsReadOnly(t *testing.T) {
	t.Parallel()

	store := NewStore("PFOB_TEST_TOKEN")
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, "tok"))
	assert.Error(t, store.Clear(ctx))
}
