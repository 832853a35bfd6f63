package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/smartform/pkg/password"
)

func TestHasher(t *testing.T) {
	t.Parallel()

	h, err := password.NewHasher(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := h.Hash("Abcdef12")
	require.NoError(t, err)
	assert.NotEqual(t, "Abcdef12", string(hash))

	assert.NoError(t, password.Compare(hash, "Abcdef12"))
	assert.ErrorIs(t, password.Compare(hash, "abcdef12"), password.ErrMismatch)
	assert.Error(t, password.Compare([]byte("not a hash"), "Abcdef12"))
}

func TestHasher_Limits(t *testing.T) {
	t.Parallel()

	_, err := password.NewHasher(bcrypt.MaxCost + 1)
	assert.ErrorIs(t, err, password.ErrBadCost)

	h, err := password.NewHasher(0)
	require.NoError(t, err)
	_, err = h.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, password.ErrTooLong)
}
