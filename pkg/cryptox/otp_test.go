package cryptox

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateNumericCode(t *testing.T) {
	for range 200 {
		code, err := GenerateNumericCode()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 100000)
		require.LessOrEqual(t, n, 999999)
	}
}

func TestHashAndVerifyCode(t *testing.T) {
	hash, err := HashCode("123456")
	require.NoError(t, err)
	require.NotContains(t, hash, "123456")

	require.NoError(t, VerifyCode("123456", hash))
	require.ErrorIs(t, VerifyCode("654321", hash), ErrCodeMismatch)

	t.Run("salted", func(t *testing.T) {
		again, err := HashCode("123456")
		require.NoError(t, err)
		require.NotEqual(t, hash, again)
	})

	t.Run("corrupt hash", func(t *testing.T) {
		err := VerifyCode("123456", "not-a-bcrypt-hash")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrCodeMismatch)
	})
}
