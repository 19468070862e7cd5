package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var testPepperPath = filepath.Join(os.TempDir(), "careerhub-cryptox-test-pepper")

func TestMain(m *testing.M) {
	os.Remove(testPepperPath)
	SetPepperPath(testPepperPath)
	code := m.Run()
	os.Remove(testPepperPath)
	os.Exit(code)
}

// usePepperFile switches the hasher to path for the rest of the test.
func usePepperFile(t *testing.T, path string) {
	t.Helper()
	SetPepperPath(path)
	t.Cleanup(func() { SetPepperPath(testPepperPath) })
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("admin1234")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=19456,t=2,p=1$"), hash)

	again, err := HashPassword("admin1234")
	require.NoError(t, err)
	require.NotEqual(t, hash, again, "every hash gets its own salt")
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("p1-secret")
	require.NoError(t, err)
	require.NoError(t, VerifyPassword("p1-secret", hash))

	for _, wrong := range []string{"p1-secreT", "p1-secret ", ""} {
		require.ErrorIs(t, VerifyPassword(wrong, hash), ErrPasswordMismatch, "%q", wrong)
	}
}

func TestVerifyPasswordHonoursStoredParameters(t *testing.T) {
	orig := hashParams
	hashParams = argonParams{memory: 8 * 1024, time: 1, threads: 1, keyLen: 16}
	hash, err := HashPassword("p1-secret")
	hashParams = orig
	require.NoError(t, err)

	require.Contains(t, hash, "$m=8192,t=1,p=1$")
	require.NoError(t, VerifyPassword("p1-secret", hash))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	for name, h := range map[string]string{
		"empty":          "",
		"bcrypt":         "$2a$10$abcdefghijklmnopqrstuu0000000000000000000000000000000",
		"truncated":      "$argon2id$v=19$m=19456",
		"argon2i":        "$argon2i$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"old version":    "$argon2id$v=16$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"bad parameters": "$argon2id$v=19$memory$c2FsdA$aGFzaA",
		"bad salt":       "$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA",
		"empty key":      "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$",
	} {
		t.Run(name, func(t *testing.T) {
			err := VerifyPassword("p1-secret", h)
			require.ErrorIs(t, err, errMalformedHash)
			require.NotErrorIs(t, err, ErrPasswordMismatch)
		})
	}
}

func TestPepper(t *testing.T) {
	t.Run("created once and reused", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "pepper")
		usePepperFile(t, path)

		hash, err := HashPassword("p1-secret")
		require.NoError(t, err)

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		// A restart reads the same file.
		SetPepperPath(path)
		require.NoError(t, VerifyPassword("p1-secret", hash))
	})

	t.Run("a different pepper rejects the password", func(t *testing.T) {
		dir := t.TempDir()
		usePepperFile(t, filepath.Join(dir, "a"))
		hash, err := HashPassword("p1-secret")
		require.NoError(t, err)

		SetPepperPath(filepath.Join(dir, "b"))
		require.ErrorIs(t, VerifyPassword("p1-secret", hash), ErrPasswordMismatch)
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "plain"), []byte("hand-written-pepper"), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "newline"), []byte("hand-written-pepper\n"), 0o600))

		usePepperFile(t, filepath.Join(dir, "plain"))
		hash, err := HashPassword("p1-secret")
		require.NoError(t, err)

		SetPepperPath(filepath.Join(dir, "newline"))
		require.NoError(t, VerifyPassword("p1-secret", hash))
	})

	t.Run("unusable files are errors", func(t *testing.T) {
		empty := filepath.Join(t.TempDir(), "empty")
		require.NoError(t, os.WriteFile(empty, []byte(" \n"), 0o600))

		for _, path := range []string{"", empty} {
			usePepperFile(t, path)
			_, err := HashPassword("p1-secret")
			require.Error(t, err, "%q", path)
		}
	})
}

func TestGenerateToken(t *testing.T) {
	tok, err := GenerateToken(TokenSize256)
	require.NoError(t, err)
	require.Len(t, tok, 43)

	other, err := GenerateToken(TokenSize256)
	require.NoError(t, err)
	require.NotEqual(t, tok, other)

	for _, size := range []int{0, -1} {
		_, err := GenerateToken(size)
		require.Error(t, err)
	}
}

func TestGeneratePassword(t *testing.T) {
	for range 20 {
		pw, err := GeneratePassword()
		require.NoError(t, err)
		require.Len(t, pw, GeneratedPasswordLength)
		require.Empty(t, strings.Trim(pw, passwordAlphabet))
		require.NotContains(t, pw, "0")
		require.NotContains(t, pw, "l")
	}
}
