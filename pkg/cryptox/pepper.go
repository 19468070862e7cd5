package cryptox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// pepperSize is the entropy of a generated pepper, in bytes.
const pepperSize = 32

// The pepper is a server side secret mixed into every password hash. It is
// kept in its own file, outside the database.
var pepperState struct {
	mu    sync.Mutex
	path  string
	value string
}

// SetPepperPath points the password hasher at its pepper file and drops any
// pepper already loaded. A missing file is created with a random pepper the
// first time a password is hashed or verified.
func SetPepperPath(path string) {
	pepperState.mu.Lock()
	defer pepperState.mu.Unlock()
	pepperState.path = path
	pepperState.value = ""
}

func pepper() (string, error) {
	pepperState.mu.Lock()
	defer pepperState.mu.Unlock()

	if pepperState.value != "" {
		return pepperState.value, nil
	}
	v, err := loadPepper(pepperState.path)
	if err != nil {
		return "", fmt.Errorf("pepper file %q: %w", pepperState.path, err)
	}
	pepperState.value = v
	return v, nil
}

func loadPepper(path string) (string, error) {
	if path == "" {
		return "", errors.New("no path configured")
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		v := strings.TrimSpace(string(raw))
		if v == "" {
			return "", errors.New("file is empty")
		}
		return v, nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", err
	}
	v, err := GenerateToken(pepperSize)
	if err != nil {
		return "", err
	}

	// O_EXCL keeps the first pepper when two processes start on an empty volume.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return loadPepper(path)
	}
	if err != nil {
		return "", err
	}
	if _, err := f.WriteString(v); err != nil {
		_ = f.Close()
		return "", err
	}
	return v, f.Close()
}
