package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrPasswordMismatch is returned by VerifyPassword when the hash does not match.
var ErrPasswordMismatch = errors.New("password does not match")

var errMalformedHash = errors.New("malformed argon2id hash")

type argonParams struct {
	memory  uint32 // KiB
	time    uint32
	threads uint8
	keyLen  uint32
}

// hashParams apply to new hashes. Stored hashes carry their own parameters,
// so raising these leaves existing passwords verifiable.
var hashParams = argonParams{memory: 19 * 1024, time: 2, threads: 1, keyLen: 32}

const saltSize = 16

var b64 = base64.RawStdEncoding

// HashPassword returns a peppered Argon2id hash in PHC string form:
// $argon2id$v=19$m=19456,t=2,p=1$<salt>$<key>.
func HashPassword(password string) (string, error) {
	pep, err := pepper()
	if err != nil {
		return "", err
	}
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to read salt: %w", err)
	}

	p := hashParams
	key := argon2.IDKey([]byte(password+pep), salt, p.time, p.memory, p.threads, p.keyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.memory, p.time, p.threads, b64.EncodeToString(salt), b64.EncodeToString(key)), nil
}

// VerifyPassword checks password against a hash made by HashPassword. A
// wrong password yields ErrPasswordMismatch; any other error means the
// hash itself (or the pepper) is unusable.
func VerifyPassword(password, encoded string) error {
	p, salt, want, err := decodeHash(encoded)
	if err != nil {
		return err
	}
	pep, err := pepper()
	if err != nil {
		return err
	}

	got := argon2.IDKey([]byte(password+pep), salt, p.time, p.memory, p.threads, p.keyLen)
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

func decodeHash(encoded string) (argonParams, []byte, []byte, error) {
	var p argonParams

	f := strings.Split(encoded, "$")
	if len(f) != 6 || f[0] != "" || f[1] != "argon2id" {
		return p, nil, nil, errMalformedHash
	}
	if f[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return p, nil, nil, fmt.Errorf("%w: unsupported version %q", errMalformedHash, f[2])
	}
	if _, err := fmt.Sscanf(f[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return p, nil, nil, fmt.Errorf("%w: parameters: %v", errMalformedHash, err)
	}
	salt, err := b64.DecodeString(f[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("%w: salt: %v", errMalformedHash, err)
	}
	key, err := b64.DecodeString(f[5])
	if err != nil || len(key) == 0 {
		return p, nil, nil, fmt.Errorf("%w: key", errMalformedHash)
	}
	p.keyLen = uint32(len(key)) // #nosec G115 -- decoded from a short string
	return p, salt, key, nil
}
