// Package staff gates the booking management screen behind an Argon2id
// credential file of the form "username:$argon2id$v=19$m=...,t=...,p=...$salt$hash".
package staff

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Errors returned by the credential store.
var (
	ErrNoCredentials      = errors.New("no staff credentials configured")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMalformedFile      = errors.New("invalid credentials file (expected username:hash)")
	ErrMalformedHash      = errors.New("invalid argon2id hash")
	ErrFileExists         = errors.New("credentials file already exists")
	ErrEmptyUsername      = errors.New("username cannot be empty")
	ErrEmptyPassword      = errors.New("password cannot be empty")
)

// Argon2id parameters (OWASP recommended).
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32
	saltLen       = 16
)

// Credentials is a single staff login loaded from disk.
type Credentials struct {
	Username string
	hash     string
}

// Load reads the credentials file at path.
// A missing file yields ErrNoCredentials.
func Load(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: create one with `boxoffice staff passwd` (%s)", ErrNoCredentials, path)
		}
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}

	line := strings.TrimSpace(string(data))
	user, hash, ok := strings.Cut(line, ":")
	if !ok || user == "" || hash == "" {
		return nil, ErrMalformedFile
	}
	return &Credentials{Username: user, hash: hash}, nil
}

// Verify checks a username and password against the stored hash.
func (c *Credentials) Verify(username, password string) error {
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1

	passMatch, err := VerifyPassword(password, c.hash)
	if err != nil {
		return err
	}
	if !userMatch || !passMatch {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword creates an Argon2id hash of the password.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argon2Memory, argon2Time, argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash)), nil
}

// VerifyPassword reports whether password matches an encoded Argon2id hash.
func VerifyPassword(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrMalformedHash
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, fmt.Errorf("%w: parameters: %v", ErrMalformedHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: salt: %v", ErrMalformedHash, err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("%w: hash: %v", ErrMalformedHash, err)
	}

	got := argon2.IDKey([]byte(password), salt, iterations, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(want, got) == 1, nil
}

// WriteFile hashes password and writes a read-only credentials file.
// An existing file is replaced only when overwrite is true.
func WriteFile(path, username, password string, overwrite bool) error {
	username = strings.TrimSpace(username)
	if username == "" || strings.Contains(username, ":") {
		return ErrEmptyUsername
	}
	if password == "" {
		return ErrEmptyPassword
	}

	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
		// The file is 0400, so it has to go before rewriting.
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing existing credentials file: %w", err)
		}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating credentials directory: %w", err)
	}
	content := fmt.Sprintf("%s:%s\n", username, hash)
	if err := os.WriteFile(path, []byte(content), 0o400); err != nil {
		return fmt.Errorf("writing credentials file: %w", err)
	}
	return nil
}
