package lib

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrInvalidHash         = errors.New("invalid hash format")
	ErrIncompatibleVersion = errors.New("incompatible version of argon2")
)

// argon2HashParts contains the decoded parts of an Argon2 hash
type argon2HashParts struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	hash    []byte
}

// decodeArgon2Hash decodes an Argon2id hash string into its component parts.
// Expected format: $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
func decodeArgon2Hash(encodedHash string) (*argon2HashParts, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return nil, ErrInvalidHash
	}

	if parts[1] != "argon2id" {
		return nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, err
	}
	if version != argon2.Version {
		return nil, ErrIncompatibleVersion
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, err
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, err
	}

	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, err
	}

	return &argon2HashParts{
		memory:  memory,
		time:    time,
		threads: threads,
		salt:    salt,
		hash:    hash,
	}, nil
}

// VerifyPassword checks a plaintext password against an encoded Argon2id hash
// in constant time.
func VerifyPassword(password, encodedHash string) (bool, error) {
	parts, err := decodeArgon2Hash(encodedHash)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(password), parts.salt, parts.time, parts.memory, parts.threads, uint32(len(parts.hash)))
	return subtle.ConstantTimeCompare(computed, parts.hash) == 1, nil
}

// HashPassword encodes a password as an Argon2id hash with the given salt
// parameters. Used by the admin credential bootstrap tooling and tests.
func HashPassword(password string, salt []byte) string {
	const (
		memory  uint32 = 64 * 1024
		time    uint32 = 1
		threads uint8  = 4
		keyLen  uint32 = 32
	)

	hash := argon2.IDKey([]byte(password), salt, time, memory, threads, keyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, memory, time, threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
}
