package sasl

import (
	"crypto/hmac"
	"hash"

	"golang.org/x/crypto/pbkdf2"
)

// SCRAM credential derivation (RFC 5802 section 3). The password is
// prepared with ProfileStored before key derivation; servers store
// StoredKey and ServerKey, never the password itself.

// SaltedPassword derives Hi(prepared(password), salt, iterations) using
// PBKDF2 over the given hash family.
func SaltedPassword(newHash func() hash.Hash, password string, salt []byte, iterations int) ([]byte, error) {
	prepared, err := PrepareStored(password)
	if err != nil {
		return nil, err
	}
	return pbkdf2.Key(prepared, salt, iterations, newHash().Size(), newHash), nil
}

// ClientKey derives HMAC(saltedPassword, "Client Key").
func ClientKey(newHash func() hash.Hash, saltedPassword []byte) []byte {
	return hmacKey(newHash, saltedPassword, "Client Key")
}

// ServerKey derives HMAC(saltedPassword, "Server Key").
func ServerKey(newHash func() hash.Hash, saltedPassword []byte) []byte {
	return hmacKey(newHash, saltedPassword, "Server Key")
}

// StoredKey derives H(clientKey).
func StoredKey(newHash func() hash.Hash, clientKey []byte) []byte {
	h := newHash()
	h.Write(clientKey)
	return h.Sum(nil)
}

func hmacKey(newHash func() hash.Hash, key []byte, label string) []byte {
	mac := hmac.New(newHash, key)
	mac.Write([]byte(label))
	return mac.Sum(nil)
}
