// Package cryptox provides the primitives the client uses to protect
// its key file: argon2id passphrase derivation and AES-GCM sealing of
// JSON-serializable values.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"

	"golang.org/x/crypto/argon2"
)

// DeriveMasterKey stretches a passphrase into a 32-byte AES key using
// argon2id with the given salt.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// EncryptJSON serializes v to JSON and encrypts it with AES-GCM under
// key. The key must be 16, 24 or 32 bytes. A fresh random 12-byte nonce
// is generated per call and returned alongside the ciphertext.
func EncryptJSON(v any, key []byte) (ciphertext, nonce []byte, err error) {

	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}

	nonce = make([]byte, 12)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)

	return ciphertext, nonce, nil
}

// DecryptJSON decrypts ciphertext produced by EncryptJSON and unmarshals
// the plaintext into v. The key and nonce must match the ones used for
// encryption; a wrong key fails authentication rather than producing
// garbage output.
func DecryptJSON(ciphertext, nonce, key []byte, v any) error {
	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return err
	}

	return json.Unmarshal(plaintext, v)
}
