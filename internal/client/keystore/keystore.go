// Package keystore persists the client's private scalars. The file on
// disk is JSON with one record per username; each record holds the
// private scalar sealed with AES-GCM under an argon2id key derived from
// the owner's passphrase and a per-record random salt.
package keystore

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"

	"github.com/dmitrijs2005/sonarauth/internal/common"
	"github.com/dmitrijs2005/sonarauth/internal/cryptox"
)

var (
	ErrNoKey      = errors.New("no key stored for this username")
	ErrBadKeyFile = errors.New("key file is corrupt")
)

// record is one sealed private key as stored on disk.
type record struct {
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

// fileFormat is the on-disk layout of the key file.
type fileFormat struct {
	Version    int               `json:"version"`
	Identities map[string]record `json:"identities"`
}

// payload is what actually gets sealed for each identity.
type payload struct {
	PrivKey string `json:"priv_key"`
}

// Keystore reads and writes one key file.
type Keystore struct {
	path string
}

func New(path string) *Keystore {
	return &Keystore{path: path}
}

func (k *Keystore) load() (*fileFormat, error) {
	data, err := os.ReadFile(k.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &fileFormat{Version: 1, Identities: map[string]record{}}, nil
		}
		return nil, err
	}

	f := &fileFormat{}
	if err := json.Unmarshal(data, f); err != nil {
		return nil, ErrBadKeyFile
	}
	if f.Identities == nil {
		f.Identities = map[string]record{}
	}
	return f, nil
}

func (k *Keystore) store(f *fileFormat) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(k.path, data, 0o600)
}

// Save seals privKey under the passphrase and writes it to the key file,
// replacing any previous record for username.
func (k *Keystore) Save(username, privKey string, passphrase []byte) error {

	f, err := k.load()
	if err != nil {
		return err
	}

	salt := common.GenerateRandByteArray(16)
	key := cryptox.DeriveMasterKey(passphrase, salt)

	ciphertext, nonce, err := cryptox.EncryptJSON(payload{PrivKey: privKey}, key)
	if err != nil {
		return err
	}

	f.Identities[username] = record{
		Salt:       hex.EncodeToString(salt),
		Nonce:      hex.EncodeToString(nonce),
		Ciphertext: hex.EncodeToString(ciphertext),
	}

	return k.store(f)
}

// Load opens the record for username with the passphrase and returns the
// private scalar. A wrong passphrase surfaces as an authentication error
// from the cipher, not as garbage key material.
func (k *Keystore) Load(username string, passphrase []byte) (string, error) {

	f, err := k.load()
	if err != nil {
		return "", err
	}

	rec, ok := f.Identities[username]
	if !ok {
		return "", ErrNoKey
	}

	salt, err := hex.DecodeString(rec.Salt)
	if err != nil {
		return "", ErrBadKeyFile
	}
	nonce, err := hex.DecodeString(rec.Nonce)
	if err != nil {
		return "", ErrBadKeyFile
	}
	ciphertext, err := hex.DecodeString(rec.Ciphertext)
	if err != nil {
		return "", ErrBadKeyFile
	}

	key := cryptox.DeriveMasterKey(passphrase, salt)

	var p payload
	if err := cryptox.DecryptJSON(ciphertext, nonce, key, &p); err != nil {
		return "", err
	}

	return p.PrivKey, nil
}

// Delete removes the record for username, if present.
func (k *Keystore) Delete(username string) error {
	f, err := k.load()
	if err != nil {
		return err
	}
	delete(f.Identities, username)
	return k.store(f)
}
