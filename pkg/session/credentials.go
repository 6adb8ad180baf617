// Package session holds the operator's login state: a credentials file
// persisted across restarts and an in-memory store the UI reads on every
// render.
package session

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rashidq/quranadmin/pkg/crypto"
	"github.com/rashidq/quranadmin/pkg/model"
)

const (
	credentialsFile = "credentials.yaml"
	keyFile         = "credentials.key"
)

// credentialsDoc is the on-disk shape: the profile in the clear, the bearer
// token sealed with the machine-local key.
type credentialsDoc struct {
	SealedToken string             `yaml:"sealed_token"`
	User        *model.UserProfile `yaml:"user"`
}

// CredentialsFile persists the token and profile in a directory, creating a
// sealing key on first use. It is the client-side analog of browser local
// storage: written only by login/logout, read on every request.
type CredentialsFile struct {
	dir string
}

// NewCredentialsFile creates a store rooted at dir.
func NewCredentialsFile(dir string) *CredentialsFile {
	return &CredentialsFile{dir: dir}
}

// DefaultCredentialsFile stores credentials next to the binary.
func DefaultCredentialsFile() *CredentialsFile {
	exe, err := os.Executable()
	if err != nil {
		return NewCredentialsFile(".")
	}
	return NewCredentialsFile(filepath.Dir(exe))
}

// Store writes the profile and sealed token, replacing any previous login.
func (cf *CredentialsFile) Store(user *model.UserProfile, token string) error {
	sealer, err := cf.sealer()
	if err != nil {
		return err
	}
	sealed, err := sealer.Seal([]byte(token))
	if err != nil {
		return fmt.Errorf("session: seal token: %w", err)
	}
	doc := credentialsDoc{
		SealedToken: base64.StdEncoding.EncodeToString(sealed),
		User:        user,
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("session: marshal credentials: %w", err)
	}
	return os.WriteFile(filepath.Join(cf.dir, credentialsFile), data, 0600)
}

// Load reads the persisted profile and token. A missing or unreadable file
// yields an empty session rather than an error: stale or tampered credentials
// just mean the operator logs in again.
func (cf *CredentialsFile) Load() (*model.UserProfile, string) {
	data, err := os.ReadFile(filepath.Join(cf.dir, credentialsFile))
	if err != nil {
		return nil, ""
	}
	var doc credentialsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, ""
	}
	if doc.User == nil || doc.SealedToken == "" {
		return nil, ""
	}
	sealed, err := base64.StdEncoding.DecodeString(doc.SealedToken)
	if err != nil {
		return nil, ""
	}
	sealer, err := cf.sealer()
	if err != nil {
		return nil, ""
	}
	token, err := sealer.Open(sealed)
	if err != nil {
		return nil, ""
	}
	return doc.User, string(token)
}

// Token re-reads the persisted token. Implements api.TokenSource, so every
// outbound request picks up the credentials as they are on disk right now.
func (cf *CredentialsFile) Token() string {
	_, token := cf.Load()
	return token
}

// Clear removes the credentials file. Idempotent; the sealing key stays.
func (cf *CredentialsFile) Clear() error {
	err := os.Remove(filepath.Join(cf.dir, credentialsFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: clear credentials: %w", err)
	}
	return nil
}

// sealer loads the machine-local key, generating it on first use.
func (cf *CredentialsFile) sealer() (*crypto.Sealer, error) {
	path := filepath.Join(cf.dir, keyFile)
	key, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		key, err = crypto.GenerateKey()
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, key, 0600); err != nil {
			return nil, fmt.Errorf("session: write key file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("session: read key file: %w", err)
	}
	return crypto.NewSealer(key)
}
