// Package credentials stores the bearer token used for ERP backend calls.
package credentials

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24
)

// Memory keeps the token for the lifetime of the process.
type Memory struct {
	mu    sync.RWMutex
	token string
}

var _ portssvc.CredentialProvider = (*Memory)(nil)

// NewMemory creates an empty in-memory provider.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) GetToken() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == "" {
		return "", apperrors.ErrUnauthenticated
	}
	return m.token, nil
}

func (m *Memory) SetToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: token must not be empty", apperrors.ErrValidation)
	}
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
	return nil
}

// File keeps the token encrypted with NaCl secretbox in a file readable only by its owner.
type File struct {
	mu   sync.Mutex
	path string
	key  [keySize]byte
}

var _ portssvc.CredentialProvider = (*File)(nil)

// NewFile creates a provider backed by path. hexKey is a 64 character hex encoded key.
func NewFile(path string, hexKey string) (*File, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(hexKey))
	if err != nil || len(raw) != keySize {
		return nil, fmt.Errorf("credentials key must be %d hex encoded bytes", keySize)
	}
	f := &File{path: path}
	copy(f.key[:], raw)
	return f, nil
}

// GenerateKey returns a new random key in the format NewFile expects.
func GenerateKey() (string, error) {
	var key [keySize]byte
	if _, err := rand.Read(key[:]); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(key[:]), nil
}

func (f *File) GetToken() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sealed, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", apperrors.ErrUnauthenticated
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credentials: %w", err)
	}
	if len(sealed) < nonceSize+secretbox.Overhead {
		return "", fmt.Errorf("credentials file %s is corrupt", f.path)
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])
	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &f.key)
	if !ok {
		return "", fmt.Errorf("credentials file %s cannot be decrypted with the configured key", f.path)
	}
	if len(plain) == 0 {
		return "", apperrors.ErrUnauthenticated
	}
	return string(plain), nil
}

func (f *File) SetToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: token must not be empty", apperrors.ErrValidation)
	}

	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return fmt.Errorf("failed to read random bytes: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], []byte(token), &nonce, &f.key)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, sealed, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	return nil
}

func (f *File) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}
	return nil
}
