package blob

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/opiegroup/boscotek2026-sub003/pkg/utils"
)

// LocalStore is a filesystem-backed blob store. Retrieval URLs carry an
// HMAC-SHA256 signature over path and expiry so the download endpoint can
// verify them without any shared session state.
type LocalStore struct {
	root    string
	baseURL string
	secret  []byte
}

func NewLocalStore(root, baseURL, secret string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob root: %w", err)
	}
	return &LocalStore{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  []byte(secret),
	}, nil
}

func (s *LocalStore) Put(ctx context.Context, path string, data []byte) error {
	clean, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(clean), 0o755); err != nil {
		return utils.NewAppError(utils.CodeUploadFailed, "failed to create blob directory", err)
	}
	if err := os.WriteFile(clean, data, 0o644); err != nil {
		return utils.NewAppError(utils.CodeUploadFailed, "failed to write blob", err).
			WithDetail("path", path)
	}
	return nil
}

func (s *LocalStore) SignedURL(path string, ttl time.Duration) (string, error) {
	if _, err := s.resolve(path); err != nil {
		return "", err
	}
	expires := time.Now().Add(ttl).Unix()
	sig := s.sign(path, expires)
	return fmt.Sprintf("%s/blobs/%s?expires=%d&signature=%s",
		s.baseURL, url.PathEscape(path), expires, sig), nil
}

// Verify checks a signature produced by SignedURL. Used by the download
// endpoint.
func (s *LocalStore) Verify(path string, expires int64, signature string) bool {
	if time.Now().Unix() > expires {
		return false
	}
	expected := s.sign(path, expires)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Open returns the blob contents for a verified path.
func (s *LocalStore) Open(path string) ([]byte, error) {
	clean, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(clean)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, utils.NewAppError(utils.CodeNotFound, "blob not found", err).
				WithDetail("path", path)
		}
		return nil, err
	}
	return data, nil
}

func (s *LocalStore) Ping(ctx context.Context) error {
	_, err := os.Stat(s.root)
	return err
}

func (s *LocalStore) Close() error {
	return nil
}

func (s *LocalStore) sign(path string, expires int64) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(path))
	mac.Write([]byte(strconv.FormatInt(expires, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *LocalStore) resolve(path string) (string, error) {
	clean := filepath.Clean("/" + path)
	full := filepath.Join(s.root, clean)
	if !strings.HasPrefix(full, filepath.Clean(s.root)+string(os.PathSeparator)) {
		return "", utils.NewAppError(utils.CodeInvalidInput, "blob path escapes store root", utils.ErrInvalidInput).
			WithDetail("path", path)
	}
	return full, nil
}
