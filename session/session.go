// Package session persists the authenticated user's bearer token and minimal
// profile between invocations. The session file is the client-side analogue
// of browser local storage: written at login, read at the start of every
// outgoing request, and cleared on logout or when the backend rejects the
// token with a 401.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MAPO-UPTC/mapo-cli/pkg/models"
	"gopkg.in/yaml.v3"
)

// Session is the persisted credential state.
type Session struct {
	AccessToken string      `yaml:"access_token"`
	TokenType   string      `yaml:"token_type"`
	User        models.User `yaml:"user"`
	CreatedAt   time.Time   `yaml:"created_at"`
}

// filePath returns the path to the session file under the user config dir.
func filePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config directory: %w", err)
	}
	return filepath.Join(configDir, "mapo", "session.yml"), nil
}

// Load loads the persisted session. Returns nil (not an error) when no
// session file exists, i.e. the user is logged out.
func Load() (*Session, error) {
	path, err := filePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var sess Session
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}

	if sess.AccessToken == "" {
		return nil, nil
	}

	return &sess, nil
}

// Save persists the session. The file is user-readable only since it holds
// the bearer token.
func Save(sess *Session) error {
	path, err := filePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := yaml.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

// Clear removes the persisted session. Clearing an absent session is not an
// error.
func Clear() error {
	path, err := filePath()
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// Token returns the persisted bearer token, or "" when logged out. Errors
// reading the file are treated as logged out; the backend will reject the
// request anyway.
func Token() string {
	sess, err := Load()
	if err != nil || sess == nil {
		return ""
	}
	return sess.AccessToken
}
