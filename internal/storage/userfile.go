package storage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/littleprofessor/internal/player"
)

const storeAttempts = 3

// UserFile stores one encrypted record per line. Records are rewritten
// through a temporary file so a failed save never truncates the original.
type UserFile struct {
	path   string
	cipher *Cipher
}

// NewUserFile creates a store backed by path.
func NewUserFile(path string, c *Cipher) *UserFile {
	return &UserFile{path: path, cipher: c}
}

// Load returns the stored user with the given name, or a fresh user with no
// highscore when none is on record. The file is created if missing.
func (f *UserFile) Load(ctx context.Context, name string) (*player.User, error) {
	users, err := f.readAll()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Name == name {
			log.Info().Str("user", u.Name).Int("highscore", u.Highscore).Msg("user loaded")
			return u, nil
		}
	}
	log.Info().Str("user", name).Msg("new user")
	return player.New(name), nil
}

// Store upserts the user's highscore, keeping every other record. Transient
// file errors are retried; corrupt files are not.
func (f *UserFile) Store(ctx context.Context, u *player.User) error {
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := f.store(u)
		if errors.Is(err, ErrCorruptRecord) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(storeAttempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warn().Err(err).Dur("retry_in", next).Msg("store user")
		}),
	)
	if err != nil {
		return fmt.Errorf("store user %s: %w", u.Name, err)
	}
	log.Info().Str("user", u.Name).Int("highscore", u.Highscore).Msg("user stored")
	return nil
}

func (f *UserFile) store(u *player.User) error {
	users, err := f.readAll()
	if err != nil {
		return err
	}
	updated := false
	for _, stored := range users {
		if stored.Name == u.Name {
			stored.Highscore = u.Highscore
			updated = true
		}
	}
	if !updated {
		users = append(users, &player.User{Name: u.Name, Highscore: u.Highscore})
	}

	var b strings.Builder
	for _, stored := range users {
		record, err := EncodeUser(stored)
		if err != nil {
			return err
		}
		line, err := f.cipher.Encrypt(record)
		if err != nil {
			return err
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *UserFile) readAll() ([]*player.User, error) {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(f.path, os.O_RDONLY|os.O_CREATE, 0o600)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var users []*player.User
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		record, err := f.cipher.Decrypt(line)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.path, err)
		}
		u, err := DecodeUser(record)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.path, err)
		}
		users = append(users, u)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
