package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/libadmin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/libadmin/internal/common"
)

const lastUsernameKey = "lastUsername"

// CredentialStore persists the bearer token, and nothing else about the
// session, under common.AccessTokenKey.
type CredentialStore struct {
	repo metadata.Repository
}

func NewCredentialStore(repo metadata.Repository) *CredentialStore {
	return &CredentialStore{repo: repo}
}

// Token returns the stored token, or "" when none is stored.
func (s *CredentialStore) Token(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, common.AccessTokenKey)
	if err != nil {
		return "", fmt.Errorf("read credential: %w", err)
	}
	return string(v), nil
}

// SetToken replaces the stored token in one write.
func (s *CredentialStore) SetToken(ctx context.Context, token string) error {
	if err := s.repo.Set(ctx, common.AccessTokenKey, []byte(token)); err != nil {
		return fmt.Errorf("write credential: %w", err)
	}
	return nil
}

// DeleteToken removes the stored token. Deleting an absent token is not an error.
func (s *CredentialStore) DeleteToken(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.AccessTokenKey); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

// SaveLogin stores the token together with the username that obtained it,
// in a single transaction.
func (s *CredentialStore) SaveLogin(ctx context.Context, token, username string) error {
	err := s.repo.SetMany(ctx, map[string][]byte{
		common.AccessTokenKey: []byte(token),
		lastUsernameKey:       []byte(username),
	})
	if err != nil {
		return fmt.Errorf("write credential: %w", err)
	}
	return nil
}

// LastUsername returns the username of the most recent successful login.
func (s *CredentialStore) LastUsername(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, lastUsernameKey)
	if err != nil {
		return "", fmt.Errorf("read last username: %w", err)
	}
	return string(v), nil
}
