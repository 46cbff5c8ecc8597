package database

import (
	"context"

	"go.uber.org/zap"

	"cropai/internal/infrastructure/i18n"
	"cropai/internal/ports/output"
)

// UserPreferenceStore adapts a user row's language column to the
// resolver's PreferenceStore contract. Lookups and writes are
// best-effort: database trouble surfaces in logs, never to the locale
// session.
type UserPreferenceStore struct {
	users  output.UserRepository
	userID uint
	log    *zap.Logger
}

var _ i18n.PreferenceStore = (*UserPreferenceStore)(nil)

func NewUserPreferenceStore(users output.UserRepository, userID uint, log *zap.Logger) *UserPreferenceStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserPreferenceStore{users: users, userID: userID, log: log}
}

func (s *UserPreferenceStore) Load(ctx context.Context) (string, bool) {
	user, err := s.users.FindByID(ctx, s.userID)
	if err != nil {
		s.log.Warn("language preference read failed", zap.Uint("user_id", s.userID), zap.Error(err))
		return "", false
	}
	if user.Language == "" {
		return "", false
	}
	return user.Language, true
}

func (s *UserPreferenceStore) Store(ctx context.Context, code string) error {
	return s.users.UpdateLanguage(ctx, s.userID, code)
}
