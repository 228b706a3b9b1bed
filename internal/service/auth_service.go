package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/lendboard/internal/core"
	"github.com/fsdevblog/lendboard/internal/domain"
	"github.com/fsdevblog/lendboard/internal/transport/api/tokens"
	"github.com/fsdevblog/lendboard/internal/transport/lendcore"
)

const SessionTokenExpire = 1 * time.Hour

// AuthService проверяет учетные данные через ядро и выдает сессионный jwt.
// Пароли дашборд не хранит и не сверяет - этим занимается ядро.
type AuthService struct {
	client         CoreClient
	jwtTokenSecret []byte
}

func NewAuthService(client CoreClient, jwtTokenSecret []byte) *AuthService {
	return &AuthService{
		client:         client,
		jwtTokenSecret: jwtTokenSecret,
	}
}

// SignIn аутентифицирует администратора. Ядро на signin отвечает только
// токеном, поэтому профиль добирается отдельным запросом списка
// пользователей. Учетные данные, отвергнутые ядром, дают
// ErrInvalidCredentials; валидный пользователь без админской роли -
// ErrAccessDenied.
func (s *AuthService) SignIn(ctx context.Context, name, password string) (*domain.UserView, string, error) {
	if _, err := s.client.SignIn(ctx, lendcore.SignInArgs{Name: name, Password: password}); err != nil {
		if lendcore.IsUnauthorized(err) || lendcore.IsNotFound(err) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("sign in: %w", err)
	}

	record, found, err := s.findByName(ctx, name)
	if err != nil {
		return nil, "", fmt.Errorf("sign in: %w", err)
	}
	if !found {
		return nil, "", domain.ErrAccessDenied
	}

	view, _ := core.NormalizeUser(record)
	if view.Role != domain.RoleAdmin {
		return nil, "", domain.ErrAccessDenied
	}

	token, tokenErr := tokens.GenerateSessionJWT(view.ID, string(view.Role), SessionTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("sign in: %w", tokenErr)
	}
	return &view, token, nil
}

func (s *AuthService) findByName(ctx context.Context, name string) (domain.UserRecord, bool, error) {
	records, err := s.client.Users(ctx)
	if err != nil {
		return domain.UserRecord{}, false, err
	}
	for _, record := range records {
		if record.Name == name {
			return record, true, nil
		}
	}
	return domain.UserRecord{}, false, nil
}
