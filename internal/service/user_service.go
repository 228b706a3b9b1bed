package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/lendboard/internal/core"
	"github.com/fsdevblog/lendboard/internal/domain"
	"github.com/fsdevblog/lendboard/internal/transport/lendcore"
)

type UserList struct {
	Items   []domain.UserView
	Summary core.Summary
	Stale   bool
}

type CreateUserArgs struct {
	Name     string
	Email    string
	Phone    string
	Role     domain.RoleType
	Password string
}

type UpdateUserArgs struct {
	Name  string
	Email string
	Phone string
	Role  domain.RoleType
}

type UserService struct {
	client CoreClient
	log    *logrus.Entry
	cache  snapshotCache[[]domain.UserRecord]
}

func NewUserService(client CoreClient, log *logrus.Entry) *UserService {
	return &UserService{
		client: client,
		log:    log,
	}
}

// List возвращает участников через общий конвейер. Категория выборки - роль.
func (s *UserService) List(ctx context.Context, q ListQuery) (*UserList, error) {
	records, stale, err := s.cache.Get(ctx, "users", func(ctx context.Context) ([]domain.UserRecord, error) {
		users, fetchErr := s.client.Users(ctx)
		if fetchErr != nil {
			return nil, fmt.Errorf("fetch users: %w", fetchErr)
		}
		return users, nil
	})
	if err != nil {
		return nil, err
	}

	views := make([]domain.UserView, 0, len(records))
	for _, rec := range records {
		view, issues := core.NormalizeUser(rec)
		logIssues(s.log, "user", rec.ID, issues)
		views = append(views, view)
	}

	items, summary := runPipeline(views, q)
	return &UserList{Items: items, Summary: summary, Stale: stale}, nil
}

func (s *UserService) Find(ctx context.Context, id string) (*domain.UserView, error) {
	record, err := s.client.FindUser(ctx, id)
	if err != nil {
		if lendcore.IsNotFound(err) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return s.toView(record), nil
}

func (s *UserService) Create(ctx context.Context, args CreateUserArgs) (*domain.UserView, error) {
	record, err := s.client.AddUser(ctx, lendcore.AddUserArgs{
		Name:     args.Name,
		Email:    args.Email,
		Phone:    args.Phone,
		Role:     string(args.Role),
		Password: args.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return s.toView(record), nil
}

func (s *UserService) Update(ctx context.Context, id string, args UpdateUserArgs) (*domain.UserView, error) {
	record, err := s.client.UpdateUser(ctx, id, lendcore.UpdateUserArgs{
		Name:  args.Name,
		Email: args.Email,
		Phone: args.Phone,
		Role:  string(args.Role),
	})
	if err != nil {
		if lendcore.IsNotFound(err) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return s.toView(record), nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteUser(ctx, id); err != nil {
		if lendcore.IsNotFound(err) {
			return domain.ErrRecordNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (s *UserService) toView(record domain.UserRecord) *domain.UserView {
	view, issues := core.NormalizeUser(record)
	logIssues(s.log, "user", record.ID, issues)
	return &view
}
