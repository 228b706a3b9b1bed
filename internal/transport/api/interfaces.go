package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/fsdevblog/lendboard/internal/core"
	"github.com/fsdevblog/lendboard/internal/domain"
	"github.com/fsdevblog/lendboard/internal/service"
)

// AuthServicer интерфейс исключительно для моков.
type AuthServicer interface {
	SignIn(ctx context.Context, name, password string) (*domain.UserView, string, error)
}

type LoanServicer interface {
	List(ctx context.Context, q service.LoanQuery) (*service.LoanList, error)
	ApplyAction(ctx context.Context, id string, action core.LoanAction) (*domain.LoanView, error)
}

type UserServicer interface {
	List(ctx context.Context, q service.ListQuery) (*service.UserList, error)
	Find(ctx context.Context, id string) (*domain.UserView, error)
	Create(ctx context.Context, args service.CreateUserArgs) (*domain.UserView, error)
	Update(ctx context.Context, id string, args service.UpdateUserArgs) (*domain.UserView, error)
	Delete(ctx context.Context, id string) error
}

type BalanceServicer interface {
	Overview(ctx context.Context, q service.ListQuery) (*service.BalanceOverview, error)
	Transactions(ctx context.Context, q service.ListQuery) (*service.TransactionList, error)
	AddTransaction(ctx context.Context, args service.AddTransactionArgs) (*domain.TransactionView, error)
}

type InstallmentServicer interface {
	List(ctx context.Context, q service.ListQuery) (*service.InstallmentList, error)
	RecordPayment(ctx context.Context, id string, paidAt time.Time) (*domain.InstallmentView, error)
}

type DashboardServicer interface {
	Overview(ctx context.Context) (*service.DashboardOverview, error)
}

type ReportServicer interface {
	Build(ctx context.Context, kind service.ReportKind) (*service.Report, error)
}
