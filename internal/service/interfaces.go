package service

import (
	"context"
	"time"

	"github.com/fsdevblog/lendboard/internal/domain"
	"github.com/fsdevblog/lendboard/internal/transport/lendcore"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// CoreClient - клиент REST API ядра кредитования. Единственный источник
// данных дашборда; своего хранилища у сервиса нет.
type CoreClient interface {
	SignIn(ctx context.Context, args lendcore.SignInArgs) (string, error)

	Users(ctx context.Context) ([]domain.UserRecord, error)
	FindUser(ctx context.Context, id string) (domain.UserRecord, error)
	AddUser(ctx context.Context, args lendcore.AddUserArgs) (domain.UserRecord, error)
	UpdateUser(ctx context.Context, id string, args lendcore.UpdateUserArgs) (domain.UserRecord, error)
	DeleteUser(ctx context.Context, id string) error

	Loans(ctx context.Context) ([]domain.LoanRecord, error)
	UpdateLoanStatus(ctx context.Context, id string, status domain.LoanStatusType) (domain.LoanRecord, error)

	BalanceTotal(ctx context.Context) (domain.BalanceTotalRecord, error)
	Balances(ctx context.Context) ([]domain.BalanceRecord, error)
	Transactions(ctx context.Context) ([]domain.TransactionRecord, error)
	AddTransaction(ctx context.Context, args lendcore.AddTransactionArgs) (domain.TransactionRecord, error)

	Installments(ctx context.Context) ([]domain.InstallmentRecord, error)
	RecordInstallmentPayment(ctx context.Context, id string, paidAt time.Time) (domain.InstallmentRecord, error)
}
