package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/fsdevblog/lendboard/internal/core"
	"github.com/fsdevblog/lendboard/internal/domain"
	"github.com/fsdevblog/lendboard/internal/transport/lendcore"
)

type BalanceOverview struct {
	Balances []domain.BalanceView
	Summary  core.Summary

	TotalBalance       decimal.Decimal
	TotalDeposits      decimal.Decimal
	TotalWithdrawals   decimal.Decimal
	FormattedBalance   string
	FormattedDeposits  string
	FormattedWithdraws string

	Stale bool
}

type TransactionList struct {
	Items   []domain.TransactionView
	Summary core.Summary
	Stale   bool
}

type AddTransactionArgs struct {
	UserID      string
	Amount      decimal.Decimal
	Type        domain.TransactionType
	Description string
}

type balanceBundle struct {
	balances     []domain.BalanceRecord
	transactions []domain.TransactionRecord
	users        core.UserLookup
	total        domain.BalanceTotalRecord
}

// BalanceService обслуживает страницу балансов: сводные показатели,
// список балансов и журнал транзакций.
type BalanceService struct {
	client CoreClient
	log    *logrus.Entry
	cache  snapshotCache[balanceBundle]
	now    func() time.Time
}

// NewBalanceService создает сервис балансов. now задает дату проведения
// ручных транзакций; nil означает time.Now.
func NewBalanceService(client CoreClient, log *logrus.Entry, now func() time.Time) *BalanceService {
	if now == nil {
		now = time.Now
	}
	return &BalanceService{
		client: client,
		log:    log,
		now:    now,
	}
}

// Overview собирает сводку балансов: список, прогнанный через конвейер,
// общий остаток и обороты по направлениям.
func (s *BalanceService) Overview(ctx context.Context, q ListQuery) (*BalanceOverview, error) {
	bundle, stale, err := s.fetchBundle(ctx)
	if err != nil {
		return nil, err
	}

	balances := make([]domain.BalanceView, 0, len(bundle.balances))
	for _, rec := range bundle.balances {
		view, issues := core.NormalizeBalance(rec, bundle.users)
		logIssues(s.log, "balance", rec.ID, issues)
		balances = append(balances, view)
	}

	overview := &BalanceOverview{
		TotalBalance:     totalBalance(bundle),
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
		Stale:            stale,
	}
	for _, view := range s.normalizeTransactions(bundle) {
		switch view.Type {
		case domain.TransactionTypeDeposit:
			overview.TotalDeposits = overview.TotalDeposits.Add(view.Amount)
		case domain.TransactionTypeWithdraw:
			overview.TotalWithdrawals = overview.TotalWithdrawals.Add(view.Amount)
		}
	}

	overview.Balances, overview.Summary = runPipeline(balances, q)
	overview.FormattedBalance = core.FormatIDR(overview.TotalBalance)
	overview.FormattedDeposits = core.FormatIDR(overview.TotalDeposits)
	overview.FormattedWithdraws = core.FormatIDR(overview.TotalWithdrawals)
	return overview, nil
}

// Transactions возвращает журнал транзакций через общий конвейер.
// Категория выборки - тип транзакции, псевдоним "withdrawal" приводится
// к каноническому "withdraw".
func (s *BalanceService) Transactions(ctx context.Context, q ListQuery) (*TransactionList, error) {
	bundle, stale, err := s.fetchBundle(ctx)
	if err != nil {
		return nil, err
	}

	if q.Category != "" && q.Category != core.CategoryAll {
		q.Category = string(core.NormalizeTransactionType(q.Category))
	}

	items, summary := runPipeline(s.normalizeTransactions(bundle), q)
	return &TransactionList{Items: items, Summary: summary, Stale: stale}, nil
}

// AddTransaction проводит ручную транзакцию через ядро. Датой проведения
// становится текущий момент - клиент ее не передает.
func (s *BalanceService) AddTransaction(
	ctx context.Context,
	args AddTransactionArgs,
) (*domain.TransactionView, error) {
	record, err := s.client.AddTransaction(ctx, lendcore.AddTransactionArgs{
		UserID:      args.UserID,
		Amount:      args.Amount.String(),
		Type:        string(args.Type),
		Date:        s.now().UTC().Format(time.RFC3339),
		Description: args.Description,
	})
	if err != nil {
		if lendcore.IsNotFound(err) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("add transaction: %w", err)
	}

	users, err := s.client.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("add transaction: %w", err)
	}

	view, issues := core.NormalizeTransaction(record, core.BuildUserLookup(users))
	logIssues(s.log, "transaction", record.ID, issues)
	return &view, nil
}

func (s *BalanceService) fetchBundle(ctx context.Context) (balanceBundle, bool, error) {
	return s.cache.Get(ctx, "balances", func(ctx context.Context) (balanceBundle, error) {
		var bundle balanceBundle

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			bundle.balances, err = s.client.Balances(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			bundle.transactions, err = s.client.Transactions(gctx)
			return err
		})
		g.Go(func() error {
			records, err := s.client.Users(gctx)
			bundle.users = core.BuildUserLookup(records)
			return err
		})
		g.Go(func() error {
			var err error
			bundle.total, err = s.client.BalanceTotal(gctx)
			return err
		})

		if err := g.Wait(); err != nil {
			return balanceBundle{}, fmt.Errorf("fetch balances: %w", err)
		}
		return bundle, nil
	})
}

// totalBalance берет суммарный остаток из ядра. Если ядро прислало
// не-число - откатываемся на сложение остатков по счетам.
func totalBalance(bundle balanceBundle) decimal.Decimal {
	total, err := decimal.NewFromString(bundle.total.TotalBalance.String())
	if err == nil {
		return total
	}

	total = decimal.Zero
	for _, rec := range bundle.balances {
		value, parseErr := decimal.NewFromString(rec.TotalBalance)
		if parseErr != nil {
			continue
		}
		total = total.Add(value)
	}
	return total
}

func (s *BalanceService) normalizeTransactions(bundle balanceBundle) []domain.TransactionView {
	views := make([]domain.TransactionView, 0, len(bundle.transactions))
	for _, rec := range bundle.transactions {
		view, issues := core.NormalizeTransaction(rec, bundle.users)
		logIssues(s.log, "transaction", rec.ID, issues)
		views = append(views, view)
	}
	return views
}
