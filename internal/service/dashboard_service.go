package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/fsdevblog/lendboard/internal/core"
	"github.com/fsdevblog/lendboard/internal/domain"
)

// DashboardOverview - плитки и графики главной страницы.
type DashboardOverview struct {
	TotalUsers          int
	ActiveLoans         int
	PendingRequests     int
	OverdueInstallments int

	TotalDisbursed     decimal.Decimal
	TotalBalance       decimal.Decimal
	FormattedDisbursed string
	FormattedBalance   string

	LoansByStatus       map[string]int
	MonthlyLoans        []MonthlyLoanCount
	MonthlyTransactions []MonthlyVolume

	Stale bool
}

// MonthlyVolume - обороты транзакций за календарный месяц.
type MonthlyVolume struct {
	Month       string          `json:"month"` // YYYY-MM
	Deposits    decimal.Decimal `json:"deposits"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
}

// MonthlyLoanCount - число заявок за календарный месяц в разрезе исходов.
type MonthlyLoanCount struct {
	Month    string `json:"month"` // YYYY-MM
	Approved int    `json:"approved"`
	Rejected int    `json:"rejected"`
	Pending  int    `json:"pending"`
}

type dashboardBundle struct {
	users        []domain.UserRecord
	loans        []domain.LoanRecord
	transactions []domain.TransactionRecord
	balances     []domain.BalanceRecord
	installments []domain.InstallmentRecord
}

type DashboardService struct {
	client CoreClient
	log    *logrus.Entry
	cache  snapshotCache[dashboardBundle]
	now    func() time.Time
}

func NewDashboardService(client CoreClient, log *logrus.Entry, now func() time.Time) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{
		client: client,
		log:    log,
		now:    now,
	}
}

// Overview собирает все выборки ядра разом и считает показатели дашборда.
func (s *DashboardService) Overview(ctx context.Context) (*DashboardOverview, error) {
	bundle, stale, err := s.fetchBundle(ctx)
	if err != nil {
		return nil, err
	}

	users := core.BuildUserLookup(bundle.users)
	loanLookup := core.BuildLoanLookup(bundle.loans, users)
	now := s.now()

	overview := &DashboardOverview{
		TotalUsers:     len(bundle.users),
		TotalDisbursed: decimal.Zero,
		TotalBalance:   decimal.Zero,
		LoansByStatus:  make(map[string]int),
		Stale:          stale,
	}

	loans := make([]domain.LoanView, 0, len(bundle.loans))
	for _, rec := range bundle.loans {
		view, issues := core.NormalizeLoan(rec, users)
		logIssues(s.log, "loan", rec.ID, issues)
		loans = append(loans, view)

		overview.LoansByStatus[string(view.Status)]++
		switch view.Status {
		case domain.LoanStatusPending:
			overview.PendingRequests++
		case domain.LoanStatusApproved, domain.LoanStatusOngoing:
			overview.ActiveLoans++
			overview.TotalDisbursed = overview.TotalDisbursed.Add(view.Amount)
		case domain.LoanStatusCompleted:
			overview.TotalDisbursed = overview.TotalDisbursed.Add(view.Amount)
		}
	}
	overview.MonthlyLoans = monthlyLoanCounts(loans)

	for _, rec := range bundle.installments {
		view, issues := core.NormalizeInstallment(rec, loanLookup, now)
		logIssues(s.log, "installment", rec.ID, issues)
		if view.Status == domain.InstallmentStatusOverdue {
			overview.OverdueInstallments++
		}
	}

	for _, rec := range bundle.balances {
		view, issues := core.NormalizeBalance(rec, users)
		logIssues(s.log, "balance", rec.ID, issues)
		overview.TotalBalance = overview.TotalBalance.Add(view.Total)
	}

	overview.MonthlyTransactions = s.monthlyVolumes(bundle, users)
	overview.FormattedDisbursed = core.FormatIDR(overview.TotalDisbursed)
	overview.FormattedBalance = core.FormatIDR(overview.TotalBalance)
	return overview, nil
}

// monthlyLoanCounts группирует заявки по месяцу подачи для графика исходов.
// Займы в работе и закрытые считаются одобренными. Займы с невалидной датой
// в график не попадают.
func monthlyLoanCounts(loans []domain.LoanView) []MonthlyLoanCount {
	byMonth := make(map[string]*MonthlyLoanCount)
	for _, view := range loans {
		if view.DateInvalid {
			continue
		}

		month := view.CreatedAt.Format("2006-01")
		count, ok := byMonth[month]
		if !ok {
			count = &MonthlyLoanCount{Month: month}
			byMonth[month] = count
		}

		switch view.Status {
		case domain.LoanStatusPending:
			count.Pending++
		case domain.LoanStatusRejected:
			count.Rejected++
		case domain.LoanStatusApproved, domain.LoanStatusOngoing, domain.LoanStatusCompleted:
			count.Approved++
		}
	}

	counts := make([]MonthlyLoanCount, 0, len(byMonth))
	for _, count := range byMonth {
		counts = append(counts, *count)
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Month < counts[j].Month
	})
	return counts
}

// monthlyVolumes группирует обороты транзакций по календарным месяцам,
// от старых к новым. Транзакции с невалидной датой в график не попадают.
func (s *DashboardService) monthlyVolumes(bundle dashboardBundle, users core.UserLookup) []MonthlyVolume {
	byMonth := make(map[string]*MonthlyVolume)
	for _, rec := range bundle.transactions {
		view, issues := core.NormalizeTransaction(rec, users)
		logIssues(s.log, "transaction", rec.ID, issues)
		if view.DateInvalid {
			continue
		}

		month := view.CreatedAt.Format("2006-01")
		volume, ok := byMonth[month]
		if !ok {
			volume = &MonthlyVolume{
				Month:       month,
				Deposits:    decimal.Zero,
				Withdrawals: decimal.Zero,
			}
			byMonth[month] = volume
		}

		switch view.Type {
		case domain.TransactionTypeDeposit:
			volume.Deposits = volume.Deposits.Add(view.Amount)
		case domain.TransactionTypeWithdraw:
			volume.Withdrawals = volume.Withdrawals.Add(view.Amount)
		}
	}

	volumes := make([]MonthlyVolume, 0, len(byMonth))
	for _, volume := range byMonth {
		volumes = append(volumes, *volume)
	}
	sort.Slice(volumes, func(i, j int) bool {
		return volumes[i].Month < volumes[j].Month
	})
	return volumes
}

func (s *DashboardService) fetchBundle(ctx context.Context) (dashboardBundle, bool, error) {
	return s.cache.Get(ctx, "dashboard", func(ctx context.Context) (dashboardBundle, error) {
		var bundle dashboardBundle

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			bundle.users, err = s.client.Users(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			bundle.loans, err = s.client.Loans(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			bundle.transactions, err = s.client.Transactions(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			bundle.balances, err = s.client.Balances(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			bundle.installments, err = s.client.Installments(gctx)
			return err
		})

		if err := g.Wait(); err != nil {
			return dashboardBundle{}, fmt.Errorf("fetch dashboard: %w", err)
		}
		return bundle, nil
	})
}
