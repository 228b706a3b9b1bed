package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/fsdevblog/lendboard/internal/core"
	"github.com/fsdevblog/lendboard/internal/domain"
)

var ErrUnknownReportKind = errors.New("unknown report kind")

type ReportKind string

const (
	ReportKindLoans        ReportKind = "loans"
	ReportKindTransactions ReportKind = "transactions"
	ReportKindInstallments ReportKind = "installments"
)

// Report - агрегированная сводка по одной из выборок ядра.
type Report struct {
	Kind        ReportKind   `json:"kind"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Summary     core.Summary `json:"summary"`
	Stale       bool         `json:"stale"`
}

type ReportService struct {
	client CoreClient
	log    *logrus.Entry
	cache  snapshotCache[dashboardBundle]
	now    func() time.Time
}

func NewReportService(client CoreClient, log *logrus.Entry, now func() time.Time) *ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportService{
		client: client,
		log:    log,
		now:    now,
	}
}

// Build собирает отчет по выбранной выборке. Неизвестный вид отчета
// отклоняется до обращения к ядру.
func (s *ReportService) Build(ctx context.Context, kind ReportKind) (*Report, error) {
	switch kind {
	case ReportKindLoans, ReportKindTransactions, ReportKindInstallments:
	default:
		return nil, ErrUnknownReportKind
	}

	bundle, stale, err := s.fetchBundle(ctx)
	if err != nil {
		return nil, err
	}

	users := core.BuildUserLookup(bundle.users)
	now := s.now()

	var summary core.Summary
	switch kind {
	case ReportKindLoans:
		views := make([]domain.LoanView, 0, len(bundle.loans))
		for _, rec := range bundle.loans {
			view, issues := core.NormalizeLoan(rec, users)
			logIssues(s.log, "loan", rec.ID, issues)
			views = append(views, view)
		}
		summary = core.Aggregate(views)
	case ReportKindTransactions:
		views := make([]domain.TransactionView, 0, len(bundle.transactions))
		for _, rec := range bundle.transactions {
			view, issues := core.NormalizeTransaction(rec, users)
			logIssues(s.log, "transaction", rec.ID, issues)
			views = append(views, view)
		}
		summary = core.Aggregate(views)
	case ReportKindInstallments:
		loans := core.BuildLoanLookup(bundle.loans, users)
		views := make([]domain.InstallmentView, 0, len(bundle.installments))
		for _, rec := range bundle.installments {
			view, issues := core.NormalizeInstallment(rec, loans, now)
			logIssues(s.log, "installment", rec.ID, issues)
			views = append(views, view)
		}
		summary = core.Aggregate(views)
	}

	return &Report{
		Kind:        kind,
		GeneratedAt: now,
		Summary:     summary,
		Stale:       stale,
	}, nil
}

func (s *ReportService) fetchBundle(ctx context.Context) (dashboardBundle, bool, error) {
	return s.cache.Get(ctx, "reports", func(ctx context.Context) (dashboardBundle, error) {
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
			bundle.installments, err = s.client.Installments(gctx)
			return err
		})

		if err := g.Wait(); err != nil {
			return dashboardBundle{}, fmt.Errorf("fetch reports: %w", err)
		}
		return bundle, nil
	})
}
