package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/fsdevblog/lendboard/internal/core"
	"github.com/fsdevblog/lendboard/internal/domain"
	"github.com/fsdevblog/lendboard/internal/transport/lendcore"
)

type InstallmentList struct {
	Items   []domain.InstallmentView
	Summary core.Summary
	Stale   bool
}

type installmentBundle struct {
	installments []domain.InstallmentRecord
	loans        core.LoanLookup
}

// InstallmentService обслуживает график платежей. Статус overdue производный,
// поэтому классификация выполняется на каждом чтении относительно текущего
// момента now.
type InstallmentService struct {
	client CoreClient
	log    *logrus.Entry
	cache  snapshotCache[installmentBundle]
	now    func() time.Time
}

// NewInstallmentService создает сервис платежей. now позволяет тестам
// зафиксировать момент классификации; nil означает time.Now.
func NewInstallmentService(client CoreClient, log *logrus.Entry, now func() time.Time) *InstallmentService {
	if now == nil {
		now = time.Now
	}
	return &InstallmentService{
		client: client,
		log:    log,
		now:    now,
	}
}

// List возвращает платежи через общий конвейер. Категория выборки -
// производный статус платежа.
func (s *InstallmentService) List(ctx context.Context, q ListQuery) (*InstallmentList, error) {
	bundle, stale, err := s.fetchBundle(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]domain.InstallmentView, 0, len(bundle.installments))
	for _, rec := range bundle.installments {
		view, issues := core.NormalizeInstallment(rec, bundle.loans, now)
		logIssues(s.log, "installment", rec.ID, issues)
		views = append(views, view)
	}

	items, summary := runPipeline(views, q)
	return &InstallmentList{Items: items, Summary: summary, Stale: stale}, nil
}

// RecordPayment фиксирует оплату платежа. Дата оплаты обязательна; без нее
// запрос в ядро не уходит. Оплата переводит платеж в paid безусловно, даже
// если зафиксирована после срока.
func (s *InstallmentService) RecordPayment(
	ctx context.Context,
	id string,
	paidAt time.Time,
) (*domain.InstallmentView, error) {
	if paidAt.IsZero() {
		return nil, domain.ErrPaidDateRequired
	}

	record, err := s.client.RecordInstallmentPayment(ctx, id, paidAt)
	if err != nil {
		if lendcore.IsNotFound(err) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("record payment: %w", err)
	}

	bundle, _, err := s.fetchBundle(ctx)
	if err != nil {
		return nil, err
	}

	view, issues := core.NormalizeInstallment(record, bundle.loans, s.now())
	logIssues(s.log, "installment", record.ID, issues)
	return &view, nil
}

func (s *InstallmentService) fetchBundle(ctx context.Context) (installmentBundle, bool, error) {
	return s.cache.Get(ctx, "installments", func(ctx context.Context) (installmentBundle, error) {
		var bundle installmentBundle
		var loans []domain.LoanRecord
		var users core.UserLookup

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			bundle.installments, err = s.client.Installments(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			loans, err = s.client.Loans(gctx)
			return err
		})
		g.Go(func() error {
			records, err := s.client.Users(gctx)
			users = core.BuildUserLookup(records)
			return err
		})

		if err := g.Wait(); err != nil {
			return installmentBundle{}, fmt.Errorf("fetch installments: %w", err)
		}

		bundle.loans = core.BuildLoanLookup(loans, users)
		return bundle, nil
	})
}
