package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/fsdevblog/lendboard/internal/core"
	"github.com/fsdevblog/lendboard/internal/domain"
)

var ErrUnknownLoanAction = errors.New("unknown loan action")

// LoanTab - вкладка списка займов.
type LoanTab string

const (
	LoanTabAll      LoanTab = "all"
	LoanTabRequests LoanTab = "requests"
	LoanTabActive   LoanTab = "active"
	LoanTabHistory  LoanTab = "history"
)

type LoanQuery struct {
	ListQuery
	Tab LoanTab
}

type LoanList struct {
	Items   []domain.LoanView
	Summary core.Summary
	// Stale взводится, когда ядро недоступно и отдан последний удачный снимок.
	Stale bool
}

type loanBundle struct {
	loans []domain.LoanRecord
	users core.UserLookup
}

type LoanService struct {
	client CoreClient
	log    *logrus.Entry
	cache  snapshotCache[loanBundle]
}

func NewLoanService(client CoreClient, log *logrus.Entry) *LoanService {
	return &LoanService{
		client: client,
		log:    log,
	}
}

// List возвращает займы, прогнанные через конвейер: вкладка, поиск и статус,
// сортировка, сводка.
func (s *LoanService) List(ctx context.Context, q LoanQuery) (*LoanList, error) {
	bundle, stale, err := s.fetchBundle(ctx)
	if err != nil {
		return nil, err
	}

	views := s.normalize(bundle)
	views = filterLoanTab(views, q.Tab)

	items, summary := runPipeline(views, q.ListQuery)
	return &LoanList{Items: items, Summary: summary, Stale: stale}, nil
}

// ApplyAction выполняет административное действие над займом. Переход
// проверяется до обращения к ядру: при нелегальном переходе запрос в ядро
// не уходит и состояние займа не меняется.
func (s *LoanService) ApplyAction(
	ctx context.Context,
	id string,
	action core.LoanAction,
) (*domain.LoanView, error) {
	target, ok := core.LoanActionTarget(action)
	if !ok {
		return nil, ErrUnknownLoanAction
	}

	// Мутации всегда работают со свежими данными, мимо снимка.
	var loans []domain.LoanRecord
	var users core.UserLookup

	g, gctx := errgroup.WithContext(ctx)
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
		return nil, fmt.Errorf("loan action %s: %w", action, err)
	}

	current, found := findLoan(loans, id)
	if !found {
		return nil, domain.ErrRecordNotFound
	}

	from := domain.LoanStatusType(strings.ToLower(current.Status))
	if err := core.ValidateLoanTransition(from, target); err != nil {
		return nil, err
	}

	updated, err := s.client.UpdateLoanStatus(ctx, id, target)
	if err != nil {
		return nil, fmt.Errorf("loan action %s: %w", action, err)
	}

	view, issues := core.NormalizeLoan(updated, users)
	logIssues(s.log, "loan", updated.ID, issues)
	return &view, nil
}

func (s *LoanService) Approve(ctx context.Context, id string) (*domain.LoanView, error) {
	return s.ApplyAction(ctx, id, core.ActionApprove)
}

func (s *LoanService) Reject(ctx context.Context, id string) (*domain.LoanView, error) {
	return s.ApplyAction(ctx, id, core.ActionReject)
}

func (s *LoanService) fetchBundle(ctx context.Context) (loanBundle, bool, error) {
	return s.cache.Get(ctx, "loans", func(ctx context.Context) (loanBundle, error) {
		var bundle loanBundle

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			bundle.loans, err = s.client.Loans(gctx)
			return err
		})
		g.Go(func() error {
			records, err := s.client.Users(gctx)
			bundle.users = core.BuildUserLookup(records)
			return err
		})

		if err := g.Wait(); err != nil {
			return loanBundle{}, fmt.Errorf("fetch loans: %w", err)
		}
		return bundle, nil
	})
}

func (s *LoanService) normalize(bundle loanBundle) []domain.LoanView {
	views := make([]domain.LoanView, 0, len(bundle.loans))
	for _, rec := range bundle.loans {
		view, issues := core.NormalizeLoan(rec, bundle.users)
		logIssues(s.log, "loan", rec.ID, issues)
		views = append(views, view)
	}
	return views
}

func filterLoanTab(views []domain.LoanView, tab LoanTab) []domain.LoanView {
	var statuses []domain.LoanStatusType
	switch tab {
	case LoanTabRequests:
		statuses = []domain.LoanStatusType{domain.LoanStatusPending}
	case LoanTabActive:
		statuses = []domain.LoanStatusType{domain.LoanStatusApproved, domain.LoanStatusOngoing}
	case LoanTabHistory:
		statuses = []domain.LoanStatusType{domain.LoanStatusCompleted, domain.LoanStatusRejected}
	case LoanTabAll:
		return views
	default:
		return views
	}

	result := make([]domain.LoanView, 0, len(views))
	for _, view := range views {
		for _, status := range statuses {
			if view.Status == status {
				result = append(result, view)
				break
			}
		}
	}
	return result
}

func findLoan(loans []domain.LoanRecord, id string) (domain.LoanRecord, bool) {
	for _, loan := range loans {
		if loan.ID == id {
			return loan, true
		}
	}
	return domain.LoanRecord{}, false
}
