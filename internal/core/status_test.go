package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/lendboard/internal/core"
	"github.com/fsdevblog/lendboard/internal/domain"
)

type StatusTestSuite struct {
	suite.Suite
}

func (s *StatusTestSuite) TestValidateLoanTransition() {
	testCases := []struct {
		name    string
		from    domain.LoanStatusType
		to      domain.LoanStatusType
		wantErr bool
	}{
		{name: "pending to approved", from: domain.LoanStatusPending, to: domain.LoanStatusApproved},
		{name: "pending to rejected", from: domain.LoanStatusPending, to: domain.LoanStatusRejected},
		{name: "approved to ongoing", from: domain.LoanStatusApproved, to: domain.LoanStatusOngoing},
		{name: "ongoing to completed", from: domain.LoanStatusOngoing, to: domain.LoanStatusCompleted},

		{name: "pending to completed", from: domain.LoanStatusPending, to: domain.LoanStatusCompleted, wantErr: true},
		{name: "approved to approved", from: domain.LoanStatusApproved, to: domain.LoanStatusApproved, wantErr: true},
		{name: "approved to rejected", from: domain.LoanStatusApproved, to: domain.LoanStatusRejected, wantErr: true},
		{name: "rejected is terminal", from: domain.LoanStatusRejected, to: domain.LoanStatusApproved, wantErr: true},
		{name: "completed is terminal", from: domain.LoanStatusCompleted, to: domain.LoanStatusOngoing, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := core.ValidateLoanTransition(tc.from, tc.to)
			if tc.wantErr {
				s.Require().Error(err)

				var transitionErr *domain.InvalidTransitionError
				s.Require().ErrorAs(err, &transitionErr)
				s.Equal(tc.from, transitionErr.From)
				s.Equal(tc.to, transitionErr.To)
				return
			}
			s.NoError(err)
		})
	}
}

func (s *StatusTestSuite) TestAllowedLoanActions() {
	s.Equal(
		[]core.LoanAction{core.ActionApprove, core.ActionReject},
		core.AllowedLoanActions(domain.LoanStatusPending),
	)
	s.Equal([]core.LoanAction{core.ActionMarkOngoing}, core.AllowedLoanActions(domain.LoanStatusApproved))
	s.Equal([]core.LoanAction{core.ActionMarkCompleted}, core.AllowedLoanActions(domain.LoanStatusOngoing))
	s.Nil(core.AllowedLoanActions(domain.LoanStatusRejected))
	s.Nil(core.AllowedLoanActions(domain.LoanStatusCompleted))
}

func (s *StatusTestSuite) TestLoanActionTarget() {
	target, ok := core.LoanActionTarget(core.ActionApprove)
	s.Require().True(ok)
	s.Equal(domain.LoanStatusApproved, target)

	_, ok = core.LoanActionTarget(core.LoanAction("explode"))
	s.False(ok)
}

func (s *StatusTestSuite) TestClassifyInstallment() {
	now := time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC)
	pastDue := time.Date(2023, time.August, 1, 0, 0, 0, 0, time.UTC)
	futureDue := time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		status domain.InstallmentStatusType
		due    time.Time
		want   domain.InstallmentStatusType
	}{
		{name: "pending past due becomes overdue", status: domain.InstallmentStatusPending, due: pastDue, want: domain.InstallmentStatusOverdue},
		{name: "pending future due stays pending", status: domain.InstallmentStatusPending, due: futureDue, want: domain.InstallmentStatusPending},
		{name: "paid is terminal even past due", status: domain.InstallmentStatusPaid, due: pastDue, want: domain.InstallmentStatusPaid},
		{name: "stored overdue rechecked against now", status: domain.InstallmentStatusOverdue, due: futureDue, want: domain.InstallmentStatusPending},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, core.ClassifyInstallment(tc.status, tc.due, now))
		})
	}
}

func (s *StatusTestSuite) TestRecordPayment() {
	paidAt := time.Date(2023, time.September, 5, 0, 0, 0, 0, time.UTC)

	view := domain.InstallmentView{Status: domain.InstallmentStatusOverdue}
	s.Require().NoError(core.RecordPayment(&view, paidAt))

	// оплата после срока всё равно переводит платеж в paid
	s.Equal(domain.InstallmentStatusPaid, view.Status)
	s.Require().NotNil(view.PaidDate)
	s.Equal(paidAt, *view.PaidDate)
	s.Equal("Paid", view.Badge.Label)
}

func (s *StatusTestSuite) TestRecordPaymentRequiresDate() {
	view := domain.InstallmentView{Status: domain.InstallmentStatusPending}

	err := core.RecordPayment(&view, time.Time{})
	s.Require().ErrorIs(err, domain.ErrPaidDateRequired)
	s.Equal(domain.InstallmentStatusPending, view.Status)
	s.Nil(view.PaidDate)
}

func (s *StatusTestSuite) TestBadges() {
	s.Equal(domain.Badge{Label: "Pending", ColorClass: "yellow", IconKind: "clock"}, core.LoanBadge(domain.LoanStatusPending))
	s.Equal(domain.Badge{Label: "Overdue", ColorClass: "red", IconKind: "x"}, core.InstallmentBadge(domain.InstallmentStatusOverdue))
	s.Equal(domain.Badge{Label: "deposit", ColorClass: "green", IconKind: "arrow-up"}, core.TransactionBadge(domain.TransactionTypeDeposit))
}

func TestStatusTestSuite(t *testing.T) {
	suite.Run(t, new(StatusTestSuite))
}
