package service

import (
	"errors"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/lendboard/internal/core"
	"github.com/fsdevblog/lendboard/internal/domain"
	"github.com/fsdevblog/lendboard/internal/service/mocks"
)

func discardLogger() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log.WithField("service", "test")
}

type LoanServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockClient  *mocks.MockCoreClient
	loanService *LoanService
}

func TestLoanServiceSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}

func (s *LoanServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClient = mocks.NewMockCoreClient(s.mockCtrl)
	s.loanService = NewLoanService(s.mockClient, discardLogger())
}

func (s *LoanServiceTestSuite) loanRecords() []domain.LoanRecord {
	return []domain.LoanRecord{
		{
			ID: "aaaa1111-0000", UserID: "user-1", Amount: "500", InterestFee: "50",
			TotalDue: "550", TotalPaid: "0", Status: "PENDING", Purpose: "Modal usaha",
			CreatedAt: "2023-06-01T00:00:00Z",
		}, {
			ID: "bbbb2222-0000", UserID: "user-2", Amount: "100", InterestFee: "10",
			TotalDue: "110", TotalPaid: "0", Status: "ONGOING", Purpose: "Renovasi",
			CreatedAt: "2023-06-02T00:00:00Z",
		}, {
			ID: "cccc3333-0000", UserID: "user-1", Amount: "500", InterestFee: "50",
			TotalDue: "550", TotalPaid: "550", Status: "COMPLETED", Purpose: "Pendidikan",
			CreatedAt: "2023-06-03T00:00:00Z",
		},
	}
}

func (s *LoanServiceTestSuite) userRecords() []domain.UserRecord {
	return []domain.UserRecord{
		{ID: "user-1", Name: "Budi Santoso"},
		{ID: "user-2", Name: "Siti Rahayu"},
	}
}

func (s *LoanServiceTestSuite) TestList() {
	s.mockClient.EXPECT().Loans(gomock.Any()).Return(s.loanRecords(), nil)
	s.mockClient.EXPECT().Users(gomock.Any()).Return(s.userRecords(), nil)

	list, err := s.loanService.List(s.T().Context(), LoanQuery{
		ListQuery: ListQuery{SortBy: core.SortFieldAmount, Dir: core.SortDesc},
	})
	s.Require().NoError(err)

	s.Len(list.Items, 3)
	s.False(list.Stale)
	s.Equal(3, list.Summary.Count)

	// сортировка по сумме стабильная: два займа по 500 в исходном порядке
	s.Equal("L-AAAA1111", list.Items[0].DisplayID)
	s.Equal("L-CCCC3333", list.Items[1].DisplayID)
	s.Equal("L-BBBB2222", list.Items[2].DisplayID)
}

func (s *LoanServiceTestSuite) TestListTabAndSearch() {
	s.mockClient.EXPECT().Loans(gomock.Any()).Return(s.loanRecords(), nil)
	s.mockClient.EXPECT().Users(gomock.Any()).Return(s.userRecords(), nil)

	list, err := s.loanService.List(s.T().Context(), LoanQuery{
		ListQuery: ListQuery{Search: "budi"},
		Tab:       LoanTabRequests,
	})
	s.Require().NoError(err)

	s.Require().Len(list.Items, 1)
	s.Equal(domain.LoanStatusPending, list.Items[0].Status)
	s.Equal("Budi Santoso", list.Items[0].UserName)
	s.Equal(len(list.Items), list.Summary.Count)
}

func (s *LoanServiceTestSuite) TestListFallsBackToSnapshot() {
	// первый запрос прогревает снимок
	s.mockClient.EXPECT().Loans(gomock.Any()).Return(s.loanRecords(), nil)
	s.mockClient.EXPECT().Users(gomock.Any()).Return(s.userRecords(), nil)

	_, err := s.loanService.List(s.T().Context(), LoanQuery{})
	s.Require().NoError(err)

	// ядро упало: отдается последний удачный снимок с флагом stale
	s.mockClient.EXPECT().Loans(gomock.Any()).Return(nil, errors.New("connection refused"))
	s.mockClient.EXPECT().Users(gomock.Any()).Return(s.userRecords(), nil).AnyTimes()

	list, err := s.loanService.List(s.T().Context(), LoanQuery{})
	s.Require().NoError(err)
	s.True(list.Stale)
	s.Len(list.Items, 3)
}

func (s *LoanServiceTestSuite) TestListErrorWithoutSnapshot() {
	s.mockClient.EXPECT().Loans(gomock.Any()).Return(nil, errors.New("connection refused"))
	s.mockClient.EXPECT().Users(gomock.Any()).Return(s.userRecords(), nil).AnyTimes()

	_, err := s.loanService.List(s.T().Context(), LoanQuery{})
	s.Error(err)
}

func (s *LoanServiceTestSuite) TestApprove() {
	s.mockClient.EXPECT().Loans(gomock.Any()).Return(s.loanRecords(), nil)
	s.mockClient.EXPECT().Users(gomock.Any()).Return(s.userRecords(), nil)
	s.mockClient.EXPECT().
		UpdateLoanStatus(gomock.Any(), "aaaa1111-0000", domain.LoanStatusApproved).
		Return(domain.LoanRecord{
			ID: "aaaa1111-0000", UserID: "user-1", Amount: "500", InterestFee: "50",
			TotalDue: "550", TotalPaid: "0", Status: "APPROVED",
			CreatedAt: "2023-06-01T00:00:00Z",
		}, nil)

	view, err := s.loanService.Approve(s.T().Context(), "aaaa1111-0000")
	s.Require().NoError(err)
	s.Equal(domain.LoanStatusApproved, view.Status)
	s.Equal("Approved", view.Badge.Label)
}

func (s *LoanServiceTestSuite) TestRejectOutsidePending() {
	// UpdateLoanStatus не ожидается: при нелегальном переходе запрос в ядро
	// не уходит вовсе
	s.mockClient.EXPECT().Loans(gomock.Any()).Return(s.loanRecords(), nil)
	s.mockClient.EXPECT().Users(gomock.Any()).Return(s.userRecords(), nil)

	_, err := s.loanService.Reject(s.T().Context(), "bbbb2222-0000")

	var transitionErr *domain.InvalidTransitionError
	s.Require().ErrorAs(err, &transitionErr)
	s.Equal(domain.LoanStatusOngoing, transitionErr.From)
	s.Equal(domain.LoanStatusRejected, transitionErr.To)
}

func (s *LoanServiceTestSuite) TestApplyActionNotFound() {
	s.mockClient.EXPECT().Loans(gomock.Any()).Return(s.loanRecords(), nil)
	s.mockClient.EXPECT().Users(gomock.Any()).Return(s.userRecords(), nil)

	_, err := s.loanService.Approve(s.T().Context(), "ghost")
	s.ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *LoanServiceTestSuite) TestApplyActionUnknown() {
	_, err := s.loanService.ApplyAction(s.T().Context(), "aaaa1111-0000", core.LoanAction("explode"))
	s.ErrorIs(err, ErrUnknownLoanAction)
}
