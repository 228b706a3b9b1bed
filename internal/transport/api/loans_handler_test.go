package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/lendboard/internal/core"
	"github.com/fsdevblog/lendboard/internal/domain"
	"github.com/fsdevblog/lendboard/internal/logger"
	"github.com/fsdevblog/lendboard/internal/service"
	"github.com/fsdevblog/lendboard/internal/transport/api/mocks"
	"github.com/fsdevblog/lendboard/internal/transport/api/testutils"
	"github.com/fsdevblog/lendboard/internal/transport/api/tokens"
)

type LoansHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockLoanService *mocks.MockLoanServicer
	jwtSecret       []byte
	authToken       string
}

func TestLoansHandlerSuite(t *testing.T) {
	suite.Run(t, new(LoansHandlerTestSuite))
}

func (s *LoansHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockLoanService = mocks.NewMockLoanServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	token, tokenErr := tokens.GenerateSessionJWT("admin-1", "ADMIN", time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.authToken = "Bearer " + token

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		LoanService:  s.mockLoanService,
		JWTSecretKey: s.jwtSecret,
	})
}

func (s *LoansHandlerTestSuite) loanView() domain.LoanView {
	return domain.LoanView{
		DisplayID:       "L-AAAA1111",
		FullID:          "aaaa1111-0000",
		UserName:        "Budi Santoso",
		Amount:          decimal.NewFromInt(500),
		Status:          domain.LoanStatusPending,
		Badge:           core.LoanBadge(domain.LoanStatusPending),
		CreatedAt:       time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
		FormattedAmount: "Rp500",
		FormattedDate:   "1 Juni 2023",
	}
}

func (s *LoansHandlerTestSuite) TestIndex() {
	wantQuery := service.LoanQuery{
		ListQuery: service.ListQuery{
			Search:   "budi",
			Category: "pending",
			SortBy:   core.SortFieldAmount,
			Dir:      core.SortDesc,
		},
		Tab: service.LoanTabRequests,
	}
	s.mockLoanService.EXPECT().
		List(gomock.Any(), wantQuery).
		Return(&service.LoanList{
			Items:   []domain.LoanView{s.loanView()},
			Summary: core.Summary{Count: 1, Sum: decimal.NewFromInt(500), ByCategory: map[string]int{"pending": 1}},
		}, nil)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    "/api/loans?search=budi&status=pending&sort=amount&dir=desc&tab=requests",
	}, testutils.WithHeader("Authorization", s.authToken))
	s.Require().NoError(err)
	defer func() { s.NoError(resp.Body.Close()) }()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body LoanListResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Require().Len(body.Items, 1)
	s.Equal("L-AAAA1111", body.Items[0].ID)
	s.Equal("500", body.Items[0].Amount)
	s.Equal(1, body.Summary.Count)
	// из pending доступны approve и reject
	s.Equal([]core.LoanAction{core.ActionApprove, core.ActionReject}, body.Items[0].Actions)
}

func (s *LoansHandlerTestSuite) TestIndexRejectsUnknownSort() {
	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    "/api/loans?sort=color",
	}, testutils.WithHeader("Authorization", s.authToken))
	s.Require().NoError(err)
	defer func() { s.NoError(resp.Body.Close()) }()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *LoansHandlerTestSuite) TestIndexUnauthorized() {
	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    "/api/loans",
	})
	s.Require().NoError(err)
	defer func() { s.NoError(resp.Body.Close()) }()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *LoansHandlerTestSuite) TestApprove() {
	approved := s.loanView()
	approved.Status = domain.LoanStatusApproved
	approved.Badge = core.LoanBadge(domain.LoanStatusApproved)

	s.mockLoanService.EXPECT().
		ApplyAction(gomock.Any(), "aaaa1111-0000", core.ActionApprove).
		Return(&approved, nil)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    "/api/loans/aaaa1111-0000/approve",
	}, testutils.WithHeader("Authorization", s.authToken))
	s.Require().NoError(err)
	defer func() { s.NoError(resp.Body.Close()) }()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body LoanResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal(domain.LoanStatusApproved, body.Status)
	s.Equal("Approved", body.Badge.Label)
}

func (s *LoansHandlerTestSuite) TestRejectConflictOnIllegalTransition() {
	s.mockLoanService.EXPECT().
		ApplyAction(gomock.Any(), "bbbb2222-0000", core.ActionReject).
		Return(nil, domain.NewInvalidTransitionError(domain.LoanStatusOngoing, domain.LoanStatusRejected))

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    "/api/loans/bbbb2222-0000/reject",
	}, testutils.WithHeader("Authorization", s.authToken), testutils.WithHeader("Accept", "application/json"))
	s.Require().NoError(err)
	defer func() { s.NoError(resp.Body.Close()) }()

	s.Require().Equal(http.StatusConflict, resp.StatusCode)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal(fmt.Sprintf("invalid transition from %s to %s", domain.LoanStatusOngoing, domain.LoanStatusRejected), body["error"])
}

func (s *LoansHandlerTestSuite) TestApproveNotFound() {
	s.mockLoanService.EXPECT().
		ApplyAction(gomock.Any(), "ghost", core.ActionApprove).
		Return(nil, domain.ErrRecordNotFound)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    "/api/loans/ghost/approve",
	}, testutils.WithHeader("Authorization", s.authToken))
	s.Require().NoError(err)
	defer func() { s.NoError(resp.Body.Close()) }()

	s.Equal(http.StatusNotFound, resp.StatusCode)
}
