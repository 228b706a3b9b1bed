package api

import (
	"bytes"
	"encoding/json"
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

type InstallmentsHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *mocks.MockInstallmentServicer
	authToken   string
}

func TestInstallmentsHandlerSuite(t *testing.T) {
	suite.Run(t, new(InstallmentsHandlerTestSuite))
}

func (s *InstallmentsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockService = mocks.NewMockInstallmentServicer(mockCtrl)
	jwtSecret := []byte("super secret key")

	token, tokenErr := tokens.GenerateSessionJWT("admin-1", "ADMIN", time.Hour, jwtSecret)
	s.Require().NoError(tokenErr)
	s.authToken = "Bearer " + token

	s.router = New(RouterArgs{
		Logger:             logger.New(os.Stdout),
		InstallmentService: s.mockService,
		JWTSecretKey:       jwtSecret,
	})
}

func (s *InstallmentsHandlerTestSuite) TestIndexFilterByDerivedStatus() {
	overdue := domain.InstallmentView{
		DisplayID:     "ins12345",
		FullID:        "ins12345-0000",
		LoanDisplayID: "L-LOAN1234",
		UserName:      "Budi Santoso",
		Amount:        decimal.NewFromInt(100),
		DueDate:       time.Date(2023, time.August, 1, 0, 0, 0, 0, time.UTC),
		Status:        domain.InstallmentStatusOverdue,
		Badge:         core.InstallmentBadge(domain.InstallmentStatusOverdue),
	}

	s.mockService.EXPECT().
		List(gomock.Any(), service.ListQuery{Category: "overdue"}).
		Return(&service.InstallmentList{
			Items:   []domain.InstallmentView{overdue},
			Summary: core.Summary{Count: 1, Sum: decimal.NewFromInt(100), ByCategory: map[string]int{"overdue": 1}},
		}, nil)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    "/api/installments?status=overdue",
	}, testutils.WithHeader("Authorization", s.authToken))
	s.Require().NoError(err)
	defer func() { s.NoError(resp.Body.Close()) }()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body InstallmentListResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Require().Len(body.Items, 1)
	s.Equal("Overdue", body.Items[0].Badge.Label)
	s.Nil(body.Items[0].PaidDate)
}

func (s *InstallmentsHandlerTestSuite) TestRecordPayment() {
	paidAt := time.Date(2023, time.September, 5, 0, 0, 0, 0, time.UTC)
	paid := domain.InstallmentView{
		DisplayID: "ins12345",
		FullID:    "ins12345-0000",
		Amount:    decimal.NewFromInt(100),
		Status:    domain.InstallmentStatusPaid,
		Badge:     core.InstallmentBadge(domain.InstallmentStatusPaid),
		PaidDate:  &paidAt,
	}

	s.mockService.EXPECT().
		RecordPayment(gomock.Any(), "ins12345-0000", paidAt).
		Return(&paid, nil)

	payload, marshalErr := json.Marshal(gin.H{"paidDate": "2023-09-05"})
	s.Require().NoError(marshalErr)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    "/api/installments/ins12345-0000/payment",
		Body:   bytes.NewReader(payload),
	}, testutils.WithHeader("Authorization", s.authToken), testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	defer func() { s.NoError(resp.Body.Close()) }()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var body InstallmentResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal(domain.InstallmentStatusPaid, body.Status)
	s.Require().NotNil(body.PaidDate)
}

func (s *InstallmentsHandlerTestSuite) TestRecordPaymentWithoutDate() {
	// сервис не дергается: без даты оплаты запрос отклоняется на валидации
	payload, marshalErr := json.Marshal(gin.H{})
	s.Require().NoError(marshalErr)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    "/api/installments/ins12345-0000/payment",
		Body:   bytes.NewReader(payload),
	}, testutils.WithHeader("Authorization", s.authToken), testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	defer func() { s.NoError(resp.Body.Close()) }()

	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
}
