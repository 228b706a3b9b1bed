package lendcore

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/lendboard/internal/domain"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) serve(handler http.HandlerFunc) *HTTPClient {
	s.server = httptest.NewServer(handler)
	return New(s.server.URL)
}

func (s *ClientTestSuite) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	s.NoError(json.NewEncoder(w).Encode(payload))
}

func (s *ClientTestSuite) TestLoans() {
	want := []domain.LoanRecord{
		{ID: "loan-1", UserID: "user-1", Amount: "5000000", Status: "PENDING"},
		{ID: "loan-2", UserID: "user-2", Amount: "broken", Status: "ONGOING"},
	}

	client := s.serve(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		s.Equal(RouteLoans, r.URL.Path)
		s.writeJSON(w, http.StatusOK, want)
	})

	loans, err := client.Loans(s.T().Context())
	s.Require().NoError(err)
	// записи отдаются как есть, даже с битой суммой - ей займется нормализатор
	s.Equal(want, loans)
}

func (s *ClientTestSuite) TestUpdateLoanStatus() {
	client := s.serve(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPatch, r.Method)
		s.Equal("/loan/loan-1/status", r.URL.Path)

		var args updateLoanStatusArgs
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&args))
		// статус уходит в ядро в верхнем регистре
		s.Equal("APPROVED", args.Status)

		s.writeJSON(w, http.StatusOK, domain.LoanRecord{ID: "loan-1", Status: "APPROVED"})
	})

	loan, err := client.UpdateLoanStatus(s.T().Context(), "loan-1", domain.LoanStatusApproved)
	s.Require().NoError(err)
	s.Equal("APPROVED", loan.Status)
}

func (s *ClientTestSuite) TestRecordInstallmentPayment() {
	paidAt := time.Date(2023, time.September, 5, 12, 0, 0, 0, time.UTC)

	client := s.serve(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/installment/ins-1/payment", r.URL.Path)

		var args recordPaymentArgs
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&args))
		s.Equal("2023-09-05T12:00:00Z", args.PaidDate)

		paid := args.PaidDate
		s.writeJSON(w, http.StatusOK, domain.InstallmentRecord{ID: "ins-1", Status: "PAID", PaidDate: &paid})
	})

	installment, err := client.RecordInstallmentPayment(s.T().Context(), "ins-1", paidAt)
	s.Require().NoError(err)
	s.Equal("PAID", installment.Status)
}

func (s *ClientTestSuite) TestAddTransaction() {
	client := s.serve(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal(RouteAddTransaction, r.URL.Path)

		var body map[string]any
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		// ядро ждет дату проведения в теле, клиент обязан ее передать
		s.Equal("2023-09-01T12:00:00Z", body["date"])
		s.Equal("user-1", body["userId"])
		s.Equal("250000", body["amount"])

		s.writeJSON(w, http.StatusCreated, domain.TransactionRecord{
			ID: "trx-1", UserID: "user-1", Amount: "250000", Type: "deposit",
		})
	})

	record, err := client.AddTransaction(s.T().Context(), AddTransactionArgs{
		UserID:      "user-1",
		Amount:      "250000",
		Type:        "deposit",
		Date:        "2023-09-01T12:00:00Z",
		Description: "Manual deposit",
	})
	s.Require().NoError(err)
	s.Equal("trx-1", record.ID)
}

func (s *ClientTestSuite) TestDeleteUser() {
	client := s.serve(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodDelete, r.Method)
		s.Equal("/user/delete/user-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	s.NoError(client.DeleteUser(s.T().Context(), "user-1"))
}

func (s *ClientTestSuite) TestErrorStatuses() {
	type tcase struct {
		name       string
		httpStatus int
		retryAfter string
		check      func(err error)
	}

	cases := []tcase{
		{
			name:       "not found",
			httpStatus: http.StatusNotFound,
			check: func(err error) {
				s.Require().Error(err)
				s.True(IsNotFound(err))
			},
		}, {
			name:       "unauthorized",
			httpStatus: http.StatusUnauthorized,
			check: func(err error) {
				s.Require().Error(err)
				s.True(IsUnauthorized(err))
			},
		}, {
			name:       "too many requests",
			httpStatus: http.StatusTooManyRequests,
			retryAfter: "30",
			check: func(err error) {
				var tooManyErr *TooManyRequestError
				s.Require().ErrorAs(err, &tooManyErr)
				s.Equal(30*time.Second, tooManyErr.RetryAfter)
			},
		}, {
			name:       "too many requests with junk header",
			httpStatus: http.StatusTooManyRequests,
			retryAfter: "over 9000",
			check: func(err error) {
				var tooManyErr *TooManyRequestError
				s.Require().ErrorAs(err, &tooManyErr)
				s.Equal(60*time.Second, tooManyErr.RetryAfter)
			},
		}, {
			name:       "internal error",
			httpStatus: http.StatusInternalServerError,
			check: func(err error) {
				var statusErr *StatusCodeError
				s.Require().ErrorAs(err, &statusErr)
				s.Equal(http.StatusInternalServerError, statusErr.Code)
			},
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			client := s.serve(func(w http.ResponseWriter, _ *http.Request) {
				if tc.retryAfter != "" {
					w.Header().Set("Retry-After", tc.retryAfter)
				}
				w.WriteHeader(tc.httpStatus)
			})

			_, err := client.Loans(s.T().Context())
			tc.check(err)

			s.server.Close()
			s.server = nil
		})
	}
}

func (s *ClientTestSuite) TestSignIn() {
	client := s.serve(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(RouteSignIn, r.URL.Path)

		var args SignInArgs
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&args))
		if args.Name != "admin" || args.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.writeJSON(w, http.StatusOK, map[string]string{"token": "core.token"})
	})

	token, err := client.SignIn(s.T().Context(), SignInArgs{Name: "admin", Password: "secret"})
	s.Require().NoError(err)
	s.Equal("core.token", token)

	_, err = client.SignIn(s.T().Context(), SignInArgs{Name: "admin", Password: "wrong"})
	s.True(IsUnauthorized(err))
}

func (s *ClientTestSuite) TestBalanceTotal() {
	client := s.serve(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		s.Equal(RouteBalanceTotal, r.URL.Path)
		// ядро отдает суммарный остаток числом, не строкой
		s.writeJSON(w, http.StatusOK, map[string]float64{"totalBalance": 584325.5})
	})

	total, err := client.BalanceTotal(s.T().Context())
	s.Require().NoError(err)
	s.Equal("584325.5", total.TotalBalance.String())
}
