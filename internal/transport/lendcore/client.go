package lendcore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/lendboard/internal/domain"
)

// Маршруты REST API ядра кредитования.
const (
	RouteSignIn             = "/auth/signin"
	RouteUsers              = "/user/all"
	RouteFindUser           = "/user/find/%s"
	RouteAddUser            = "/user/add"
	RouteUpdateUser         = "/user/update/%s"
	RouteDeleteUser         = "/user/delete/%s"
	RouteLoans              = "/loan/all"
	RouteLoanStatus         = "/loan/%s/status"
	RouteBalanceTotal       = "/balance/total"
	RouteBalances           = "/balance/all"
	RouteTransactions       = "/transaction/all"
	RouteAddTransaction     = "/transaction/add"
	RouteInstallments       = "/installment/all"
	RouteInstallmentPayment = "/installment/%s/payment"
)

// Константы минимального и максимального значения в заголовке Retry-After.
const (
	minRetryAfter = 1
	maxRetryAfter = 120
)

// HTTPClient - клиент REST API ядра кредитования. Декодирует ответы в сырые
// записи domain без какой-либо интерпретации: парсингом сумм и дат занимается
// нормализатор.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// SignIn проверяет учетные данные в ядре. Ядро возвращает только токен,
// профиль запрашивается отдельно. При отказе ядра вернется StatusCodeError
// с кодом 401.
func (c *HTTPClient) SignIn(ctx context.Context, args SignInArgs) (string, error) {
	var result signInResult
	err := c.send(ctx, http.MethodPost, RouteSignIn, args, &result)
	return result.Token, err
}

func (c *HTTPClient) Users(ctx context.Context) ([]domain.UserRecord, error) {
	var users []domain.UserRecord
	err := c.get(ctx, RouteUsers, &users)
	return users, err
}

func (c *HTTPClient) FindUser(ctx context.Context, id string) (domain.UserRecord, error) {
	var user domain.UserRecord
	err := c.get(ctx, fmt.Sprintf(RouteFindUser, id), &user)
	return user, err
}

func (c *HTTPClient) AddUser(ctx context.Context, args AddUserArgs) (domain.UserRecord, error) {
	var user domain.UserRecord
	err := c.send(ctx, http.MethodPost, RouteAddUser, args, &user)
	return user, err
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, args UpdateUserArgs) (domain.UserRecord, error) {
	var user domain.UserRecord
	err := c.send(ctx, http.MethodPut, fmt.Sprintf(RouteUpdateUser, id), args, &user)
	return user, err
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf(RouteDeleteUser, id), nil, nil)
}

func (c *HTTPClient) Loans(ctx context.Context) ([]domain.LoanRecord, error) {
	var loans []domain.LoanRecord
	err := c.get(ctx, RouteLoans, &loans)
	return loans, err
}

// UpdateLoanStatus переводит займ в новый статус. Ядро хранит статусы в
// верхнем регистре, приведение выполняется здесь.
func (c *HTTPClient) UpdateLoanStatus(
	ctx context.Context,
	id string,
	status domain.LoanStatusType,
) (domain.LoanRecord, error) {
	var loan domain.LoanRecord
	args := updateLoanStatusArgs{Status: strings.ToUpper(string(status))}
	err := c.send(ctx, http.MethodPatch, fmt.Sprintf(RouteLoanStatus, id), args, &loan)
	return loan, err
}

// BalanceTotal возвращает суммарный остаток по всем счетам. Ядро считает
// его на своей стороне, клиент ничего не пересуммирует.
func (c *HTTPClient) BalanceTotal(ctx context.Context) (domain.BalanceTotalRecord, error) {
	var total domain.BalanceTotalRecord
	err := c.get(ctx, RouteBalanceTotal, &total)
	return total, err
}

func (c *HTTPClient) Balances(ctx context.Context) ([]domain.BalanceRecord, error) {
	var balances []domain.BalanceRecord
	err := c.get(ctx, RouteBalances, &balances)
	return balances, err
}

func (c *HTTPClient) Transactions(ctx context.Context) ([]domain.TransactionRecord, error) {
	var transactions []domain.TransactionRecord
	err := c.get(ctx, RouteTransactions, &transactions)
	return transactions, err
}

func (c *HTTPClient) AddTransaction(
	ctx context.Context,
	args AddTransactionArgs,
) (domain.TransactionRecord, error) {
	var transaction domain.TransactionRecord
	err := c.send(ctx, http.MethodPost, RouteAddTransaction, args, &transaction)
	return transaction, err
}

func (c *HTTPClient) Installments(ctx context.Context) ([]domain.InstallmentRecord, error) {
	var installments []domain.InstallmentRecord
	err := c.get(ctx, RouteInstallments, &installments)
	return installments, err
}

// RecordInstallmentPayment фиксирует оплату платежа в ядре.
func (c *HTTPClient) RecordInstallmentPayment(
	ctx context.Context,
	id string,
	paidAt time.Time,
) (domain.InstallmentRecord, error) {
	var installment domain.InstallmentRecord
	args := recordPaymentArgs{PaidDate: paidAt.Format(time.RFC3339)}
	err := c.send(ctx, http.MethodPost, fmt.Sprintf(RouteInstallmentPayment, id), args, &installment)
	return installment, err
}

func (c *HTTPClient) get(ctx context.Context, route string, out any) error {
	return c.send(ctx, http.MethodGet, route, nil, out)
}

// send выполняет запрос к ядру и декодирует успешный ответ в out.
// При ответе со статусом отличным от 2xx возвращает StatusCodeError, или
// TooManyRequestError в случае http.StatusTooManyRequests.
//
//nolint:nonamedreturns
func (c *HTTPClient) send(ctx context.Context, method, route string, payload any, out any) (err error) {
	// Формируем URL запроса.
	url := c.baseURL + route

	var reqBody io.Reader
	if payload != nil {
		raw, marshalErr := json.Marshal(payload)
		if marshalErr != nil {
			return pkgerrors.Wrap(marshalErr, "marshal request")
		}
		reqBody = bytes.NewReader(raw)
	}

	// Создаем запрос.
	req, reqErr := http.NewRequestWithContext(ctx, method, url, reqBody)
	if reqErr != nil {
		return pkgerrors.Wrap(reqErr, "create request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Выполняем запрос.
	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return pkgerrors.Wrap(doErr, "do request")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return NewTooManyRequestError(retryAfter(resp.Header.Get("Retry-After")))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err = NewStatusCodeError(resp.StatusCode)
		return err
	}

	if out == nil {
		return nil
	}

	// Парсим успешный ответ.
	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = pkgerrors.Wrap(readErr, "read response")
		return err
	}

	if jsonErr := json.Unmarshal(body, out); jsonErr != nil {
		err = pkgerrors.Wrap(jsonErr, "parse response")
		return err
	}
	return nil
}

func retryAfter(header string) time.Duration {
	minValue := decimal.NewFromInt(minRetryAfter)
	maxValue := decimal.NewFromInt(maxRetryAfter)

	value, parseErr := decimal.NewFromString(header)
	if parseErr != nil || value.LessThan(minValue) || value.GreaterThan(maxValue) {
		// в случае ошибки или неверных данных ставим 60 секунд
		value = decimal.NewFromInt(60) //nolint:mnd
	}
	return time.Duration(value.IntPart()) * time.Second
}
