package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/lendboard/internal/domain"
)

// Нормализатор превращает сырые записи ядра в display-сущности: парсит суммы
// и даты, подрезает идентификаторы, подставляет имена пользователей. Битое
// поле не роняет запись: вместо значения подставляется сентинель, взводится
// соответствующий флаг Invalid, а ошибка возвращается вызывающему для логов.

// UnknownUserName подставляется, когда userId записи не найден в справочнике.
const UnknownUserName = "Unknown User"

const displayIDLength = 8

// UserLookup - справочник id пользователя -> отображаемое имя.
type UserLookup map[string]string

func BuildUserLookup(users []domain.UserRecord) UserLookup {
	lookup := make(UserLookup, len(users))
	for _, u := range users {
		lookup[u.ID] = u.Name
	}
	return lookup
}

func (l UserLookup) NameFor(userID string) string {
	if name, ok := l[userID]; ok {
		return name
	}
	return UnknownUserName
}

// LoanRef - срез данных займа, нужный платежам: короткий id и имя заемщика.
type LoanRef struct {
	DisplayID string
	UserName  string
}

// LoanLookup - справочник id займа -> LoanRef для нормализации платежей.
type LoanLookup map[string]LoanRef

func BuildLoanLookup(loans []domain.LoanRecord, users UserLookup) LoanLookup {
	lookup := make(LoanLookup, len(loans))
	for _, l := range loans {
		lookup[l.ID] = LoanRef{
			DisplayID: LoanDisplayID(l.ID),
			UserName:  users.NameFor(l.UserID),
		}
	}
	return lookup
}

// ShortID подрезает идентификатор до первых восьми символов, как это делает
// фронтенд в списках транзакций и балансов.
func ShortID(id string) string {
	if len(id) > displayIDLength {
		return id[:displayIDLength]
	}
	return id
}

// LoanDisplayID строит короткий id займа: префикс "L-" и восемь символов
// в верхнем регистре.
func LoanDisplayID(id string) string {
	return "L-" + strings.ToUpper(ShortID(id))
}

// NormalizeLoan собирает LoanView из сырой записи. Возвращенная ошибка
// описывает восстановленные дефекты записи; view пригоден к показу всегда.
func NormalizeLoan(rec domain.LoanRecord, users UserLookup) (domain.LoanView, error) {
	var issues []error

	view := domain.LoanView{
		DisplayID:  LoanDisplayID(rec.ID),
		FullID:     rec.ID,
		UserID:     rec.UserID,
		UserName:   users.NameFor(rec.UserID),
		TermMonths: rec.Duration,
		PaidMonths: rec.PaidMonths,
		Purpose:    rec.Purpose,
		Status:     domain.LoanStatusType(strings.ToLower(rec.Status)),
	}
	if rec.ID == "" {
		view.DisplayID = ""
		issues = append(issues, domain.NewMissingFieldError("id"))
	}
	view.Badge = LoanBadge(view.Status)

	var err error
	if view.Amount, err = parseAmount(rec.Amount, "amount"); err != nil {
		view.AmountInvalid = true
		issues = append(issues, sortKeyIssue(err))
	}
	if view.Interest, err = parseAmount(rec.InterestFee, "interestFee"); err != nil {
		issues = append(issues, err)
	}
	if view.TotalDue, err = parseAmount(rec.TotalDue, "totalDue"); err != nil {
		issues = append(issues, err)
	}
	if view.TotalPaid, err = parseAmount(rec.TotalPaid, "totalPaid"); err != nil {
		issues = append(issues, err)
	}
	if view.CreatedAt, err = parseDate(rec.CreatedAt, "createdAt"); err != nil {
		view.DateInvalid = true
		issues = append(issues, sortKeyIssue(err))
	}

	view.FormattedAmount = FormatIDR(view.Amount)
	view.FormattedDate = FormatDateID(view.CreatedAt)
	return view, errors.Join(issues...)
}

func NormalizeTransaction(rec domain.TransactionRecord, users UserLookup) (domain.TransactionView, error) {
	var issues []error

	view := domain.TransactionView{
		DisplayID:   ShortID(rec.ID),
		FullID:      rec.ID,
		UserID:      rec.UserID,
		UserName:    users.NameFor(rec.UserID),
		Type:        NormalizeTransactionType(rec.Type),
		Description: rec.Description,
	}
	if rec.ID == "" {
		issues = append(issues, domain.NewMissingFieldError("id"))
	}
	view.Badge = TransactionBadge(view.Type)

	var err error
	if view.Amount, err = parseAmount(rec.Amount, "amount"); err != nil {
		view.AmountInvalid = true
		issues = append(issues, sortKeyIssue(err))
	}
	if view.CreatedAt, err = parseDate(rec.CreatedAt, "createdAt"); err != nil {
		view.DateInvalid = true
		issues = append(issues, sortKeyIssue(err))
	}

	view.FormattedAmount = FormatIDR(view.Amount)
	view.FormattedDate = FormatDateID(view.CreatedAt)
	return view, errors.Join(issues...)
}

// NormalizeTransactionType приводит тип транзакции к каноническому виду.
// Ядро местами отдает "withdrawal" вместо "withdraw".
func NormalizeTransactionType(raw string) domain.TransactionType {
	switch strings.ToLower(raw) {
	case "withdraw", "withdrawal":
		return domain.TransactionTypeWithdraw
	default:
		return domain.TransactionType(strings.ToLower(raw))
	}
}

func NormalizeBalance(rec domain.BalanceRecord, users UserLookup) (domain.BalanceView, error) {
	var issues []error

	view := domain.BalanceView{
		DisplayID: ShortID(rec.ID),
		FullID:    rec.ID,
		UserID:    rec.UserID,
		UserName:  users.NameFor(rec.UserID),
	}
	if rec.ID == "" {
		issues = append(issues, domain.NewMissingFieldError("id"))
	}

	var err error
	if view.Total, err = parseAmount(rec.TotalBalance, "totalBalance"); err != nil {
		view.AmountInvalid = true
		issues = append(issues, sortKeyIssue(err))
	}
	if view.UpdatedAt, err = parseDate(rec.UpdatedAt, "updatedAt"); err != nil {
		view.DateInvalid = true
		issues = append(issues, sortKeyIssue(err))
	}

	view.FormattedTotal = FormatIDR(view.Total)
	view.FormattedDate = FormatDateID(view.UpdatedAt)
	return view, errors.Join(issues...)
}

// NormalizeInstallment собирает InstallmentView и сразу пересчитывает
// производный статус на момент now.
func NormalizeInstallment(
	rec domain.InstallmentRecord,
	loans LoanLookup,
	now time.Time,
) (domain.InstallmentView, error) {
	var issues []error

	view := domain.InstallmentView{
		DisplayID: ShortID(rec.ID),
		FullID:    rec.ID,
		LoanID:    rec.LoanID,
	}
	if rec.ID == "" {
		issues = append(issues, domain.NewMissingFieldError("id"))
	}

	if ref, ok := loans[rec.LoanID]; ok {
		view.LoanDisplayID = ref.DisplayID
		view.UserName = ref.UserName
	} else {
		view.LoanDisplayID = LoanDisplayID(rec.LoanID)
		view.UserName = UnknownUserName
	}

	var err error
	if view.Amount, err = parseAmount(rec.Amount, "amount"); err != nil {
		view.AmountInvalid = true
		issues = append(issues, sortKeyIssue(err))
	}
	if view.DueDate, err = parseDate(rec.DueDate, "dueDate"); err != nil {
		view.DateInvalid = true
		issues = append(issues, sortKeyIssue(err))
	}
	if rec.PaidDate != nil {
		paidAt, perr := parseDate(*rec.PaidDate, "paidDate")
		if perr != nil {
			issues = append(issues, perr)
		} else {
			view.PaidDate = &paidAt
		}
	}

	view.Status = ClassifyInstallment(
		domain.InstallmentStatusType(strings.ToLower(rec.Status)),
		view.DueDate,
		now,
	)
	view.Badge = InstallmentBadge(view.Status)

	view.FormattedAmount = FormatIDR(view.Amount)
	view.FormattedDue = FormatDateID(view.DueDate)
	return view, errors.Join(issues...)
}

func NormalizeUser(rec domain.UserRecord) (domain.UserView, error) {
	var issues []error

	view := domain.UserView{
		ID:    rec.ID,
		Name:  rec.Name,
		Email: rec.Email,
		Phone: rec.Phone,
		Role:  domain.RoleType(strings.ToUpper(rec.Role)),
	}
	if rec.ID == "" {
		issues = append(issues, domain.NewMissingFieldError("id"))
	}

	var err error
	if view.CreatedAt, err = parseDate(rec.CreatedAt, "createdAt"); err != nil {
		view.DateInvalid = true
		issues = append(issues, sortKeyIssue(err))
	}

	view.FormattedDate = FormatDateID(view.CreatedAt)
	return view, errors.Join(issues...)
}

// sortKeyIssue помечает дефект поля, по которому список сортируется:
// при сортировке по этому ключу запись уходит в конец выдачи.
func sortKeyIssue(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrInvalidSortKey, err)
}

// parseAmount парсит денежную строку ядра. Пустое поле и нечисловое значение
// восстанавливаются нулевым сентинелем.
func parseAmount(raw, field string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, domain.NewMissingFieldError(field)
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", field, domain.ErrInvalidAmount)
	}
	return amount, nil
}

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

// parseDate принимает даты ядра в ISO-8601, с таймзоной и без времени.
// Невалидная дата восстанавливается нулевым time.Time.
func parseDate(raw, field string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, domain.NewMissingFieldError(field)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%s: unparsable date %q", field, raw)
}
