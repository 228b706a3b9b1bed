package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Display-сущности: результат работы нормализатора. Суммы уже распарсены в
// decimal, даты - в time.Time, внешние ключи заменены на отображаемые имена.
// Поля Formatted* предназначены только для вывода; сортировка и агрегация
// всегда работают по исходным значениям.
//
// Флаги AmountInvalid/DateInvalid взводятся нормализатором, когда исходное
// поле не распарсилось и вместо него подставлен сентинель. Сортировщик
// отправляет такие записи в конец выборки.

type LoanView struct {
	DisplayID       string
	FullID          string
	UserID          string
	UserName        string
	Amount          decimal.Decimal
	Interest        decimal.Decimal
	TotalDue        decimal.Decimal
	TotalPaid       decimal.Decimal
	TermMonths      int
	PaidMonths      int
	Purpose         string
	Status          LoanStatusType
	Badge           Badge
	CreatedAt       time.Time
	FormattedAmount string
	FormattedDate   string
	AmountInvalid   bool
	DateInvalid     bool
}

func (v LoanView) SearchFields() []string { return []string{v.DisplayID, v.UserName, v.Purpose} }
func (v LoanView) Category() string       { return string(v.Status) }

func (v LoanView) AmountKey() (decimal.Decimal, bool) { return v.Amount, !v.AmountInvalid }
func (v LoanView) DateKey() (time.Time, bool)         { return v.CreatedAt, !v.DateInvalid }

type TransactionView struct {
	DisplayID       string
	FullID          string
	UserID          string
	UserName        string
	Amount          decimal.Decimal
	Type            TransactionType
	Description     string
	Badge           Badge
	CreatedAt       time.Time
	FormattedAmount string
	FormattedDate   string
	AmountInvalid   bool
	DateInvalid     bool
}

func (v TransactionView) SearchFields() []string {
	return []string{v.DisplayID, v.UserName, v.Description}
}
func (v TransactionView) Category() string { return string(v.Type) }

func (v TransactionView) AmountKey() (decimal.Decimal, bool) { return v.Amount, !v.AmountInvalid }
func (v TransactionView) DateKey() (time.Time, bool)         { return v.CreatedAt, !v.DateInvalid }

type BalanceView struct {
	DisplayID      string
	FullID         string
	UserID         string
	UserName       string
	Total          decimal.Decimal
	UpdatedAt      time.Time
	FormattedTotal string
	FormattedDate  string
	AmountInvalid  bool
	DateInvalid    bool
}

func (v BalanceView) SearchFields() []string { return []string{v.DisplayID, v.UserName} }

// Category у балансов отсутствует: агрегатор посчитает их в категорию "unknown".
func (v BalanceView) Category() string { return "" }

func (v BalanceView) AmountKey() (decimal.Decimal, bool) { return v.Total, !v.AmountInvalid }
func (v BalanceView) DateKey() (time.Time, bool)         { return v.UpdatedAt, !v.DateInvalid }

type InstallmentView struct {
	DisplayID       string
	FullID          string
	LoanID          string
	LoanDisplayID   string
	UserName        string
	Amount          decimal.Decimal
	DueDate         time.Time
	PaidDate        *time.Time
	Status          InstallmentStatusType
	Badge           Badge
	FormattedAmount string
	FormattedDue    string
	AmountInvalid   bool
	DateInvalid     bool
}

func (v InstallmentView) SearchFields() []string {
	return []string{v.DisplayID, v.LoanDisplayID, v.UserName}
}
func (v InstallmentView) Category() string { return string(v.Status) }

func (v InstallmentView) AmountKey() (decimal.Decimal, bool) { return v.Amount, !v.AmountInvalid }
func (v InstallmentView) DateKey() (time.Time, bool)         { return v.DueDate, !v.DateInvalid }

type UserView struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	Role          RoleType
	CreatedAt     time.Time
	FormattedDate string
	DateInvalid   bool
}

func (v UserView) SearchFields() []string { return []string{v.Name, v.Email, v.Phone} }
func (v UserView) Category() string       { return string(v.Role) }

// У пользователей нет денежного поля, ключ суммы всегда невалиден.
func (v UserView) AmountKey() (decimal.Decimal, bool) { return decimal.Zero, false }
func (v UserView) DateKey() (time.Time, bool)         { return v.CreatedAt, !v.DateInvalid }
