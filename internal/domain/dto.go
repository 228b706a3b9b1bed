package domain

type LoanStatusType string

const (
	LoanStatusPending   LoanStatusType = "pending"
	LoanStatusApproved  LoanStatusType = "approved"
	LoanStatusOngoing   LoanStatusType = "ongoing"
	LoanStatusCompleted LoanStatusType = "completed"
	LoanStatusRejected  LoanStatusType = "rejected"
)

type InstallmentStatusType string

const (
	InstallmentStatusPaid    InstallmentStatusType = "paid"
	InstallmentStatusPending InstallmentStatusType = "pending"
	InstallmentStatusOverdue InstallmentStatusType = "overdue"
)

type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeWithdraw TransactionType = "withdraw"
)

type RoleType string

const (
	RoleMember RoleType = "MEMBER"
	RoleAdmin  RoleType = "ADMIN"
)

// Badge описывает статусную метку для списков: текст, css-класс цвета и вид иконки.
// Значения повторяют один в один то, что рисует фронтенд.
type Badge struct {
	Label      string `json:"label"`
	ColorClass string `json:"color"`
	IconKind   string `json:"icon"`
}
