package domain

import "encoding/json"

// Сырые записи ядра кредитования в том виде, в котором они приходят по проводу.
// Денежные суммы ядро отдает строками, даты - в ISO-8601. Парсинг и подстановка
// сентинелей при битых данных выполняется нормализатором, а не при декодировании:
// одна битая запись не должна ронять всю выборку.

type UserRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

type LoanRecord struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Amount      string `json:"amount"`
	Duration    int    `json:"duration"`
	InterestFee string `json:"interestFee"`
	TotalDue    string `json:"totalDue"`
	TotalPaid   string `json:"totalPaid"`
	PaidMonths  int    `json:"paidMonths"`
	Purpose     string `json:"purpose"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

type TransactionRecord struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

// BalanceTotalRecord - ответ ядра на запрос суммарного остатка.
// В отличие от остальных сумм ядро отдает это поле числом.
type BalanceTotalRecord struct {
	TotalBalance json.Number `json:"totalBalance"`
}

type BalanceRecord struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	TotalBalance string `json:"totalBalance"`
	UpdatedAt    string `json:"updatedAt"`
}

type InstallmentRecord struct {
	ID       string  `json:"id"`
	LoanID   string  `json:"loanId"`
	Amount   string  `json:"amount"`
	DueDate  string  `json:"dueDate"`
	Status   string  `json:"status"`
	PaidDate *string `json:"paidDate"`
}
