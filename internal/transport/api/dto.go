package api

import (
	"time"

	"github.com/fsdevblog/lendboard/internal/core"
	"github.com/fsdevblog/lendboard/internal/domain"
)

// Ответы отдают и исходные значения (суммы строками, даты в ISO), и
// отформатированные для показа. Клиент ничего не пересчитывает.

type LoanResponse struct {
	ID              string                `json:"id"`
	FullID          string                `json:"fullId"`
	UserName        string                `json:"userName"`
	Amount          string                `json:"amount"`
	InterestFee     string                `json:"interestFee"`
	TotalDue        string                `json:"totalDue"`
	TotalPaid       string                `json:"totalPaid"`
	Duration        int                   `json:"duration"`
	PaidMonths      int                   `json:"paidMonths"`
	Purpose         string                `json:"purpose"`
	Status          domain.LoanStatusType `json:"status"`
	Badge           domain.Badge          `json:"badge"`
	Actions         []core.LoanAction     `json:"actions"`
	CreatedAt       time.Time             `json:"createdAt"`
	FormattedAmount string                `json:"formattedAmount"`
	FormattedDate   string                `json:"formattedDate"`
}

func newLoanResponse(view domain.LoanView) LoanResponse {
	return LoanResponse{
		ID:              view.DisplayID,
		FullID:          view.FullID,
		UserName:        view.UserName,
		Amount:          view.Amount.String(),
		InterestFee:     view.Interest.String(),
		TotalDue:        view.TotalDue.String(),
		TotalPaid:       view.TotalPaid.String(),
		Duration:        view.TermMonths,
		PaidMonths:      view.PaidMonths,
		Purpose:         view.Purpose,
		Status:          view.Status,
		Badge:           view.Badge,
		Actions:         core.AllowedLoanActions(view.Status),
		CreatedAt:       view.CreatedAt,
		FormattedAmount: view.FormattedAmount,
		FormattedDate:   view.FormattedDate,
	}
}

type TransactionResponse struct {
	ID              string                 `json:"id"`
	FullID          string                 `json:"fullId"`
	UserName        string                 `json:"userName"`
	Amount          string                 `json:"amount"`
	Type            domain.TransactionType `json:"type"`
	Description     string                 `json:"description"`
	Badge           domain.Badge           `json:"badge"`
	CreatedAt       time.Time              `json:"createdAt"`
	FormattedAmount string                 `json:"formattedAmount"`
	FormattedDate   string                 `json:"formattedDate"`
}

func newTransactionResponse(view domain.TransactionView) TransactionResponse {
	return TransactionResponse{
		ID:              view.DisplayID,
		FullID:          view.FullID,
		UserName:        view.UserName,
		Amount:          view.Amount.String(),
		Type:            view.Type,
		Description:     view.Description,
		Badge:           view.Badge,
		CreatedAt:       view.CreatedAt,
		FormattedAmount: view.FormattedAmount,
		FormattedDate:   view.FormattedDate,
	}
}

type BalanceResponse struct {
	ID             string    `json:"id"`
	FullID         string    `json:"fullId"`
	UserName       string    `json:"userName"`
	TotalBalance   string    `json:"totalBalance"`
	UpdatedAt      time.Time `json:"updatedAt"`
	FormattedTotal string    `json:"formattedTotal"`
	FormattedDate  string    `json:"formattedDate"`
}

func newBalanceResponse(view domain.BalanceView) BalanceResponse {
	return BalanceResponse{
		ID:             view.DisplayID,
		FullID:         view.FullID,
		UserName:       view.UserName,
		TotalBalance:   view.Total.String(),
		UpdatedAt:      view.UpdatedAt,
		FormattedTotal: view.FormattedTotal,
		FormattedDate:  view.FormattedDate,
	}
}

type InstallmentResponse struct {
	ID              string                       `json:"id"`
	FullID          string                       `json:"fullId"`
	LoanID          string                       `json:"loanId"`
	UserName        string                       `json:"userName"`
	Amount          string                       `json:"amount"`
	DueDate         time.Time                    `json:"dueDate"`
	PaidDate        *time.Time                   `json:"paidDate"`
	Status          domain.InstallmentStatusType `json:"status"`
	Badge           domain.Badge                 `json:"badge"`
	FormattedAmount string                       `json:"formattedAmount"`
	FormattedDue    string                       `json:"formattedDue"`
}

func newInstallmentResponse(view domain.InstallmentView) InstallmentResponse {
	return InstallmentResponse{
		ID:              view.DisplayID,
		FullID:          view.FullID,
		LoanID:          view.LoanDisplayID,
		UserName:        view.UserName,
		Amount:          view.Amount.String(),
		DueDate:         view.DueDate,
		PaidDate:        view.PaidDate,
		Status:          view.Status,
		Badge:           view.Badge,
		FormattedAmount: view.FormattedAmount,
		FormattedDue:    view.FormattedDue,
	}
}

type UserResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Role          domain.RoleType `json:"role"`
	CreatedAt     time.Time       `json:"createdAt"`
	FormattedDate string          `json:"formattedDate"`
}

func newUserResponse(view domain.UserView) UserResponse {
	return UserResponse{
		ID:            view.ID,
		Name:          view.Name,
		Email:         view.Email,
		Phone:         view.Phone,
		Role:          view.Role,
		CreatedAt:     view.CreatedAt,
		FormattedDate: view.FormattedDate,
	}
}
