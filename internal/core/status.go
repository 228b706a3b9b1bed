package core

import (
	"time"

	"github.com/fsdevblog/lendboard/internal/domain"
)

// LoanAction - административное действие над займом. Страница предлагает
// действие только если оно легально из текущего статуса (AllowedLoanActions).
type LoanAction string

const (
	ActionApprove       LoanAction = "approve"
	ActionReject        LoanAction = "reject"
	ActionMarkOngoing   LoanAction = "mark-ongoing"
	ActionMarkCompleted LoanAction = "mark-completed"
)

// Машина состояний займа. REJECTED и COMPLETED терминальны и в карте
// отсутствуют.
var loanFlow = map[domain.LoanStatusType][]domain.LoanStatusType{
	domain.LoanStatusPending:  {domain.LoanStatusApproved, domain.LoanStatusRejected},
	domain.LoanStatusApproved: {domain.LoanStatusOngoing},
	domain.LoanStatusOngoing:  {domain.LoanStatusCompleted},
}

var loanActionTargets = map[LoanAction]domain.LoanStatusType{
	ActionApprove:       domain.LoanStatusApproved,
	ActionReject:        domain.LoanStatusRejected,
	ActionMarkOngoing:   domain.LoanStatusOngoing,
	ActionMarkCompleted: domain.LoanStatusCompleted,
}

// LoanActionTarget возвращает статус, в который переводит действие.
func LoanActionTarget(action LoanAction) (domain.LoanStatusType, bool) {
	target, ok := loanActionTargets[action]
	return target, ok
}

// ValidateLoanTransition проверяет легальность перехода from -> to.
// Нелегальный переход возвращает InvalidTransitionError; вызывающая сторона
// обязана не менять состояние (и не дергать ядро).
func ValidateLoanTransition(from, to domain.LoanStatusType) error {
	for _, allowed := range loanFlow[from] {
		if allowed == to {
			return nil
		}
	}
	return domain.NewInvalidTransitionError(from, to)
}

// AllowedLoanActions перечисляет действия, легальные из текущего статуса.
// Для терминальных статусов возвращает nil.
func AllowedLoanActions(status domain.LoanStatusType) []LoanAction {
	switch status {
	case domain.LoanStatusPending:
		return []LoanAction{ActionApprove, ActionReject}
	case domain.LoanStatusApproved:
		return []LoanAction{ActionMarkOngoing}
	case domain.LoanStatusOngoing:
		return []LoanAction{ActionMarkCompleted}
	default:
		return nil
	}
}

// ClassifyInstallment пересчитывает производный статус платежа на момент now.
// paid терминален; pending с истекшей датой платежа становится overdue.
// Явного перехода в overdue нет - это производное состояние, поэтому его
// нужно выводить заново при каждой классификации.
func ClassifyInstallment(
	status domain.InstallmentStatusType,
	dueDate time.Time,
	now time.Time,
) domain.InstallmentStatusType {
	if status == domain.InstallmentStatusPaid {
		return status
	}
	if dueDate.Before(now) {
		return domain.InstallmentStatusOverdue
	}
	return domain.InstallmentStatusPending
}

// RecordPayment переводит платеж в paid. Единственный внешне инициируемый
// переход платежа; требует непустую дату оплаты и срабатывает безусловно,
// даже если оплата записана после срока.
func RecordPayment(view *domain.InstallmentView, paidAt time.Time) error {
	if paidAt.IsZero() {
		return domain.ErrPaidDateRequired
	}
	view.Status = domain.InstallmentStatusPaid
	view.PaidDate = &paidAt
	view.Badge = InstallmentBadge(view.Status)
	return nil
}

var loanBadges = map[domain.LoanStatusType]domain.Badge{
	domain.LoanStatusPending:   {Label: "Pending", ColorClass: "yellow", IconKind: "clock"},
	domain.LoanStatusApproved:  {Label: "Approved", ColorClass: "blue", IconKind: "thumbs-up"},
	domain.LoanStatusRejected:  {Label: "Rejected", ColorClass: "red", IconKind: "thumbs-down"},
	domain.LoanStatusOngoing:   {Label: "Ongoing", ColorClass: "purple", IconKind: "file-text"},
	domain.LoanStatusCompleted: {Label: "Completed", ColorClass: "green", IconKind: "check"},
}

var installmentBadges = map[domain.InstallmentStatusType]domain.Badge{
	domain.InstallmentStatusPaid:    {Label: "Paid", ColorClass: "green", IconKind: "check"},
	domain.InstallmentStatusPending: {Label: "Pending", ColorClass: "yellow", IconKind: "calendar"},
	domain.InstallmentStatusOverdue: {Label: "Overdue", ColorClass: "red", IconKind: "x"},
}

var transactionBadges = map[domain.TransactionType]domain.Badge{
	domain.TransactionTypeDeposit:  {Label: "deposit", ColorClass: "green", IconKind: "arrow-up"},
	domain.TransactionTypeWithdraw: {Label: "withdraw", ColorClass: "red", IconKind: "arrow-down"},
}

func LoanBadge(status domain.LoanStatusType) domain.Badge {
	return loanBadges[status]
}

func InstallmentBadge(status domain.InstallmentStatusType) domain.Badge {
	return installmentBadges[status]
}

func TransactionBadge(t domain.TransactionType) domain.Badge {
	return transactionBadges[t]
}
