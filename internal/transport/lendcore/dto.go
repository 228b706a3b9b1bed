package lendcore

// Аргументы мутирующих запросов к ядру кредитования. Денежные суммы уходят
// строками - так их хранит само ядро.

// Ядро аутентифицирует по имени пользователя, не по email.
type SignInArgs struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type signInResult struct {
	Token string `json:"token"`
}

type AddUserArgs struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

type UpdateUserArgs struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// Date - момент проведения транзакции в RFC 3339; ядро ждет его в теле
// запроса и не подставляет самостоятельно.
type AddTransactionArgs struct {
	UserID      string `json:"userId"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type updateLoanStatusArgs struct {
	Status string `json:"status"`
}

type recordPaymentArgs struct {
	PaidDate string `json:"paidDate"`
}
