package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/lendboard/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup              = "/api"
	SignInRoute             = "/auth/signin"
	DashboardRoute          = "/dashboard"
	LoansRoute              = "/loans"
	LoanApproveRoute        = "/loans/:id/approve"
	LoanRejectRoute         = "/loans/:id/reject"
	UsersRoute              = "/users"
	UserRoute               = "/users/:id"
	BalanceRoute            = "/balance"
	TransactionsRoute       = "/transactions"
	InstallmentsRoute       = "/installments"
	InstallmentPaymentRoute = "/installments/:id/payment"
	ReportRoute             = "/reports/:kind"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	AuthService        AuthServicer
	LoanService        LoanServicer
	UserService        UserServicer
	BalanceService     BalanceServicer
	InstallmentService InstallmentServicer
	DashboardService   DashboardServicer
	ReportService      ReportServicer
	JWTSecretKey       []byte
}

func New(args RouterArgs) *gin.Engine {
	if err := registerValidators(); err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.AuthService)
	dashboardHandler := NewDashboardHandler(args.DashboardService)
	loansHandler := NewLoansHandler(args.LoanService)
	usersHandler := NewUsersHandler(args.UserService)
	balanceHandler := NewBalanceHandler(args.BalanceService)
	installmentsHandler := NewInstallmentsHandler(args.InstallmentService)
	reportsHandler := NewReportsHandler(args.ReportService)

	api := r.Group(RouteGroup)

	api.POST(SignInRoute, authHandler.SignIn)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного администратора.
	api.GET(DashboardRoute, dashboardHandler.Overview)

	api.GET(LoansRoute, loansHandler.Index)
	api.POST(LoanApproveRoute, loansHandler.Approve)
	api.POST(LoanRejectRoute, loansHandler.Reject)

	api.GET(UsersRoute, usersHandler.Index)
	api.POST(UsersRoute, usersHandler.Create)
	api.GET(UserRoute, usersHandler.Show)
	api.PUT(UserRoute, usersHandler.Update)
	api.DELETE(UserRoute, usersHandler.Delete)

	api.GET(BalanceRoute, balanceHandler.Overview)
	api.GET(TransactionsRoute, balanceHandler.Transactions)
	api.POST(TransactionsRoute, balanceHandler.AddTransaction)

	api.GET(InstallmentsRoute, installmentsHandler.Index)
	api.POST(InstallmentPaymentRoute, installmentsHandler.RecordPayment)

	api.GET(ReportRoute, reportsHandler.Show)
	return r
}
