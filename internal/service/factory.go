package service

import (
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	AuthService        *AuthService
	LoanService        *LoanService
	BalanceService     *BalanceService
	UserService        *UserService
	InstallmentService *InstallmentService
	DashboardService   *DashboardService
	ReportService      *ReportService
}

func Factory(client CoreClient, jwtSecret []byte, log *logrus.Logger) *AppServices {
	entry := func(name string) *logrus.Entry {
		return log.WithField("service", name)
	}

	return &AppServices{
		AuthService:        NewAuthService(client, jwtSecret),
		LoanService:        NewLoanService(client, entry("loans")),
		BalanceService:     NewBalanceService(client, entry("balances"), nil),
		UserService:        NewUserService(client, entry("users")),
		InstallmentService: NewInstallmentService(client, entry("installments"), nil),
		DashboardService:   NewDashboardService(client, entry("dashboard"), nil),
		ReportService:      NewReportService(client, entry("reports"), nil),
	}
}
