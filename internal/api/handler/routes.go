package handler

import (
	"net/http"

	"github.com/FelipeSouzaG/smart-store-reports-api/internal/api/handler/router"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/config"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/authenticating"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/goalsetting"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/inventorying"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/invoicing"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/ordering"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/reporting"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/settling"
	"github.com/FelipeSouzaG/smart-store-reports-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/logout",
			Method:      http.MethodPost,
			Handler:     Logout(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/cash-flow",
			Method:      http.MethodGet,
			Handler:     GetCashFlow(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/reports/accrual",
			Method:      http.MethodGet,
			Handler:     GetAccrual(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/reports/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/reports/periods",
			Method:      http.MethodGet,
			Handler:     GetAvailablePeriods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/statement",
			Method:      http.MethodGet,
			Handler:     GetStatement(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
	}
}

func Transactions(service settling.Settler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/transactions/pay",
			Method:      http.MethodPut,
			Handler:     PayTransaction(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/transactions/installments/pay",
			Method:      http.MethodPut,
			Handler:     PayInstallment(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
	}
}

func Invoices(service invoicing.InvoiceTracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/invoices/payable",
			Method:      http.MethodGet,
			Handler:     ListPayableInvoices(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/invoices/history",
			Method:      http.MethodGet,
			Handler:     ListInvoiceHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/invoices/items/:id",
			Method:      http.MethodGet,
			Handler:     GetInvoiceItems(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/invoices/pay",
			Method:      http.MethodPut,
			Handler:     PayInvoice(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/invoices/revert",
			Method:      http.MethodPut,
			Handler:     RevertInvoice(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
	}
}

func Inventory(cfg *config.Config, service inventorying.Estimator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/inventory/report",
			Method:      http.MethodGet,
			Handler:     GetInventoryReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/inventory/rankings",
			Method:      http.MethodGet,
			Handler:     GetProductRankings(cfg, service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/inventory/free-stock",
			Method:      http.MethodGet,
			Handler:     CheckFreeStock(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Orders(service ordering.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/orders",
			Method:      http.MethodGet,
			Handler:     ListOrders(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/orders/pending-count",
			Method:      http.MethodGet,
			Handler:     GetPendingOrdersCount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/orders/reservations",
			Method:      http.MethodGet,
			Handler:     GetReservations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/orders/status",
			Method:      http.MethodPut,
			Handler:     UpdateOrderStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Goals(service goalsetting.GoalSetter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/kpi-goals",
			Method:      http.MethodGet,
			Handler:     GetGoals(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/kpi-goals",
			Method:      http.MethodPut,
			Handler:     UpdateGoals(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOnly()},
		},
	}
}
