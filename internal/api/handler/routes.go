package handler

import (
	"net/http"

	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/api/handler/router"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/usecases/advertising"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/usecases/authenticating"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/usecases/metering"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/usecases/treasury"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/middleware"
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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
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

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Advertisers retorna as rotas do registro de anunciantes
func Advertisers(service advertising.AdvertisingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/advertisers",
			Method:      http.MethodPost,
			Handler:     RegisterAdvertiser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/advertisers",
			Method:      http.MethodGet,
			Handler:     ListAdvertisers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/advertisers/:id",
			Method:      http.MethodGet,
			Handler:     GetAdvertiser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/advertisers/:id/campaigns",
			Method:      http.MethodGet,
			Handler:     ListAdvertiserCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/advertisers/:id/verification",
			Method:      http.MethodPut,
			Handler:     SetAdvertiserVerification(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/me/advertiser",
			Method:      http.MethodGet,
			Handler:     GetMyAdvertiser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Campaigns retorna as rotas do ledger de campanhas
func Campaigns(service advertising.AdvertisingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/activate",
			Method:      http.MethodPost,
			Handler:     ActivateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/pause",
			Method:      http.MethodPost,
			Handler:     PauseCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/cancel",
			Method:      http.MethodPost,
			Handler:     CancelCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/fund",
			Method:      http.MethodPost,
			Handler:     FundCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Engagements retorna as rotas de medição de engajamento. O registro é
// exclusivo da autoridade de medição; leituras ficam abertas aos demais papéis.
func Engagements(service metering.MeteringService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/:id/engagements",
			Method:      http.MethodPost,
			Handler:     RecordEngagement(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MeteringOnly()},
		},
		{
			Path:        "/v1/campaigns/:id/engagements",
			Method:      http.MethodGet,
			Handler:     ListCampaignEngagements(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/stats/daily",
			Method:      http.MethodGet,
			Handler:     GetCampaignDailyStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Wallets retorna as rotas de carteira
func Wallets(service treasury.TreasuryService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users/:id/wallet/deposit",
			Method:      http.MethodPost,
			Handler:     Deposit(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/wallet",
			Method:      http.MethodGet,
			Handler:     GetUserWallet(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/wallet",
			Method:      http.MethodGet,
			Handler:     GetMyWallet(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// FeePool retorna as rotas do pool de taxas da plataforma
func FeePool(service treasury.TreasuryService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/feepool",
			Method:      http.MethodGet,
			Handler:     GetFeePool(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/feepool/withdraw",
			Method:      http.MethodPost,
			Handler:     WithdrawFees(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
