package handler

import (
	"encoding/json"
	"net/http"

	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/domain"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/scheduler"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/apiErrors"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeEngagementRollup = "engagement-rollup"
	CronJobTypeLedgerAudit      = "ledger-audit"
	CronJobTypeAll              = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	EngagementRollupService *scheduler.EngagementRollupService
	LedgerAuditService      *scheduler.LedgerAuditService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeEngagementRollup:
			// Executar consolidação diária de engajamentos
			if services.EngagementRollupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de consolidação de engajamentos não disponível", nil)
				return
			}
			services.EngagementRollupService.TriggerManualSync()

		case CronJobTypeLedgerAudit:
			// Executar auditoria de consistência do ledger
			if services.LedgerAuditService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de auditoria do ledger não disponível", nil)
				return
			}
			services.LedgerAuditService.TriggerManualSync()

		case CronJobTypeAll:
			// Executar todas as rotinas
			if services.EngagementRollupService != nil {
				services.EngagementRollupService.TriggerManualSync()
			}
			if services.LedgerAuditService != nil {
				services.LedgerAuditService.TriggerManualSync()
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: engagement-rollup, ledger-audit, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"engagement-rollup": services.EngagementRollupService.GetStatus(),
			"ledger-audit":      services.LedgerAuditService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
