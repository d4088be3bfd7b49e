package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/domain"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/usecases/metering"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/apiErrors"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/log"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/utils"
	"github.com/julienschmidt/httprouter"
)

const defaultEngagementPageSize = 100

// writeMeteringError converte erros de medição na resposta HTTP apropriada
func writeMeteringError(w http.ResponseWriter, err error, fallback string) {
	var meteringErr *metering.MeteringError
	if errors.As(err, &meteringErr) {
		var details map[string]any
		if meteringErr.CampaignID != "" {
			details = map[string]any{"campaign_id": meteringErr.CampaignID}
		}

		apiErrors.WriteError(w, meteringErr.Code, meteringErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, metering.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

// RecordEngagement registra um evento de engajamento contra a campanha.
// Somente a autoridade de medição (ou o admin) chega aqui; o débito do
// orçamento e o eventual encerramento acontecem na mesma transação.
func RecordEngagement(service metering.MeteringService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		capability, ok := requestCapability(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		var req domain.RecordEngagementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"campaign_id":     campaignID,
			"engagement_type": req.Type.String(),
		}).Debug("metering: recording engagement")

		resp, err := service.RecordEngagement(r.Context(), capability, campaignID, &req)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Warn("metering: engagement rejected")

			writeMeteringError(w, err, "Erro ao registrar engajamento")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.WithField("error", err.Error()).Error("metering: error encoding response")
		}
	}
}

// ListCampaignEngagements lista os eventos registrados contra uma campanha,
// mais recentes primeiro (ex.: ?limit=50)
func ListCampaignEngagements(service metering.MeteringService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		limit := uint64(defaultEngagementPageSize)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		engagements, err := service.ListEngagements(campaignID, limit)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("metering: error listing engagements")

			writeMeteringError(w, err, "Erro ao listar engajamentos")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(engagements); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// GetCampaignDailyStats retorna o consolidado diário de engajamento de uma
// campanha no período pedido (?start_date=2026-08-01&end_date=2026-08-07)
func GetCampaignDailyStats(service metering.MeteringService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		var startDate, endDate *time.Time

		if raw := r.URL.Query().Get("start_date"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				logger.WithFields(log.Fields{
					"campaign_id": campaignID,
					"start_date":  raw,
					"error":       err.Error(),
				}).Warn("metering: invalid start_date parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro start_date inválido", nil)
				return
			}
			startDate = parsed
		}

		if raw := r.URL.Query().Get("end_date"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				logger.WithFields(log.Fields{
					"campaign_id": campaignID,
					"end_date":    raw,
					"error":       err.Error(),
				}).Warn("metering: invalid end_date parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro end_date inválido", nil)
				return
			}
			endDate = parsed
		}

		stats, err := service.ListDailyStats(campaignID, startDate, endDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("metering: error fetching daily stats")

			writeMeteringError(w, err, "Erro ao buscar consolidado diário")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}
