package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/domain"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/usecases/advertising"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// CreateCampaign cria uma campanha em DRAFT debitando o valor bruto da
// carteira do anunciante. A taxa da plataforma sai na entrada do valor.
func CreateCampaign(service advertising.AdvertisingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCampaign")

		capability, ok := requestCapability(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req domain.CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		campaign, err := service.CreateCampaign(r.Context(), capability, &req)
		if err != nil {
			logrus.Error("Error creating campaign:", err)
			writeAdvertisingError(w, err, "Erro ao criar campanha")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			logrus.Error(err)
		}
	}
}

// GetCampaign retorna uma campanha por ID
func GetCampaign(service advertising.AdvertisingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
			return
		}

		campaign, err := service.GetCampaign(id)
		if err != nil {
			logrus.Error(err)
			writeAdvertisingError(w, err, "Erro ao buscar campanha")
			return
		}

		if campaign == nil {
			apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// ListCampaigns lista campanhas com filtro opcional de status
// (ex.: ?status=ACTIVE,PAUSED)
func ListCampaigns(service advertising.AdvertisingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filterStatus := r.URL.Query().Get("status")

		availableStatus := make([]domain.CampaignStatus, 0)
		if filterStatus != "" {
			for _, status := range strings.Split(filterStatus, ",") {
				availableStatus = append(availableStatus, domain.CampaignStatus(status))
			}
		}

		campaigns, err := service.ListCampaigns(availableStatus)
		if err != nil {
			logrus.Error("Error listing campaigns:", err)
			writeAdvertisingError(w, err, "Erro ao listar campanhas")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// ListAdvertiserCampaigns lista as campanhas de um anunciante
func ListAdvertiserCampaigns(service advertising.AdvertisingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do anunciante é obrigatório", nil)
			return
		}

		campaigns, err := service.ListCampaignsByAdvertiser(id)
		if err != nil {
			logrus.Error("Error listing advertiser campaigns:", err)
			writeAdvertisingError(w, err, "Erro ao listar campanhas do anunciante")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// campaignIDFromRequest extrai e valida o parâmetro :id das rotas de campanha
func campaignIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if id == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório", nil)
		return "", false
	}

	return id, true
}

// ActivateCampaign transiciona a campanha do dono para ACTIVE
func ActivateCampaign(service advertising.AdvertisingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ActivateCampaign")

		capability, ok := requestCapability(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id, ok := campaignIDFromRequest(w, r)
		if !ok {
			return
		}

		campaign, err := service.ActivateCampaign(r.Context(), capability, id)
		if err != nil {
			logrus.Error("Error activating campaign:", err)
			writeAdvertisingError(w, err, "Erro ao ativar campanha")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// PauseCampaign transiciona a campanha do dono para PAUSED
func PauseCampaign(service advertising.AdvertisingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PauseCampaign")

		capability, ok := requestCapability(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id, ok := campaignIDFromRequest(w, r)
		if !ok {
			return
		}

		campaign, err := service.PauseCampaign(r.Context(), capability, id)
		if err != nil {
			logrus.Error("Error pausing campaign:", err)
			writeAdvertisingError(w, err, "Erro ao pausar campanha")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// CancelCampaign encerra a campanha e devolve o saldo restante à carteira
// do dono. A resposta informa exatamente o valor reembolsado.
func CancelCampaign(service advertising.AdvertisingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CancelCampaign")

		capability, ok := requestCapability(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id, ok := campaignIDFromRequest(w, r)
		if !ok {
			return
		}

		resp, err := service.CancelCampaign(r.Context(), capability, id)
		if err != nil {
			logrus.Error("Error canceling campaign:", err)
			writeAdvertisingError(w, err, "Erro ao cancelar campanha")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// FundCampaign aporta um novo valor bruto em uma campanha não terminal
func FundCampaign(service advertising.AdvertisingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - FundCampaign")

		capability, ok := requestCapability(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id, ok := campaignIDFromRequest(w, r)
		if !ok {
			return
		}

		var req domain.FundCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		campaign, err := service.FundCampaign(r.Context(), capability, id, &req)
		if err != nil {
			logrus.Error("Error funding campaign:", err)
			writeAdvertisingError(w, err, "Erro ao aportar na campanha")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaign); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}
