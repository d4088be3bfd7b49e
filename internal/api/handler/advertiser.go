package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/domain"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/usecases/advertising"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// writeAdvertisingError converte erros do ledger na resposta HTTP apropriada
func writeAdvertisingError(w http.ResponseWriter, err error, fallback string) {
	// Verificar se é um LedgerError para obter o código e o contexto do erro
	var ledgerErr *advertising.LedgerError
	if errors.As(err, &ledgerErr) {
		var details map[string]any
		if ledgerErr.CampaignID != "" {
			details = map[string]any{"campaign_id": ledgerErr.CampaignID}
		}

		apiErrors.WriteError(w, ledgerErr.Code, ledgerErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, advertising.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

// RegisterAdvertiser cria a conta de anunciante da identidade autenticada
func RegisterAdvertiser(service advertising.AdvertisingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RegisterAdvertiser")

		capability, ok := requestCapability(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		advertiser, err := service.RegisterAdvertiser(r.Context(), capability)
		if err != nil {
			logrus.Error("Error registering advertiser:", err)
			writeAdvertisingError(w, err, "Erro ao registrar anunciante")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(advertiser); err != nil {
			logrus.Error(err)
		}
	}
}

// GetAdvertiser retorna a conta de anunciante por ID
func GetAdvertiser(service advertising.AdvertisingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do anunciante é obrigatório", nil)
			return
		}

		advertiser, err := service.GetAdvertiser(id)
		if err != nil {
			logrus.Error(err)
			writeAdvertisingError(w, err, "Erro ao buscar anunciante")
			return
		}

		if advertiser == nil {
			apiErrors.WriteError(w, apiErrors.ErrAdvertiserNotFound, "Anunciante não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(advertiser); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// GetMyAdvertiser retorna a conta de anunciante do usuário logado
func GetMyAdvertiser(service advertising.AdvertisingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		capability, ok := requestCapability(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		advertiser, err := service.GetAdvertiserByOwner(capability.UserID)
		if err != nil {
			logrus.Error(err)
			writeAdvertisingError(w, err, "Erro ao buscar anunciante")
			return
		}

		if advertiser == nil {
			apiErrors.WriteError(w, apiErrors.ErrAdvertiserNotFound, "Identidade não possui conta de anunciante", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(advertiser); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// ListAdvertisers lista todas as contas de anunciante
func ListAdvertisers(service advertising.AdvertisingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		advertisers, err := service.ListAdvertisers()
		if err != nil {
			logrus.Error("Error listing advertisers:", err)
			writeAdvertisingError(w, err, "Erro ao listar anunciantes")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(advertisers); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// SetAdvertiserVerification marca ou desmarca o selo de verificação de um
// anunciante. Operação exclusiva da capability de admin.
func SetAdvertiserVerification(service advertising.AdvertisingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SetAdvertiserVerification")

		capability, ok := requestCapability(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do anunciante é obrigatório", nil)
			return
		}

		var req domain.SetVerificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		advertiser, err := service.SetVerification(r.Context(), capability, id, req.Verified)
		if err != nil {
			logrus.Error("Error setting verification:", err)
			writeAdvertisingError(w, err, "Erro ao atualizar verificação do anunciante")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(advertiser); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}
