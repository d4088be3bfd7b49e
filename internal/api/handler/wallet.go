package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/domain"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/usecases/treasury"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// writeTreasuryError converte erros de tesouraria na resposta HTTP apropriada
func writeTreasuryError(w http.ResponseWriter, err error, fallback string) {
	var treasuryErr *treasury.TreasuryError
	if errors.As(err, &treasuryErr) {
		var details map[string]any
		if treasuryErr.UserID != 0 {
			details = map[string]any{"user_id": treasuryErr.UserID}
		}

		apiErrors.WriteError(w, treasuryErr.Code, treasuryErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, treasury.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

// Deposit credita valor externo na carteira de um usuário (somente admin)
func Deposit(service treasury.TreasuryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Deposit")

		capability, ok := requestCapability(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if idStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		userID, err := strconv.Atoi(idStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		var req domain.DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		wallet, err := service.Deposit(r.Context(), capability, userID, &req)
		if err != nil {
			logrus.Error("Error depositing:", err)
			writeTreasuryError(w, err, "Erro ao creditar carteira")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(wallet); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// GetMyWallet retorna a carteira do usuário logado
func GetMyWallet(service treasury.TreasuryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		capability, ok := requestCapability(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		wallet, err := service.GetWallet(capability, capability.UserID)
		if err != nil {
			logrus.Error(err)
			writeTreasuryError(w, err, "Erro ao consultar carteira")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(wallet); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// GetUserWallet retorna a carteira de um usuário específico. O usecase
// garante que apenas o próprio dono ou o admin enxerga o saldo.
func GetUserWallet(service treasury.TreasuryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		capability, ok := requestCapability(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if idStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do usuário não fornecido", nil)
			return
		}

		userID, err := strconv.Atoi(idStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do usuário inválido", nil)
			return
		}

		wallet, err := service.GetWallet(capability, userID)
		if err != nil {
			logrus.Error(err)
			writeTreasuryError(w, err, "Erro ao consultar carteira")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(wallet); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// GetFeePool retorna o saldo acumulado de taxas da plataforma (somente admin)
func GetFeePool(service treasury.TreasuryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		capability, ok := requestCapability(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		pool, err := service.GetFeePool(capability)
		if err != nil {
			logrus.Error(err)
			writeTreasuryError(w, err, "Erro ao consultar pool de taxas")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(pool); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}

// WithdrawFees drena o pool de taxas para a carteira do admin chamador.
// Com o pool zerado a operação é um no-op que responde amount 0.
func WithdrawFees(service treasury.TreasuryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - WithdrawFees")

		capability, ok := requestCapability(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		resp, err := service.WithdrawFees(r.Context(), capability)
		if err != nil {
			logrus.Error("Error withdrawing fees:", err)
			writeTreasuryError(w, err, "Erro ao sacar taxas")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	}
}
