package handler

import (
	"net/http"

	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/domain"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/middleware"
)

// requestCapability extrai a capability das claims validadas pelo
// AuthMiddleware. Handlers privilegiados repassam a capability ao usecase,
// que verifica o papel de novo antes de mutar qualquer registro.
func requestCapability(r *http.Request) (domain.Capability, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		return domain.Capability{}, false
	}

	return domain.CapabilityFromClaims(claims), true
}
