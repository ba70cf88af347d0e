package middleware

import (
	"net/http"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
)

// RoleGuard cria os middlewares de papel. Com a autenticação desabilitada todas as
// rotas ficam liberadas.
type RoleGuard struct {
	enabled bool
}

func NewRoleGuard(authEnabled bool) RoleGuard {
	return RoleGuard{enabled: authEnabled}
}

// RoleMiddleware restringe o acesso aos papéis informados
func (g RoleGuard) RoleMiddleware(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !g.enabled {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, userClaims.Role) {
				logrus.Warningf("Acesso negado para usuário %s, papel=%s", userClaims.UserID, userClaims.Role)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func (g RoleGuard) AdminOnly() func(http.Handler) http.Handler {
	return g.RoleMiddleware(domain.RoleAdmin)
}

// AllRoles permite acesso para qualquer usuário autenticado
func (g RoleGuard) AllRoles() func(http.Handler) http.Handler {
	return g.RoleMiddleware(domain.RoleAdmin, domain.RoleViewer)
}
