package domain

import "github.com/golang-jwt/jwt/v5"

// Papéis aceitos no token
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// Claims é o conteúdo do token de acesso ao dashboard
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
