package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Papéis reconhecidos pela plataforma. A emissão acontece uma única vez no
// bootstrap do registro (seed da migração): exatamente um admin e uma
// autoridade de medição; anunciantes se cadastram livremente.
const (
	RoleAdmin      = 1
	RoleMetering   = 2
	RoleAdvertiser = 3
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID       int     `json:"id"`
	Name     *string `json:"name"`
	Lastname *string `json:"lastname"`
	Email    *string `json:"email"`
	Active   *bool   `json:"active"`
	RoleID   *int    `json:"role_id"`
	Deleted  *bool   `json:"deleted"`
}

type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserActive bool
	UserRoleID int
	jwt.RegisteredClaims
}

// Capability é a credencial explícita apresentada nas chamadas privilegiadas.
// Nenhuma operação de admin ou de medição acontece sem a prova em mãos: o
// handler constrói a capability a partir das claims validadas e o usecase
// verifica de novo antes de qualquer mutação.
type Capability struct {
	UserID int `json:"user_id"`
	RoleID int `json:"role_id"`
}

// CanAdministrate retorna verdadeiro para a capability do admin
func (c Capability) CanAdministrate() bool {
	return c.RoleID == RoleAdmin
}

// CanMeter retorna verdadeiro para a autoridade de medição (o admin também
// pode medir, espelhando o token único do bootstrap original)
func (c Capability) CanMeter() bool {
	return c.RoleID == RoleMetering || c.RoleID == RoleAdmin
}

// CapabilityFromClaims extrai a credencial das claims de um token validado
func CapabilityFromClaims(claims *Claims) Capability {
	return Capability{
		UserID: claims.UserID,
		RoleID: claims.UserRoleID,
	}
}
