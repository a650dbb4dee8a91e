package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Claims são as informações extraídas do JWT emitido pelo provedor de autenticação
type Claims struct {
	UserEmail string `json:"email"`
	UserName  string `json:"name"`
	UserRole  string `json:"role"`
	MenteeID  *int64 `json:"mentee_id,omitempty"`
	jwt.RegisteredClaims
}

// UserID é o identificador do usuário no provedor externo
func (c *Claims) UserID() string {
	return c.Subject
}

func (c *Claims) IsAdmin() bool {
	return c.UserRole == RoleAdmin
}

// CanAccessMentee indica se o usuário é admin ou o próprio mentorado
func (c *Claims) CanAccessMentee(menteeID int64) bool {
	if c.IsAdmin() {
		return true
	}
	return c.MenteeID != nil && *c.MenteeID == menteeID
}
