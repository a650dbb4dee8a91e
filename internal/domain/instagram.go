package domain

import "time"

// InstagramToken é o token de longa duração de um mentorado, armazenado criptografado
type InstagramToken struct {
	MenteeID       int64     `json:"mentee_id"`
	EncryptedToken string    `json:"-"`
	ExpiresAt      time.Time `json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type InstagramStatus struct {
	Connected bool       `json:"connected"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type InstagramConnectRequest struct {
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri"`
}
