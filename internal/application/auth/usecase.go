package auth

import (
	"github.com/dishdash/dishdash-api/internal/application/dto"
	"github.com/dishdash/dishdash-api/internal/domain"
	"github.com/dishdash/dishdash-api/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret  string
	ExpDays int
	Issuer  string
}

// AuthUseCase emisión de tokens de identidad. No hay login con password:
// el frontend autentica al usuario (sign-in federado) y pide aquí un token
// firmado para la identidad que presenta.
type AuthUseCase struct {
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{jwtCfg: jwtCfg}
}

// IssueToken firma un token para la identidad indicada.
func (uc *AuthUseCase) IssueToken(in dto.TokenRequest) (*dto.TokenResponse, error) {
	if in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Email, in.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpDays)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}
