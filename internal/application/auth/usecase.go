package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain"
	"github.com/jhoicas/stocks-dashboard-api/pkg/jwt"
)

// Roles del personal.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Account cuenta del personal con su hash bcrypt.
type Account struct {
	Username     string
	PasswordHash string
	Role         string
}

// ParseAccounts interpreta "usuario:hashBcrypt:rol,..." (rol opcional, default staff).
func ParseAccounts(raw string) ([]Account, error) {
	var out []Account
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("auth: cuenta mal formada %q", parts[0])
		}
		acc := Account{Username: parts[0], PasswordHash: parts[1], Role: RoleStaff}
		if len(parts) == 3 && parts[2] != "" {
			acc.Role = strings.ToLower(parts[2])
		}
		switch acc.Role {
		case RoleAdmin, RoleManager, RoleStaff:
		default:
			return nil, fmt.Errorf("auth: rol %q no soportado para %s", acc.Role, acc.Username)
		}
		out = append(out, acc)
	}
	return out, nil
}

// AuthUseCase login del personal contra cuentas configuradas.
type AuthUseCase struct {
	accounts map[string]Account
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(accounts []Account, jwtCfg JWTConfig) *AuthUseCase {
	byName := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		byName[strings.ToLower(a.Username)] = a
	}
	return &AuthUseCase{accounts: byName, jwtCfg: jwtCfg}
}

// Login verifica usuario/password, genera JWT y retorna token + usuario.
// Usuario inexistente y password incorrecto devuelven el mismo error.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	acc, ok := uc.accounts[strings.ToLower(strings.TrimSpace(in.Username))]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, acc.Username, acc.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		User:      dto.UserResponse{Username: acc.Username, Role: acc.Role},
	}, nil
}
