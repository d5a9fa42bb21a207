package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stocks-dashboard-api/internal/application/auth"
	"github.com/jhoicas/stocks-dashboard-api/internal/application/dto"
	"github.com/jhoicas/stocks-dashboard-api/internal/domain"
	pkgjwt "github.com/jhoicas/stocks-dashboard-api/pkg/jwt"
)

const secret = "test-secret"

func hash(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestParseAccounts(t *testing.T) {
	accs, err := auth.ParseAccounts("ama:$2a$04$abc:admin, kofi:$2a$04$def")
	require.NoError(t, err)
	require.Len(t, accs, 2)
	assert.Equal(t, auth.RoleAdmin, accs[0].Role)
	assert.Equal(t, auth.RoleStaff, accs[1].Role)

	_, err = auth.ParseAccounts("solo-usuario")
	assert.Error(t, err)
	_, err = auth.ParseAccounts("ama:$2a$04$abc:owner")
	assert.Error(t, err)

	accs, err = auth.ParseAccounts("")
	require.NoError(t, err)
	assert.Empty(t, accs)
}

func TestLogin(t *testing.T) {
	uc := auth.NewAuthUseCase(
		[]auth.Account{{Username: "Ama", PasswordHash: hash(t, "s3cret!"), Role: auth.RoleManager}},
		auth.JWTConfig{Secret: secret, ExpMinutes: 30, Issuer: "test"},
	)

	out, err := uc.Login(dto.LoginRequest{Username: "ama", Password: "s3cret!"})
	require.NoError(t, err)
	assert.Equal(t, 1800, out.ExpiresIn)
	assert.Equal(t, auth.RoleManager, out.User.Role)

	user, role, err := pkgjwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "Ama", user)
	assert.Equal(t, auth.RoleManager, role)

	_, err = uc.Login(dto.LoginRequest{Username: "ama", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = uc.Login(dto.LoginRequest{Username: "nadie", Password: "s3cret!"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
