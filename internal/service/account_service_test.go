package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"chaibisket/models"
)

func newAccountService() (*AccountService, *testEnv) {
	env := newTestEnv()
	return NewAccountService(env.accountRepo, testLogger()), env
}

func signupRequest() SignupRequest {
	return SignupRequest{
		Name:            "Priya Sharma",
		Email:           "priya@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Phone:           "555-0101",
		Address:         "12 Charminar Rd",
		City:            "Austin",
		State:           "TX",
		ZipCode:         "78701",
	}
}

func TestSignupEstablishesSession(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	session, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)
	require.Equal(t, "priya@example.com", session.Email)
	require.Equal(t, 0, session.LoyaltyPoints)
	require.NotEmpty(t, session.ID)
	require.NotEmpty(t, session.JoinDate)

	current, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	require.Equal(t, session.Email, current.Email)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	_, err = svc.Signup(ctx, signupRequest())
	require.ErrorIs(t, err, models.ErrDuplicateAccount)

	// The failed attempt must not have signed anyone in.
	_, err = svc.CurrentSession(ctx)
	require.ErrorIs(t, err, models.ErrNoSession)
}

func TestSignupValidation(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	req := signupRequest()
	req.Email = "not-an-email"
	req.Password = "short"
	req.ConfirmPassword = "different"

	_, err := svc.Signup(ctx, req)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)

	fields := map[string]bool{}
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	require.True(t, fields["email"])
	require.True(t, fields["password"])
	require.True(t, fields["confirm_password"])
}

func TestLoginUsesOneGenericError(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	_, err = svc.Login(ctx, LoginRequest{Email: "priya@example.com", Password: "wrong-pass"})
	require.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	require.ErrorIs(t, err, models.ErrInvalidCredentials)

	session, err := svc.Login(ctx, LoginRequest{Email: "priya@example.com", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "Priya Sharma", session.Name)
}

func TestSessionsDoNotCarryPasswords(t *testing.T) {
	svc, env := newAccountService()
	ctx := context.Background()

	session, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)
	require.Equal(t, "priya@example.com", session.Email)

	stored, ok := env.accountRepo.GetSession(ctx)
	require.True(t, ok)
	require.Equal(t, session.Email, stored.Email)
}

func TestUpdateProfileCanChangeEmail(t *testing.T) {
	svc, env := newAccountService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	session, err := svc.UpdateProfile(ctx, UpdateProfileRequest{
		Name:  "Priya S",
		Email: "priya.s@example.com",
		Phone: "555-0102",
	})
	require.NoError(t, err)
	require.Equal(t, "priya.s@example.com", session.Email)

	// The account record moved to the new email; the old one is gone.
	_, found := env.accountRepo.FindByEmail(ctx, "priya@example.com")
	require.False(t, found)
	account, found := env.accountRepo.FindByEmail(ctx, "priya.s@example.com")
	require.True(t, found)
	require.Equal(t, "Priya S", account.Name)

	// Login still works with the original password.
	require.NoError(t, svc.Logout(ctx))
	_, err = svc.Login(ctx, LoginRequest{Email: "priya.s@example.com", Password: "secret1"})
	require.NoError(t, err)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupRequest())
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newer-secret",
		ConfirmPassword: "newer-secret",
	})
	require.ErrorIs(t, err, models.ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, ChangePasswordRequest{
		CurrentPassword: "secret1",
		NewPassword:     "newer-secret",
		ConfirmPassword: "newer-secret",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	_, err = svc.Login(ctx, LoginRequest{Email: "priya@example.com", Password: "secret1"})
	require.ErrorIs(t, err, models.ErrInvalidCredentials)
	_, err = svc.Login(ctx, LoginRequest{Email: "priya@example.com", Password: "newer-secret"})
	require.NoError(t, err)
}

func TestProfileOperationsRequireSession(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	_, err := svc.CurrentSession(ctx)
	require.ErrorIs(t, err, models.ErrNoSession)

	_, err = svc.UpdateProfile(ctx, UpdateProfileRequest{Name: "X", Email: "x@example.com"})
	require.ErrorIs(t, err, models.ErrNoSession)

	err = svc.ChangePassword(ctx, ChangePasswordRequest{
		CurrentPassword: "a", NewPassword: "abcdef", ConfirmPassword: "abcdef",
	})
	require.ErrorIs(t, err, models.ErrNoSession)
}
