package service

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"

	"chaibisket/internal/repositories"
	"chaibisket/models"
	"chaibisket/pkg/logger"
)

// MinPasswordLength matches the signup form rule.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// SignupRequest carries the signup form fields.
type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	City            string `json:"city"`
	State           string `json:"state"`
	ZipCode         string `json:"zip_code"`
}

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// ChangePasswordRequest carries the password tab fields.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// AccountServiceInterface covers signup, login and profile management.
type AccountServiceInterface interface {
	Signup(ctx context.Context, req SignupRequest) (*models.Session, error)
	Login(ctx context.Context, req LoginRequest) (*models.Session, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*models.Session, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.Session, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}

// AccountService owns the account list and the single current session.
type AccountService struct {
	accountRepo repositories.AccountRepositoryInterface
	logger      *logger.Logger
}

// NewAccountService creates an account service.
func NewAccountService(accountRepo repositories.AccountRepositoryInterface, log *logger.Logger) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		logger:      log.WithComponent("account_service"),
	}
}

// Signup registers a new account with zero loyalty points and establishes
// a session for it. A duplicate email (case-sensitive exact match) is
// rejected without creating a session.
func (s *AccountService) Signup(ctx context.Context, req SignupRequest) (*models.Session, error) {
	if err := s.validateSignup(req); err != nil {
		s.logger.Warn("Signup failed: invalid data", "error", err)
		return nil, err
	}

	if _, exists := s.accountRepo.FindByEmail(ctx, req.Email); exists {
		s.logger.Warn("Signup failed: duplicate email", "email", req.Email)
		return nil, models.ErrDuplicateAccount
	}

	account := models.Account{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		JoinDate:      time.Now().Format("1/2/2006"),
		LoyaltyPoints: 0,
	}

	if err := s.accountRepo.Add(ctx, account); err != nil {
		s.logger.Error("Failed to persist new account", "email", req.Email, "error", err)
		return nil, err
	}

	session := models.SessionFrom(account)
	if err := s.accountRepo.SaveSession(ctx, session); err != nil {
		s.logger.Error("Failed to establish session after signup", "email", req.Email, "error", err)
		return nil, err
	}

	s.logger.Info("Account created", "email", account.Email, "account_id", account.ID)
	return &session, nil
}

// Login scans for an exact match on both email and password. Any miss
// yields the same generic error so callers cannot enumerate accounts.
func (s *AccountService) Login(ctx context.Context, req LoginRequest) (*models.Session, error) {
	if err := s.validateLogin(req); err != nil {
		s.logger.Warn("Login failed: invalid data", "error", err)
		return nil, err
	}

	account, found := s.accountRepo.FindByEmail(ctx, req.Email)
	if !found || account.Password != req.Password {
		s.logger.Warn("Login failed: credentials did not match")
		return nil, models.ErrInvalidCredentials
	}

	session := models.SessionFrom(*account)
	if err := s.accountRepo.SaveSession(ctx, session); err != nil {
		s.logger.Error("Failed to establish session after login", "error", err)
		return nil, err
	}

	s.logger.Info("Login succeeded", "email", account.Email)
	return &session, nil
}

// Logout destroys the current session.
func (s *AccountService) Logout(ctx context.Context) error {
	if err := s.accountRepo.ClearSession(ctx); err != nil {
		return err
	}
	s.logger.Info("Session destroyed")
	return nil
}

// CurrentSession returns the active session or ErrNoSession.
func (s *AccountService) CurrentSession(ctx context.Context) (*models.Session, error) {
	session, ok := s.accountRepo.GetSession(ctx)
	if !ok {
		return nil, models.ErrNoSession
	}
	return session, nil
}

// UpdateProfile validates the editable fields and overwrites both the
// session and the matching account record.
func (s *AccountService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.Session, error) {
	session, ok := s.accountRepo.GetSession(ctx)
	if !ok {
		return nil, models.ErrNoSession
	}

	if err := s.validateProfile(req); err != nil {
		s.logger.Warn("Profile update failed: invalid data", "error", err)
		return nil, err
	}

	account, found := s.accountRepo.FindByEmail(ctx, session.Email)
	if !found {
		s.logger.Error("Session points at a missing account", "email", session.Email)
		return nil, models.ErrNoSession
	}

	account.Name = req.Name
	account.Email = req.Email
	account.Phone = req.Phone
	account.Address = req.Address
	account.City = req.City
	account.State = req.State
	account.ZipCode = req.ZipCode

	// The list is keyed by the email the session still carries; the
	// update itself may change it.
	if err := s.accountRepo.Update(ctx, session.Email, *account); err != nil {
		return nil, err
	}

	newSession := models.SessionFrom(*account)
	if err := s.accountRepo.SaveSession(ctx, newSession); err != nil {
		return nil, err
	}

	s.logger.Info("Profile updated", "email", newSession.Email)
	return &newSession, nil
}

// ChangePassword verifies the current password and writes the new one to
// the account record.
func (s *AccountService) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	session, ok := s.accountRepo.GetSession(ctx)
	if !ok {
		return models.ErrNoSession
	}

	verr := &models.ValidationError{}
	if req.CurrentPassword == "" {
		verr.Add("current_password", "Current password is required")
	}
	if req.NewPassword == "" {
		verr.Add("new_password", "New password is required")
	} else if len(req.NewPassword) < MinPasswordLength {
		verr.Add("new_password", "Password must be at least 6 characters")
	}
	if req.ConfirmPassword != req.NewPassword {
		verr.Add("confirm_password", "Passwords do not match")
	}
	if verr.HasErrors() {
		return verr
	}

	account, found := s.accountRepo.FindByEmail(ctx, session.Email)
	if !found {
		return models.ErrNoSession
	}

	if account.Password != req.CurrentPassword {
		s.logger.Warn("Password change rejected: current password mismatch")
		return models.ErrInvalidCredentials
	}

	account.Password = req.NewPassword
	if err := s.accountRepo.Update(ctx, session.Email, *account); err != nil {
		return err
	}

	s.logger.Info("Password changed", "email", account.Email)
	return nil
}

func (s *AccountService) validateSignup(req SignupRequest) error {
	verr := &models.ValidationError{}

	if req.Name == "" {
		verr.Add("name", "Name is required")
	}
	if req.Email == "" {
		verr.Add("email", "Email is required")
	} else if !emailPattern.MatchString(req.Email) {
		verr.Add("email", "Please enter a valid email")
	}
	if req.Password == "" {
		verr.Add("password", "Password is required")
	} else if len(req.Password) < MinPasswordLength {
		verr.Add("password", "Password must be at least 6 characters")
	}
	if req.ConfirmPassword == "" {
		verr.Add("confirm_password", "Please confirm your password")
	} else if req.ConfirmPassword != req.Password {
		verr.Add("confirm_password", "Passwords do not match")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

func (s *AccountService) validateLogin(req LoginRequest) error {
	verr := &models.ValidationError{}

	if req.Email == "" {
		verr.Add("email", "Email is required")
	} else if !emailPattern.MatchString(req.Email) {
		verr.Add("email", "Please enter a valid email")
	}
	if req.Password == "" {
		verr.Add("password", "Password is required")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

func (s *AccountService) validateProfile(req UpdateProfileRequest) error {
	verr := &models.ValidationError{}

	if req.Name == "" {
		verr.Add("name", "Name is required")
	}
	if req.Email == "" {
		verr.Add("email", "Email is required")
	} else if !emailPattern.MatchString(req.Email) {
		verr.Add("email", "Please enter a valid email")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
