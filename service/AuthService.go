package service

import (
	"context"
	"log"
	"time"

	"planboard/dto"
	"planboard/model"
	"planboard/repository"
	"planboard/util"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo       repository.UserRepository
	credentialRepo repository.CredentialRepository
	refreshRepo    repository.RefreshTokenRepository
	roleRepo       repository.RoleRepository
	otpSvc         *OTPService
}

func NewAuthService(
	u repository.UserRepository,
	c repository.CredentialRepository,
	r repository.RefreshTokenRepository,
	role repository.RoleRepository,
	otp *OTPService,
) *AuthService {
	return &AuthService{
		userRepo:       u,
		credentialRepo: c,
		refreshRepo:    r,
		roleRepo:       role,
		otpSvc:         otp,
	}
}

// Register creates a new user with the default role and a password
// credential, then fires the verification OTP.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	user := &model.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
	}

	// Every new registration gets the basic permissions
	defaultRole, err := s.roleRepo.GetByCode("user")
	if err != nil {
		return nil, err
	}
	user.Roles = append(user.Roles, *defaultRole)

	if err := s.userRepo.Create(user); err != nil {
		if util.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	hashed, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	cred := &model.Credential{
		UserID: user.ID,
		Type:   model.CredTypePassword,
		Value:  hashed,
	}
	if err := s.credentialRepo.Create(cred); err != nil {
		return nil, err
	}

	// Best effort: registration succeeds even if the OTP mail fails
	if _, err := s.otpSvc.Issue(ctx, user.Email, model.OTPPurposeVerify); err != nil {
		log.Printf("Failed to issue verification OTP for %s: %v", user.Email, err)
	}

	return &dto.RegisterResponse{
		ID:       user.ID.String(),
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// Login validates credentials (and the TOTP code when MFA is enabled) and
// returns a token pair. Unverified accounts get a fresh verification OTP
// instead of tokens.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest, clientIP, userAgent string) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	var pwCred *model.Credential
	for i := range user.Credentials {
		if user.Credentials[i].Type == model.CredTypePassword && user.Credentials[i].Active {
			pwCred = &user.Credentials[i]
			break
		}
	}
	if pwCred == nil {
		return nil, ErrInvalidCredentials
	}

	if err := util.ComparePassword(pwCred.Value, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsEmailVerified {
		if _, err := s.otpSvc.Issue(ctx, user.Email, model.OTPPurposeVerify); err != nil {
			log.Printf("Failed to issue verification OTP for %s: %v", user.Email, err)
		}
		return nil, ErrEmailNotVerified
	}

	if user.MFAEnabled {
		if req.TOTPCode == "" {
			return nil, ErrTOTPRequired
		}
		totpCred, err := s.credentialRepo.GetByUserIDAndType(user.ID, model.CredTypeTOTP)
		if err != nil || !totpCred.Active {
			return nil, ErrMFANotSetup
		}
		if !util.VerifyTOTP(totpCred.Value, req.TOTPCode) {
			return nil, ErrTOTPInvalid
		}
	}

	var roleCodes []string
	for _, r := range user.Roles {
		roleCodes = append(roleCodes, r.Code)
	}

	pair, err := util.GenerateTokens(user.ID, roleCodes)
	if err != nil {
		return nil, err
	}

	rt := &model.RefreshToken{
		ID:        pair.RefreshID,
		UserID:    user.ID,
		TokenHash: util.HashToken(pair.RefreshToken),
		ExpiresAt: time.Now().Add(util.RefreshTokenTTL),
		ClientIP:  clientIP,
		UserAgent: userAgent,
	}
	if err := s.refreshRepo.Create(rt); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int(util.AccessTokenTTL.Seconds()),
	}, nil
}

// Refresh rotates the refresh token: the presented token is revoked and a
// new pair is issued against the user's current roles.
func (s *AuthService) Refresh(req *dto.RefreshRequest, clientIP, userAgent string) (*dto.RefreshResponse, error) {
	userIDFromToken, refreshID, err := util.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	existing, err := s.refreshRepo.GetByID(refreshID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	if existing.UserID != userIDFromToken {
		return nil, ErrInvalidRefreshToken
	}
	if existing.TokenHash != util.HashToken(req.RefreshToken) {
		return nil, ErrInvalidRefreshToken
	}
	if !existing.IsValid() {
		return nil, ErrRefreshTokenExpired
	}

	// Fetch user for the LATEST roles
	user, err := s.userRepo.GetByID(existing.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var roleCodes []string
	for _, r := range user.Roles {
		roleCodes = append(roleCodes, r.Code)
	}

	pair, err := util.GenerateTokens(existing.UserID, roleCodes)
	if err != nil {
		return nil, err
	}

	if err := s.refreshRepo.RevokeByID(existing.ID); err != nil {
		return nil, err
	}

	newRT := &model.RefreshToken{
		ID:        pair.RefreshID,
		UserID:    existing.UserID,
		TokenHash: util.HashToken(pair.RefreshToken),
		ExpiresAt: time.Now().Add(util.RefreshTokenTTL),
		ClientIP:  clientIP,
		UserAgent: userAgent,
	}
	if err := s.refreshRepo.Create(newRT); err != nil {
		return nil, err
	}

	return &dto.RefreshResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int(util.AccessTokenTTL.Seconds()),
	}, nil
}

// Logout revokes every stored refresh token for the user.
func (s *AuthService) Logout(userID uuid.UUID) error {
	return s.refreshRepo.RevokeAllForUser(userID)
}

// ChangePassword swaps the password credential after checking the old one,
// then revokes all sessions.
func (s *AuthService) ChangePassword(userID uuid.UUID, oldPassword, newPassword string) error {
	cred, err := s.credentialRepo.GetByUserIDAndType(userID, model.CredTypePassword)
	if err != nil {
		return ErrUserNotFound
	}

	if err := util.ComparePassword(cred.Value, oldPassword); err != nil {
		return ErrInvalidOldPassword
	}

	hashed, err := util.HashPassword(newPassword)
	if err != nil {
		return err
	}

	cred.Value = hashed
	if err := s.credentialRepo.Update(cred); err != nil {
		return err
	}

	// Old sessions should not survive a password change
	return s.refreshRepo.RevokeAllForUser(userID)
}

// ResetPasswordWithOTP is the forgot-password flow: a verified reset OTP
// authorizes writing the new password.
func (s *AuthService) ResetPasswordWithOTP(req *dto.ForgotPasswordRequest) error {
	if err := s.otpSvc.Verify(req.Email, model.OTPPurposePasswordReset, req.Reference, req.Code); err != nil {
		return err
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return ErrUserNotFound
	}

	cred, err := s.credentialRepo.GetByUserIDAndType(user.ID, model.CredTypePassword)
	if err != nil {
		return ErrUserNotFound
	}

	hashed, err := util.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	cred.Value = hashed
	if err := s.credentialRepo.Update(cred); err != nil {
		return err
	}

	return s.refreshRepo.RevokeAllForUser(user.ID)
}

// SetupMFA provisions a TOTP secret. The credential stays inactive until
// the user confirms a code, so a half-finished setup never locks anyone out.
func (s *AuthService) SetupMFA(userID uuid.UUID) (*dto.MFASetupResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	secret, url, err := util.GenerateTOTPSecret(user.Email)
	if err != nil {
		return nil, err
	}

	existing, err := s.credentialRepo.GetByUserIDAndType(userID, model.CredTypeTOTP)
	if err == nil {
		existing.Value = secret
		existing.Active = false
		if err := s.credentialRepo.Update(existing); err != nil {
			return nil, err
		}
	} else {
		cred := &model.Credential{
			UserID: userID,
			Type:   model.CredTypeTOTP,
			Value:  secret,
			Active: false,
		}
		if err := s.credentialRepo.Create(cred); err != nil {
			return nil, err
		}
	}

	return &dto.MFASetupResponse{Secret: secret, OTPAuthURL: url}, nil
}

// ConfirmMFA activates the TOTP credential once the user proves they have
// the secret.
func (s *AuthService) ConfirmMFA(userID uuid.UUID, code string) error {
	cred, err := s.credentialRepo.GetByUserIDAndType(userID, model.CredTypeTOTP)
	if err != nil {
		return ErrMFANotSetup
	}

	if !util.VerifyTOTP(cred.Value, code) {
		return ErrTOTPInvalid
	}

	cred.Active = true
	if err := s.credentialRepo.Update(cred); err != nil {
		return err
	}

	return s.userRepo.UpdateFields(userID, map[string]interface{}{"mfa_enabled": true})
}

func (s *AuthService) GetUserByID(id uuid.UUID) (*model.User, error) {
	return s.userRepo.GetByID(id)
}

func (s *AuthService) GetUserByEmail(email string) (*model.User, error) {
	return s.userRepo.GetByEmail(email)
}
