package auth

import (
	"context"
	"fmt"
	"time"

	therapistRepo "broheal/database/repository/therapist"
	userRepo "broheal/database/repository/user"
	"broheal/models"
	"broheal/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultAuthService is the production implementation of AuthService.
type DefaultAuthService struct {
	UserRepo      userRepo.UserRepository
	TherapistRepo therapistRepo.TherapistRepository
	Sessions      SessionStore
	AdminPhone    string
}

// SendOTP validates the phone and initiates an OTP for the given role.
func (s *DefaultAuthService) SendOTP(ctx context.Context, role, phone string) error {
	if !utils.IsValidPhone(phone) {
		return ErrInvalidPhone
	}
	return utils.InitiatePhoneOTP(role, phone)
}

// VerifyOTP checks the OTP and issues a role-scoped session. A first-time
// phone login in the user role creates the account; therapist accounts are
// also created on first login, with an unverified profile pending KYC.
func (s *DefaultAuthService) VerifyOTP(ctx context.Context, role, phone, otp string) (*AuthResponse, error) {
	if !utils.IsValidPhone(phone) {
		return nil, ErrInvalidPhone
	}
	if err := utils.VerifyPhoneOTPRecord(role, phone, otp); err != nil {
		utils.GetLogger().Warn("OTP verification failed", zap.String("phone", phone), zap.Error(err))
		return nil, ErrOTPMismatch
	}
	return s.completePhoneLogin(ctx, role, phone)
}

// VerifyFirebaseToken accepts a Firebase phone-auth ID token in place of a
// platform OTP.
func (s *DefaultAuthService) VerifyFirebaseToken(ctx context.Context, role, idToken string) (*AuthResponse, error) {
	phone, err := utils.VerifyFirebaseIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("firebase token verification failed: %w", err)
	}
	// Firebase attests numbers in E.164; strip the country prefix the client
	// sends for Indian numbers.
	if len(phone) == 13 && phone[:3] == "+91" {
		phone = phone[3:]
	}
	if !utils.IsValidPhone(phone) {
		return nil, ErrInvalidPhone
	}
	return s.completePhoneLogin(ctx, role, phone)
}

func (s *DefaultAuthService) completePhoneLogin(ctx context.Context, role, phone string) (*AuthResponse, error) {
	account, err := s.UserRepo.GetByPhoneAndRole(phone, role)
	if err != nil {
		utils.GetLogger().Error("completePhoneLogin: failed to fetch account", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if account == nil {
		account = &models.User{
			ID:     uuid.New().String(),
			Role:   role,
			Phone:  phone,
			Active: true,
		}
		if err := s.UserRepo.Create(account); err != nil {
			utils.GetLogger().Error("completePhoneLogin: failed to create account", zap.Error(err))
			return nil, fmt.Errorf("authentication failed, please try again")
		}
		if role == models.RoleTherapist {
			profile := &models.Therapist{
				ID:        utils.NewHexID(),
				UserID:    account.ID,
				KYCStatus: "none",
			}
			if err := s.TherapistRepo.Create(profile); err != nil {
				utils.GetLogger().Error("completePhoneLogin: failed to create therapist profile", zap.Error(err))
				return nil, fmt.Errorf("authentication failed, please try again")
			}
		}
	}
	return s.issueSession(ctx, account)
}

// LoginWithPassword is the email/password path.
func (s *DefaultAuthService) LoginWithPassword(ctx context.Context, role, email, password string) (*AuthResponse, error) {
	account, err := s.UserRepo.GetByEmailAndRole(email, role)
	if err != nil {
		utils.GetLogger().Error("LoginWithPassword: failed to fetch account", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if account == nil || account.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueSession(ctx, account)
}

// SendAdminOTP gates the OTP on the configured admin phone.
func (s *DefaultAuthService) SendAdminOTP(ctx context.Context, phone string) error {
	if s.AdminPhone == "" || phone != s.AdminPhone {
		return ErrNotAdminPhone
	}
	return utils.InitiatePhoneOTP(models.RoleAdmin, phone)
}

// VerifyAdminOTP completes the admin OTP flow, creating the admin account on
// first login.
func (s *DefaultAuthService) VerifyAdminOTP(ctx context.Context, phone, otp string) (*AuthResponse, error) {
	if s.AdminPhone == "" || phone != s.AdminPhone {
		return nil, ErrNotAdminPhone
	}
	if err := utils.VerifyPhoneOTPRecord(models.RoleAdmin, phone, otp); err != nil {
		return nil, ErrOTPMismatch
	}
	return s.completePhoneLogin(ctx, models.RoleAdmin, phone)
}

// Refresh rotates the access token from a refresh token. The refresh token
// must still match the stored session.
func (s *DefaultAuthService) Refresh(ctx context.Context, refreshToken string) (*models.Tokens, error) {
	userID, role, tokenType, err := utils.ExtractClaimsFromToken(refreshToken)
	if err != nil || tokenType != utils.TokenTypeRefresh {
		return nil, ErrInvalidRefreshToken
	}
	session, err := s.Sessions.Get(ctx, role, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil || session.Tokens.Refresh != refreshToken {
		return nil, ErrInvalidRefreshToken
	}

	access, err := utils.GenerateToken(userID, role, utils.TokenTypeAccess, utils.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	session.Tokens.Access = access
	session.ExpiresAt = time.Now().Add(utils.AccessTokenTTL)
	if err := s.Sessions.Set(ctx, userID, *session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return &session.Tokens, nil
}

// Logout clears the role-scoped session.
func (s *DefaultAuthService) Logout(ctx context.Context, role, userID string) error {
	return s.Sessions.Clear(ctx, role, userID)
}

// issueSession mints the token pair, stores the role-scoped session and
// touches the account's last-login marker.
func (s *DefaultAuthService) issueSession(ctx context.Context, account *models.User) (*AuthResponse, error) {
	access, err := utils.GenerateToken(account.ID, account.Role, utils.TokenTypeAccess, utils.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := utils.GenerateToken(account.ID, account.Role, utils.TokenTypeRefresh, utils.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	profile := models.SessionProfile{
		ID:           account.ID,
		Name:         account.Name,
		Phone:        account.Phone,
		Email:        account.Email,
		ProfileImage: account.ProfileImage,
	}
	session := models.Session{
		Role:      account.Role,
		Profile:   profile,
		Tokens:    models.Tokens{Access: access, Refresh: refresh},
		ExpiresAt: time.Now().Add(utils.AccessTokenTTL),
	}
	if err := s.Sessions.Set(ctx, account.ID, session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	if err := s.UserRepo.UpdateWithDocument(account.ID, bson.M{
		"$set": bson.M{"updated_at": time.Now()},
	}); err != nil {
		utils.GetLogger().Warn("issueSession: failed to touch account", zap.Error(err))
	}

	return &AuthResponse{Profile: profile, Role: account.Role, Tokens: session.Tokens}, nil
}
