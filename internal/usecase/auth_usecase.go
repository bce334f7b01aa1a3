package usecase

import (
	"context"
	"errors"
	"log"
	"time"
	"vowline/internal/entity"
	"vowline/internal/repository"
	"vowline/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailAlreadyTaken   = errors.New("email already taken")
	ErrEmailNotVerified    = errors.New("email is not verified")
	ErrMissingFields       = errors.New("all required fields must be provided")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrExpiredRefreshToken = errors.New("refresh token has expired")
	ErrRevokedRefreshToken = errors.New("refresh token has been revoked")
)

// Mailer is the external mail collaborator. Delivery is out of scope here;
// implementations may log, queue, or actually send.
type Mailer interface {
	SendVerification(ctx context.Context, email, token string) error
}

type AuthUsecase interface {
	Register(ctx context.Context, req entity.RegisterRequest) (entity.AuthResponse, error)
	Login(ctx context.Context, req entity.LoginRequest) (entity.AuthResponse, error)
	VerifyEmail(ctx context.Context, token string) error
	RefreshToken(ctx context.Context, refreshToken string) (entity.AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	LogoutAllDevices(ctx context.Context, userId string) error
	ValidateAccessToken(token string) (*entity.TokenClaims, error)
}

type authUsecase struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	jwtManager       *jwt.JWTManager
	mailer           Mailer
}

func NewAuthUsecase(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	jwtManager *jwt.JWTManager,
	mailer Mailer,
) AuthUsecase {
	return &authUsecase{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtManager:       jwtManager,
		mailer:           mailer,
	}
}

func (u *authUsecase) Register(ctx context.Context, req entity.RegisterRequest) (entity.AuthResponse, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return entity.AuthResponse{}, ErrMissingFields
	}

	emailExists, err := u.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return entity.AuthResponse{}, err
	}
	if emailExists {
		return entity.AuthResponse{}, ErrEmailAlreadyTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return entity.AuthResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = entity.UserRoleUser
	}
	user := entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		Name:     req.Name,
		Partner1: req.Partner1,
		Partner2: req.Partner2,
		Role:     role,
	}

	userId, err := u.userRepo.Create(ctx, user)
	if err != nil {
		return entity.AuthResponse{}, err
	}
	user.Id = userId

	// A failed verification mail must not fail registration; the user can
	// request another one.
	verifyToken, err := u.jwtManager.GenerateVerificationToken(userId)
	if err == nil {
		if mailErr := u.mailer.SendVerification(ctx, user.Email, verifyToken); mailErr != nil {
			log.Printf("send verification mail to %s: %v", user.Email, mailErr)
		}
	}

	user.Password = ""
	return entity.AuthResponse{User: user}, nil
}

func (u *authUsecase) Login(ctx context.Context, req entity.LoginRequest) (entity.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return entity.AuthResponse{}, ErrInvalidCredentials
		}
		return entity.AuthResponse{}, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password))
	if err != nil {
		return entity.AuthResponse{}, ErrInvalidCredentials
	}

	if !user.IsVerified {
		return entity.AuthResponse{}, ErrEmailNotVerified
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) VerifyEmail(ctx context.Context, token string) error {
	userId, err := u.jwtManager.ValidateVerificationToken(token)
	if err != nil {
		return err
	}

	return u.userRepo.SetVerified(ctx, userId)
}

func (u *authUsecase) RefreshToken(ctx context.Context, refreshTokenString string) (entity.AuthResponse, error) {
	refreshToken, err := u.refreshTokenRepo.GetByToken(ctx, refreshTokenString)
	if err != nil {
		return entity.AuthResponse{}, ErrInvalidRefreshToken
	}

	if refreshToken.IsRevoked {
		return entity.AuthResponse{}, ErrRevokedRefreshToken
	}
	if time.Now().After(refreshToken.ExpiresAt) {
		return entity.AuthResponse{}, ErrExpiredRefreshToken
	}

	user, err := u.userRepo.Get(ctx, refreshToken.UserId)
	if err != nil {
		return entity.AuthResponse{}, err
	}

	// Rotation: the presented token is revoked and replaced.
	err = u.refreshTokenRepo.Revoke(ctx, refreshTokenString)
	if err != nil {
		return entity.AuthResponse{}, err
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) issueTokens(ctx context.Context, user entity.User) (entity.AuthResponse, error) {
	accessToken, err := u.jwtManager.GenerateAccessToken(user)
	if err != nil {
		return entity.AuthResponse{}, err
	}

	refreshTokenString, err := u.jwtManager.GenerateRefreshToken()
	if err != nil {
		return entity.AuthResponse{}, err
	}

	refreshToken := entity.RefreshToken{
		UserId:    user.Id,
		Token:     refreshTokenString,
		ExpiresAt: u.jwtManager.GetRefreshTokenExpiration(),
	}
	err = u.refreshTokenRepo.Create(ctx, refreshToken)
	if err != nil {
		return entity.AuthResponse{}, err
	}

	user.Password = ""
	return entity.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user,
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	return u.refreshTokenRepo.Revoke(ctx, refreshToken)
}

func (u *authUsecase) LogoutAllDevices(ctx context.Context, userId string) error {
	return u.refreshTokenRepo.RevokeAllByUserId(ctx, userId)
}

func (u *authUsecase) ValidateAccessToken(token string) (*entity.TokenClaims, error) {
	return u.jwtManager.ValidateAccessToken(token)
}
