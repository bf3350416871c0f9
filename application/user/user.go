package user

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mnmsi/Lara-api/cmd/config"
	"github.com/mnmsi/Lara-api/constant"
	"github.com/mnmsi/Lara-api/model"
	redisrepo "github.com/mnmsi/Lara-api/repository/redis"
	userrepo "github.com/mnmsi/Lara-api/repository/user"
	"github.com/mnmsi/Lara-api/utils/errors"
	"github.com/mnmsi/Lara-api/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Signup(ctx context.Context, req *model.SignupRequest) (*model.MessageResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) (*model.MessageResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.Identity, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
	now       func() time.Time
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
		now:       time.Now,
	}
}

func (s *UserAppImpl) Signup(ctx context.Context, req *model.SignupRequest) (*model.MessageResponse, error) {
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Signup] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.NewCustomError(constant.ErrInternal, constant.MsgSignupFailed)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Signup] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.NewCustomError(constant.ErrInternal, constant.MsgSignupFailed)
	}

	userEntity := &model.UserEntity{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		PasswordHash: string(hashedPassword),
	}

	if _, err = s.userRepo.Create(ctx, userEntity); err != nil {
		if stderrors.Is(err, userrepo.ErrDuplicateEmail) {
			return nil, errors.SetCustomError(constant.ErrCredentialExists)
		}
		logger.Error("[Signup] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.NewCustomError(constant.ErrInternal, constant.MsgSignupFailed)
	}

	return model.NewMessageResponse(constant.MsgSignupSuccess), nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// unknown email and wrong password look the same to the caller
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	ttl := s.config.Auth.JWTExpiration
	if req.RememberMe {
		ttl = s.config.Auth.RememberMeExpiration
	}

	token, jti, expiresAt, err := s.generateJWT(user.ID, ttl)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err = s.redisRepo.SetSession(ctx, jti, user.ID, ttl); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		BaseResponse: model.Success(constant.MsgLoginSuccess),
		AccessToken:  token,
		TokenType:    constant.TokenTypeBearer,
		ExpiresAt:    expiresAt.Format(constant.DateTimeLayout),
	}, nil
}

// Logout revokes the session behind the caller's token.
func (s *UserAppImpl) Logout(ctx context.Context, sessionID string) (*model.MessageResponse, error) {
	if sessionID == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := s.redisRepo.DeleteSession(ctx, sessionID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewMessageResponse(constant.MsgLogoutSuccess), nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token")
	}

	jti := claims.ID
	if jti == "" {
		return nil, fmt.Errorf("token missing jti")
	}

	// a logged out token has no session left
	sessionUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired session: %w", err)
	}
	if sessionUserID != userID {
		return nil, fmt.Errorf("token does not match user session")
	}

	return &model.Identity{UserID: userID, SessionID: jti}, nil
}

func (s *UserAppImpl) generateJWT(userID uint64, ttl time.Duration) (string, string, time.Time, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to generate jti: %w", err)
	}

	now := s.now()
	expiresAt := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, expiresAt, nil
}
