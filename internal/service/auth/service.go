package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/auth"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/option"
	"github.com/rollcall-hq/rollcall-backend-go/internal/domain/user"
	"github.com/rollcall-hq/rollcall-backend-go/internal/pkg/database"
	"github.com/rollcall-hq/rollcall-backend-go/internal/pkg/jwt"
	"github.com/rollcall-hq/rollcall-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

type AuthServiceImpl struct {
	db         *database.DB
	userRepo   user.UserRepository
	optionRepo option.OptionRepository
	jwtService jwt.Service
	jwtRepo    postgresql.JWTRepository
}

func NewAuthService(db *database.DB, userRepo user.UserRepository, optionRepo option.OptionRepository, jwtService jwt.Service, jwtRepo postgresql.JWTRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:         db,
		userRepo:   userRepo,
		optionRepo: optionRepo,
		jwtService: jwtService,
		jwtRepo:    jwtRepo,
	}
}

// Register implements auth.AuthService.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	_, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err == nil {
		return auth.AuthResponse{}, user.ErrUsernameExists
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return auth.AuthResponse{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	newUser := user.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
		Honor:        req.Honor,
		Name:         req.Name,
		Level:        req.Level,
		Department:   req.Department,
		Party:        req.Party,
		Sex:          req.Sex,
		Birthday:     req.Birthday(),
		Role:         user.Role(req.Role),
	}
	// Group is only persisted for reporters; other roles never carry one.
	if newUser.Role == user.RoleReporter {
		newUser.Group = req.Group
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return s.issueSession(ctx, created)
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	account, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueSession(ctx, account)
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.AuthResponse, error) {
	userID, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidToken
	}

	revoked, err := s.jwtRepo.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidToken
	}
	if revoked {
		return auth.AuthResponse{}, auth.ErrRefreshTokenRevoked
	}

	account, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrUserNotFound
		}
		return auth.AuthResponse{}, err
	}

	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(account.ID, account.Username, account.Role, account.Group)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return auth.AuthResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: accessExpiresAt - time.Now().Unix(),
		User:                 account.ToResponse(),
	}, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.jwtService.ParseRefreshToken(refreshToken); err != nil {
		return auth.ErrInvalidToken
	}
	return s.jwtRepo.RevokeRefreshToken(ctx, refreshToken)
}

// RegistrationOptions implements auth.AuthService.
func (s *AuthServiceImpl) RegistrationOptions(ctx context.Context) (auth.RegistrationOptions, error) {
	opts := auth.RegistrationOptions{
		Sexes:  []string{"Male", "Female", "Other"},
		Months: monthNames,
	}

	currentYear := time.Now().Year()
	opts.Years = make([]int, 0, 48)
	for year := currentYear - 65; year < currentYear-65+48; year++ {
		opts.Years = append(opts.Years, year)
	}
	opts.Days = make([]int, 0, 31)
	for day := 1; day <= 31; day++ {
		opts.Days = append(opts.Days, day)
	}

	vocabularies := []struct {
		optType option.Type
		dest    *[]string
	}{
		{option.TypeHonor, &opts.Honors},
		{option.TypeLevel, &opts.Levels},
		{option.TypeDepartment, &opts.Departments},
		{option.TypeParty, &opts.Parties},
		{option.TypeGroup, &opts.Groups},
	}
	for _, v := range vocabularies {
		values, err := s.optionRepo.ListValues(ctx, v.optType)
		if err != nil {
			return auth.RegistrationOptions{}, err
		}
		*v.dest = values
	}

	return opts, nil
}

func (s *AuthServiceImpl) issueSession(ctx context.Context, account user.User) (auth.AuthResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(account.ID, account.Username, account.Role, account.Group)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	if err := s.jwtRepo.CreateRefreshToken(ctx, account.ID, refreshToken, refreshExpiresAt); err != nil {
		return auth.AuthResponse{}, err
	}

	now := time.Now().Unix()
	return auth.AuthResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt - now,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt - now,
		User:                  account.ToResponse(),
	}, nil
}
