package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	adminRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/admin"
	"github.com/m04kA/SMC-BarberBooking/internal/service/auth/models"
)

// Service вход и выход администраторов
type Service struct {
	adminRepo    AdminRepository
	sessions     SessionStore
	tokens       TokenIssuer
	sessionTTL   time.Duration
	timeProvider TimeProvider
	logger       Logger
}

func NewService(
	adminRepo AdminRepository,
	sessions SessionStore,
	tokens TokenIssuer,
	sessionTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		adminRepo:    adminRepo,
		sessions:     sessions,
		tokens:       tokens,
		sessionTTL:   sessionTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SetTimeProvider устанавливает провайдер времени (для тестирования)
func (s *Service) SetTimeProvider(tp TimeProvider) {
	s.timeProvider = tp
}

// SignIn проверяет email и пароль, создает сессию и выпускает токен
// Неизвестный email и неверный пароль неразличимы для вызывающего
func (s *Service) SignIn(ctx context.Context, req *models.SignInRequest) (*models.SignInResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("SignIn: unknown email")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("SignIn: repository error: %v", err)
		return nil, fmt.Errorf("%w: SignIn - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("SignIn: wrong password for user id=%s", user.ID)
		return nil, ErrInvalidCredentials
	}

	now := s.timeProvider.Now()
	sess := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if user.Role != nil {
		sess.Role = *user.Role
	}

	token, err := s.tokens.Issue(sess)
	if err != nil {
		s.logger.Error("SignIn: failed to issue token for user id=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: SignIn - issue token: %v", ErrInternal, err)
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		s.logger.Error("SignIn: failed to save session for user id=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: SignIn - save session: %v", ErrInternal, err)
	}

	s.logger.Info("SignIn: user id=%s signed in, session=%s", user.ID, sess.ID)
	return &models.SignInResponse{
		Token:   token,
		Session: *models.FromDomainSession(sess),
	}, nil
}

// SignOut завершает сессию
func (s *Service) SignOut(ctx context.Context, sess *domain.Session) error {
	if err := s.sessions.Delete(ctx, sess); err != nil {
		s.logger.Error("SignOut: failed to delete session=%s: %v", sess.ID, err)
		return fmt.Errorf("%w: SignOut - delete session: %v", ErrInternal, err)
	}

	s.logger.Info("SignOut: user id=%s signed out, session=%s", sess.UserID, sess.ID)
	return nil
}

// CreateAdmin создает администратора с bcrypt-хешем пароля
func (s *Service) CreateAdmin(ctx context.Context, email, password string, role *string) (*domain.AdminUser, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(password) < domain.MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateAdmin - hash password: %v", ErrInternal, err)
	}

	user, err := s.adminRepo.Create(ctx, &domain.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminExists) {
			return nil, ErrAdminExists
		}
		return nil, fmt.Errorf("%w: CreateAdmin - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateAdmin: admin id=%s created", user.ID)
	return user, nil
}
