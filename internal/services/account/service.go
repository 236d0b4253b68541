package account

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"rostershop/internal/dependencies/clock"
	"rostershop/internal/model"
	"rostershop/internal/services/shop"
	"rostershop/internal/storage"
)

// ErrInvalidInput is returned when registration data is missing or the
// email does not parse as an address
var ErrInvalidInput = errors.New("invalid registration data")

// Config holds configuration for the account service
type Config struct {
	// InitialBalance is credited to every newly registered account
	InitialBalance float64
}

// DefaultConfig returns default account configuration
func DefaultConfig() Config {
	return Config{
		InitialBalance: 0,
	}
}

// Service handles user registration, login and balance lookups.
// It also serves as the shop's balance provider.
type Service struct {
	storage  storage.Storage
	clock    clock.Clock
	validate *validator.Validate
	cfg      Config
	logger   *slog.Logger
}

// New creates a new account service
func New(storage storage.Storage, clk clock.Clock, cfg Config, logger *slog.Logger) *Service {
	return &Service{
		storage:  storage,
		clock:    clk,
		validate: validator.New(),
		cfg:      cfg,
		logger:   logger,
	}
}

// Register creates a new user account. Login, password and email are all
// required and the email must be well-formed. Registering an existing login
// fails with model.ErrUserExists.
func (s *Service) Register(ctx context.Context, login, password, email string) (*model.User, error) {
	if login == "" || password == "" {
		return nil, ErrInvalidInput
	}
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, ErrInvalidInput
	}

	// Early duplicate check saves the bcrypt work; CreateUser below still
	// decides atomically.
	if exists, err := s.storage.UserExists(ctx, login); err != nil {
		return nil, err
	} else if exists {
		return nil, model.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Login:        login,
		PasswordHash: string(hash),
		Email:        email,
		Balance:      s.cfg.InitialBalance,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", slog.String("login", login))
	return user, nil
}

// Login verifies a user's credentials. An unknown login is an error
// (model.ErrUserNotFound); a wrong password is a plain false.
func (s *Service) Login(ctx context.Context, login, password string) (bool, error) {
	user, err := s.storage.GetUser(ctx, login)
	if err != nil {
		return false, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}

// CheckBalance returns the spendable balance for an account.
// Unknown accounts resolve to 0, not an error.
func (s *Service) CheckBalance(ctx context.Context, accountID string) (float64, error) {
	user, err := s.storage.GetUser(ctx, accountID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return user.Balance, nil
}

// The account service is the shop's balance provider
var _ shop.BalanceProvider = (*Service)(nil)
