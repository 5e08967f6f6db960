package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/kyystore-api/internal/domain/entity"
	repo "github.com/oksasatya/kyystore-api/internal/domain/repository"
	"github.com/oksasatya/kyystore-api/internal/events"
	"github.com/oksasatya/kyystore-api/pkg/fieldcrypt"
	"github.com/oksasatya/kyystore-api/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrForbidden          = errors.New("forbidden")
)

// FieldCipher is the part of the field envelope the service needs.
type FieldCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(token string) string
}

type Service struct {
	Repo      repo.UserRepository
	JWT       *helpers.JWTManager
	Cipher    FieldCipher
	Publisher events.Publisher
	Logger    *logrus.Logger

	now func() time.Time
}

func NewService(repo repo.UserRepository, jwt *helpers.JWTManager, cipher FieldCipher, pub events.Publisher, logger *logrus.Logger) *Service {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Service{
		Repo:      repo,
		JWT:       jwt,
		Cipher:    cipher,
		Publisher: pub,
		Logger:    logger,
		now:       time.Now,
	}
}

// RegisterInput is the validated registration payload, in plaintext.
type RegisterInput struct {
	Email       string
	Password    string
	Name        string
	NIK         string
	DateOfBirth string
	Phone       string
	Address     string
	CardNumber  string
	CardExpiry  string
	CardCVV     string
}

type UserSummary struct {
	ID    string `json:"id"`
	Role  string `json:"role,omitempty"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type RegisterResult struct {
	User            UserSummary `json:"user"`
	Algorithm       string      `json:"algorithm"`
	FieldsEncrypted []string    `json:"fieldsEncrypted"`
}

// NormalizeCardNumber strips all whitespace from a card number.
func NormalizeCardNumber(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// Register encrypts every PII and payment field, hashes the password and
// stores the new customer.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	if _, err := s.Repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	in.CardNumber = NormalizeCardNumber(in.CardNumber)
	u, err := s.sealUser(in, entity.RoleUser)
	if err != nil {
		return nil, err
	}
	u.ID = fmt.Sprintf("u-%d", u.CreatedAt.UnixMilli())

	if err := s.add(ctx, u); err != nil {
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{
		"user_id":     u.ID,
		"email":       u.Email,
		"nik":         u.NIK,
		"phone":       u.Phone,
		"card_number": u.CardNumber,
	}).Info("user registered; sensitive fields stored as iv:tag:ciphertext")

	s.publishRegistered(ctx, u)

	return &RegisterResult{
		User:            UserSummary{ID: u.ID, Email: u.Email, Name: u.Name},
		Algorithm:       fieldcrypt.Algorithm,
		FieldsEncrypted: append([]string(nil), entity.EncryptedFields...),
	}, nil
}

// add stores u, retrying once with a random suffix when two registrations
// land on the same millisecond id.
func (s *Service) add(ctx context.Context, u *entity.User) error {
	err := s.Repo.Add(ctx, u)
	if errors.Is(err, repo.ErrIDTaken) {
		u.ID = u.ID + "-" + uuid.NewString()[:8]
		err = s.Repo.Add(ctx, u)
	}
	if errors.Is(err, repo.ErrEmailTaken) {
		return ErrEmailTaken
	}
	return err
}

func (s *Service) sealUser(in RegisterInput, role entity.Role) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &entity.User{
		Role:         role,
		Email:        strings.TrimSpace(in.Email),
		Name:         in.Name,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}

	fields := []struct {
		dst   *string
		plain string
	}{
		{&u.NIK, in.NIK},
		{&u.DateOfBirth, in.DateOfBirth},
		{&u.Phone, in.Phone},
		{&u.Address, in.Address},
		{&u.CardNumber, in.CardNumber},
		{&u.CardExpiry, in.CardExpiry},
		{&u.CardCVV, in.CardCVV},
	}
	for _, f := range fields {
		tok, err := s.Cipher.Encrypt(f.plain)
		if err != nil {
			return nil, fmt.Errorf("encrypt field: %w", err)
		}
		*f.dst = tok
	}
	return u, nil
}

func (s *Service) publishRegistered(ctx context.Context, u *entity.User) {
	evt := events.UserRegistered{
		Type:   events.TypeUserRegistered,
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		EncryptedFields: map[string]string{
			"nik":         u.NIK,
			"dateOfBirth": u.DateOfBirth,
			"phone":       u.Phone,
			"address":     u.Address,
			"cardNumber":  u.CardNumber,
			"cardExpiry":  u.CardExpiry,
			"cardCvv":     u.CardCVV,
		},
		OccurredAt: u.CreatedAt,
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := s.Publisher.PublishJSON(c, evt); err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("publish user.registered failed")
	}
}

type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      UserSummary `json:"user"`
}

// Authenticate validates email/password. Unknown email and wrong password
// are indistinguishable.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	tok, exp, err := s.JWT.Generate(u.ID, u.Role.String(), u.Name, u.Email)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		return nil, err
	}
	return &LoginResult{
		Token:     tok,
		ExpiresAt: exp,
		User:      UserSummary{ID: u.ID, Role: u.Role.String(), Email: u.Email, Name: u.Name},
	}, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.FindByID(ctx, userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// AdminSeed describes the bootstrap administrator.
type AdminSeed struct {
	ID string
	RegisterInput
}

// SeedAdmin inserts the administrator unless the email already exists.
func (s *Service) SeedAdmin(ctx context.Context, seed AdminSeed) error {
	if _, err := s.Repo.FindByEmail(ctx, seed.Email); err == nil {
		return nil
	}
	u, err := s.sealUser(seed.RegisterInput, entity.RoleAdmin)
	if err != nil {
		return err
	}
	u.ID = seed.ID
	if u.ID == "" {
		u.ID = "a-1"
	}
	if err := s.Repo.Add(ctx, u); err != nil && !errors.Is(err, repo.ErrEmailTaken) {
		return err
	}
	s.Logger.WithField("email", u.Email).Info("admin account ready")
	return nil
}

// DemoAdminSeed returns the administrator with the demo PII and card data the
// storefront ships with.
func DemoAdminSeed(email, password, name string) AdminSeed {
	return AdminSeed{
		ID: "a-1",
		RegisterInput: RegisterInput{
			Email:       email,
			Password:    password,
			Name:        name,
			NIK:         "3201234567890001",
			DateOfBirth: "1990-01-15",
			Phone:       "081234567890",
			Address:     "Jl. Admin No. 1, Jakarta Pusat 10110",
			CardNumber:  "4532015112830366",
			CardExpiry:  "12/28",
			CardCVV:     "123",
		},
	}
}
