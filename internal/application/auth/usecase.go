package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ArjunTewari/plexora/internal/application/dto"
	"github.com/ArjunTewari/plexora/internal/domain"
	"github.com/ArjunTewari/plexora/internal/domain/entity"
	"github.com/ArjunTewari/plexora/internal/domain/repository"
	"github.com/ArjunTewari/plexora/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// RegistrationTxRunner crea restaurante y usuario dentro de una misma transacción.
type RegistrationTxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		restaurantRepo repository.RestaurantRepository,
		userRepo repository.UserRepository,
	) error) error
}

// dummyHash se compara cuando el email no existe para que ambos caminos del login cuesten lo mismo.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("plexora-dummy-password"), bcrypt.DefaultCost)

// AuthUseCase casos de uso de autenticación: registro, login y sesión actual.
type AuthUseCase struct {
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	txRunner       RegistrationTxRunner
	jwtCfg         JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	restaurantRepo repository.RestaurantRepository,
	txRunner RegistrationTxRunner,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, restaurantRepo: restaurantRepo, txRunner: txRunner, jwtCfg: jwtCfg}
}

// Register crea el restaurante y su usuario dueño. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	restaurant := &entity.Restaurant{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.RestaurantName),
		CreatedAt: now,
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		RestaurantID: restaurant.ID,
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleOwner,
		CreatedAt:    now,
	}

	err = uc.txRunner.RunRegistration(ctx, func(restaurantRepo repository.RestaurantRepository, userRepo repository.UserRepository) error {
		if err := restaurantRepo.Create(ctx, restaurant); err != nil {
			return fmt.Errorf("crear restaurante: %w", err)
		}
		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email inexistente y password incorrecto producen el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Session{
		UserID:       user.ID,
		RestaurantID: user.RestaurantID,
		Role:         user.Role,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    ToUserResponse(user),
	}, nil
}

// Me devuelve el usuario de la sesión y su restaurante.
func (uc *AuthUseCase) Me(ctx context.Context, restaurantID, userID string) (*dto.MeResponse, error) {
	user, err := uc.userRepo.FindByID(ctx, restaurantID, userID)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := &dto.MeResponse{Success: true, User: ToUserResponse(user)}

	restaurant, err := uc.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("buscar restaurante: %w", err)
	}
	if restaurant != nil {
		resp.Restaurant = &dto.RestaurantResponse{ID: restaurant.ID, Name: restaurant.Name, CreatedAt: restaurant.CreatedAt}
	}
	return resp, nil
}

// ToUserResponse proyecta la entidad sin el hash.
func ToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		RestaurantID: u.RestaurantID,
		CreatedAt:    u.CreatedAt,
	}
}
