package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Sucursales-api/internal/application/dto"
	"github.com/jhoicas/Sucursales-api/internal/domain"
	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
	"github.com/jhoicas/Sucursales-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase alta y listado de cuentas de personal. Solo guarda el registro
// con la contraseña en bcrypt; el login y la autorización viven fuera de este
// servicio.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// Create registra un usuario nuevo; el email duplicado devuelve
// domain.ErrEmailExists.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (string, error) {
	if in.FullName == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return "", domain.ErrInvalidInput
	}
	if !strings.Contains(in.Email, "@") {
		return "", domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		FullName:     in.FullName,
		Email:        strings.ToLower(in.Email),
		PasswordHash: string(hash),
		Role:         in.Role,
		BranchID:     in.BranchID,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}

// List usuarios sin hash de contraseña.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := uc.userRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserDTO{
			UserID:    u.ID,
			FullName:  u.FullName,
			Email:     u.Email,
			Role:      u.Role,
			BranchID:  u.BranchID,
			IsActive:  u.IsActive,
			CreatedAt: u.CreatedAt,
		})
	}
	return out, nil
}
