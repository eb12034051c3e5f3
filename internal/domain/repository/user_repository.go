package repository

import (
	"context"

	"github.com/jhoicas/Sucursales-api/internal/domain/entity"
)

// UserRepository puerto sobre users. El hash de contraseña nunca sale en listados.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	ListAll(ctx context.Context) ([]*entity.User, error)
}
