package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/store"
	"github.com/mrrinformatica/inventario/pkg/cryptox"
)

var ErrUserExists = errors.New("username already taken")

// UserService manages user accounts. All read paths return stripped
// PublicUser records.
type UserService struct {
	Store store.Store
}

func (s *UserService) List(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (domain.PublicUser, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return domain.PublicUser{}, err
	}
	return u.Public(), nil
}

// Create provisions a new account. When password is empty a random initial
// one is generated; either way only the hash is stored.
func (s *UserService) Create(ctx context.Context, actor string, u domain.User, password string) (domain.PublicUser, error) {
	if _, err := s.Store.Users().GetUserByUsername(ctx, u.Username); err == nil {
		return domain.PublicUser{}, ErrUserExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.PublicUser{}, fmt.Errorf("failed to check username: %w", err)
	}

	if password == "" {
		var err error
		password, err = cryptox.GeneratePassword()
		if err != nil {
			return domain.PublicUser{}, err
		}
	}
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.PublicUser{}, err
	}
	u.PasswordHash = hash

	if u.Role == "" {
		u.Role = domain.RoleUser
	}

	id, err := s.Store.Users().CreateUser(ctx, u)
	if err != nil {
		return domain.PublicUser{}, fmt.Errorf("failed to create user: %w", err)
	}
	u.ID = id

	logAction(ctx, s.Store, actor, domain.AuditCreate, domain.TargetUser,
		idRef(id), fmt.Sprintf("Usuário criado: %s", u.Username))

	return u.Public(), nil
}

// Update mutates an account's name, email, role and avatar. When password is
// non-empty it is rehashed and replaced as well.
func (s *UserService) Update(ctx context.Context, actor string, u domain.User, password string) (domain.PublicUser, error) {
	existing, err := s.Store.Users().GetUserByID(ctx, u.ID)
	if err != nil {
		return domain.PublicUser{}, err
	}

	if err := s.Store.Users().UpdateUser(ctx, u); err != nil {
		return domain.PublicUser{}, fmt.Errorf("failed to update user: %w", err)
	}

	if password != "" {
		hash, err := cryptox.HashPassword(password)
		if err != nil {
			return domain.PublicUser{}, err
		}
		if err := s.Store.Users().UpdatePasswordHash(ctx, u.ID, hash); err != nil {
			return domain.PublicUser{}, fmt.Errorf("failed to update password: %w", err)
		}
	}

	logAction(ctx, s.Store, actor, domain.AuditUpdate, domain.TargetUser,
		idRef(u.ID), fmt.Sprintf("Usuário atualizado: %s", existing.Username))

	updated, err := s.Store.Users().GetUserByID(ctx, u.ID)
	if err != nil {
		return domain.PublicUser{}, err
	}
	return updated.Public(), nil
}

// UpdateProfile is the self-service subset: real name and avatar only.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, realName, avatarURL string) (domain.PublicUser, error) {
	if err := s.Store.Users().UpdateProfile(ctx, userID, realName, avatarURL); err != nil {
		return domain.PublicUser{}, fmt.Errorf("failed to update profile: %w", err)
	}
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.PublicUser{}, err
	}
	return u.Public(), nil
}

func (s *UserService) Delete(ctx context.Context, actor string, id int64) error {
	existing, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.Store.Users().DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	logAction(ctx, s.Store, actor, domain.AuditDelete, domain.TargetUser,
		idRef(id), fmt.Sprintf("Usuário removido: %s", existing.Username))
	return nil
}
