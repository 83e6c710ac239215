package repository

import (
	"context"

	"dootrec/internal/data/entity"

	"go.uber.org/zap"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// First returns the first user in catalogue order, or nil when empty.
	First(ctx context.Context) (*entity.User, error)
}

type userRepository struct {
	users []*entity.User
	byID  map[string]*entity.User
	log   *zap.Logger
}

func NewUserRepository(users []*entity.User, log *zap.Logger) UserRepository {
	byID := make(map[string]*entity.User, len(users))
	for _, u := range users {
		if _, dup := byID[u.ID]; dup {
			log.Warn("Duplicate user id in catalogue, keeping first", zap.String("user_id", u.ID))
			continue
		}
		byID[u.ID] = u
	}

	return &userRepository{
		users: users,
		byID:  byID,
		log:   log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(r.users))
	for i, u := range r.users {
		c := *u
		users[i] = &c
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	u, ok := r.byID[id]
	if !ok {
		r.log.Debug("User not in catalogue", zap.String("user_id", id))
		return nil, nil
	}

	c := *u
	return &c, nil
}

func (r *userRepository) First(ctx context.Context) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(r.users) == 0 {
		return nil, nil
	}

	c := *r.users[0]
	return &c, nil
}
