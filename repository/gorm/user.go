package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"github.com/motoki317/sc"
	"gorm.io/gorm"

	"github.com/quickchat/quickchat/model"
	"github.com/quickchat/quickchat/repository"
)

var _ repository.UserRepository = (*userRepository)(nil)

type userRepository struct {
	db    *gorm.DB
	users *sc.Cache[uuid.UUID, *model.User]
}

func makeUserRepository(db *gorm.DB) *userRepository {
	r := &userRepository{db: db}
	r.users = sc.NewMust(r.getUser, 1*time.Minute, 5*time.Minute)
	return r
}

func (r *userRepository) getUser(_ context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, &model.User{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &user, nil
}

// CreateUser implements UserRepository interface.
func (r *userRepository) CreateUser(args repository.CreateUserArgs) (*model.User, error) {
	user := &model.User{
		ID:         uuid.Must(uuid.NewV4()),
		Email:      args.Email,
		FullName:   args.FullName,
		Bio:        args.Bio,
		ProfilePic: args.ProfilePic,
	}
	if err := user.SetPassword(args.Password); err != nil {
		return nil, err
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where(&model.User{Email: user.Email}).Limit(1).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return repository.ErrAlreadyExists
		}
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, convertError(err)
	}

	return user, nil
}

// GetUser implements UserRepository interface.
func (r *userRepository) GetUser(id uuid.UUID) (*model.User, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNotFound
	}
	return r.users.Get(context.Background(), id)
}

// GetUserByEmail implements UserRepository interface.
func (r *userRepository) GetUserByEmail(email string) (*model.User, error) {
	if len(email) == 0 {
		return nil, repository.ErrNotFound
	}
	var user model.User
	if err := r.db.First(&user, &model.User{Email: email}).Error; err != nil {
		return nil, convertError(err)
	}
	return &user, nil
}

// GetUsers implements UserRepository interface.
func (r *userRepository) GetUsers(query repository.UsersQuery) ([]*model.User, error) {
	users := make([]*model.User, 0)
	tx := r.db.Order("created_at ASC")
	if query.Exclude.Valid {
		tx = tx.Where("id <> ?", query.Exclude.V)
	}
	if err := tx.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser implements UserRepository interface.
func (r *userRepository) UpdateUser(id uuid.UUID, args repository.UpdateUserArgs) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}

	changes := map[string]interface{}{}
	if args.FullName.Valid {
		changes["full_name"] = args.FullName.V
	}
	if args.Bio.Valid {
		changes["bio"] = args.Bio.V
	}
	if args.ProfilePic.Valid {
		changes["profile_pic"] = args.ProfilePic.V
	}
	if args.LastOnline.Valid {
		changes["last_online"] = args.LastOnline
	}
	if len(changes) == 0 {
		return nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var u model.User
		if err := tx.First(&u, &model.User{ID: id}).Error; err != nil {
			return err
		}
		return tx.Model(&u).Updates(changes).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrNotFound
		}
		return err
	}
	r.users.Forget(id)
	return nil
}
