package gorm

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/quickchat/quickchat/model"
	"github.com/quickchat/quickchat/repository"
	"github.com/quickchat/quickchat/utils/optional"
	"github.com/quickchat/quickchat/utils/random"
)

func TestRepositoryImpl_CreateUser(t *testing.T) {
	t.Parallel()
	repo, assert, _ := setup(t, common)

	email := random.AlphaNumeric(20) + "@example.com"
	user, err := repo.CreateUser(repository.CreateUserArgs{
		Email:    email,
		FullName: "Alice",
		Password: "password",
		Bio:      "hello",
	})
	if assert.NoError(err) {
		assert.NotEqual(uuid.Nil, user.ID)
		assert.Equal(email, user.Email)
		assert.Equal("Alice", user.FullName)
		assert.NoError(user.Authenticate("password"))
		assert.False(user.LastOnline.Valid)
	}

	_, err = repo.CreateUser(repository.CreateUserArgs{
		Email:    email,
		FullName: "Alice 2",
		Password: "password",
		Bio:      "hello",
	})
	assert.ErrorIs(err, repository.ErrAlreadyExists)
}

func TestRepositoryImpl_GetUser(t *testing.T) {
	t.Parallel()
	repo, _, _, user, _ := setupWithUsers(t, common)

	t.Run("nil id", func(t *testing.T) {
		t.Parallel()
		_, err := repo.GetUser(uuid.Nil)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		_, err := repo.GetUser(uuid.Must(uuid.NewV4()))
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		u, err := repo.GetUser(user.ID)
		if assert.NoError(t, err) {
			assert.Equal(t, user.ID, u.ID)
			assert.Equal(t, user.Email, u.Email)
			assert.NoError(t, u.Authenticate("password"))
		}
	})
}

func TestRepositoryImpl_GetUserByEmail(t *testing.T) {
	t.Parallel()
	repo, _, _, user, _ := setupWithUsers(t, common)

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		_, err := repo.GetUserByEmail("")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		_, err := repo.GetUserByEmail(random.AlphaNumeric(20) + "@example.com")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		u, err := repo.GetUserByEmail(user.Email)
		if assert.NoError(t, err) {
			assert.Equal(t, user.ID, u.ID)
		}
	})
}

func TestRepositoryImpl_GetUsers(t *testing.T) {
	t.Parallel()
	repo, assert, _, user1, user2 := setupWithUsers(t, common)

	users, err := repo.GetUsers(repository.UsersQuery{})
	if assert.NoError(err) {
		ids := lo.Map(users, func(u *model.User, _ int) uuid.UUID { return u.ID })
		assert.Contains(ids, user1.ID)
		assert.Contains(ids, user2.ID)
	}

	users, err = repo.GetUsers(repository.UsersQuery{}.NotID(user1.ID))
	if assert.NoError(err) {
		ids := lo.Map(users, func(u *model.User, _ int) uuid.UUID { return u.ID })
		assert.NotContains(ids, user1.ID)
		assert.Contains(ids, user2.ID)
	}
}

func TestRepositoryImpl_UpdateUser(t *testing.T) {
	t.Parallel()
	repo, _, _, user, _ := setupWithUsers(t, common)

	t.Run("nil id", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, repo.UpdateUser(uuid.Nil, repository.UpdateUserArgs{}), repository.ErrNilID)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		err := repo.UpdateUser(uuid.Must(uuid.NewV4()), repository.UpdateUserArgs{Bio: optional.From("x")})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("no change", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, repo.UpdateUser(user.ID, repository.UpdateUserArgs{}))
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		u := mustMakeUser(t, repo, rand)
		lastOnline := time.Now().Truncate(time.Second)

		err := repo.UpdateUser(u.ID, repository.UpdateUserArgs{
			FullName:   optional.From("Bob"),
			ProfilePic: optional.From("https://example.com/bob.png"),
			LastOnline: optional.From(lastOnline),
		})
		if assert.NoError(t, err) {
			got, err := repo.GetUser(u.ID)
			if assert.NoError(t, err) {
				assert.Equal(t, "Bob", got.FullName)
				assert.Equal(t, "bio", got.Bio)
				assert.Equal(t, "https://example.com/bob.png", got.ProfilePic)
				assert.True(t, got.LastOnline.Valid)
				assert.WithinDuration(t, lastOnline, got.LastOnline.V, time.Second)
			}
		}
	})
}
