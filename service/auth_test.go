package service

import (
	"context"
	"testing"
	"time"

	"eldercare_booking/constants"
	"eldercare_booking/helper"
	"eldercare_booking/model"
	"eldercare_booking/store"
	"eldercare_booking/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth() (*AuthService, store.UserStore) {
	users := store.NewMemoryUserStore()
	return NewAuthService(users, nil, time.Hour), users
}

func registerInput() *model.RegisterInput {
	return &model.RegisterInput{
		Name:     "Phạm Văn Long",
		Email:    "  Long@Example.com ",
		Phone:    "0905123456",
		Password: "secret123",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	auth, _ := newAuth()
	ctx := context.Background()

	result, err := auth.Register(ctx, registerInput())
	require.NoError(t, err)
	assert.Equal(t, "long@example.com", result.User.Email)
	assert.Equal(t, constants.ROLE_USER, result.User.Role)
	assert.NotEqual(t, "secret123", result.User.Password)
	assert.NotEmpty(t, result.Token)

	session, err := helper.SessionFromToken(result.Token, time.Now())
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, session.UserID)

	byEmail, err := auth.Login(ctx, &model.LoginInput{Email: "LONG@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, byEmail.User.ID)

	byPhone, err := auth.Login(ctx, &model.LoginInput{Email: "0905123456", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, byPhone.User.ID)

	_, err = auth.Login(ctx, &model.LoginInput{Email: "long@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = auth.Login(ctx, &model.LoginInput{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRegister_Conflicts(t *testing.T) {
	auth, _ := newAuth()
	ctx := context.Background()
	_, err := auth.Register(ctx, registerInput())
	require.NoError(t, err)

	sameEmail := registerInput()
	sameEmail.Phone = "0905999999"
	_, err = auth.Register(ctx, sameEmail)
	assert.ErrorIs(t, err, ErrConflict)

	samePhone := registerInput()
	samePhone.Email = "other@example.com"
	_, err = auth.Register(ctx, samePhone)
	assert.ErrorIs(t, err, ErrConflict)

	short := registerInput()
	short.Email = "short@example.com"
	short.Phone = "0905000001"
	short.Password = "123"
	_, err = auth.Register(ctx, short)
	assert.True(t, IsValidation(err))
}

func TestActor_ResolvesCurrentRole(t *testing.T) {
	auth, users := newAuth()
	ctx := context.Background()
	result, err := auth.Register(ctx, registerInput())
	require.NoError(t, err)

	actor, user, err := auth.Actor(ctx, model.Session{UserID: result.User.ID})
	require.NoError(t, err)
	assert.Equal(t, constants.ROLE_USER, actor.Role)
	assert.Equal(t, result.User.Email, user.Email)

	// vai trò đọc lại mỗi request nên thăng quyền có hiệu lực ngay
	stored, err := users.FindByID(ctx, result.User.ID)
	require.NoError(t, err)
	stored.Role = constants.ROLE_ADMIN
	require.NoError(t, users.Save(ctx, stored))

	actor, _, err = auth.Actor(ctx, model.Session{UserID: result.User.ID})
	require.NoError(t, err)
	assert.Equal(t, constants.ROLE_ADMIN, actor.Role)

	_, _, err = auth.Actor(ctx, model.Session{UserID: 999})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateProfile(t *testing.T) {
	auth, _ := newAuth()
	ctx := context.Background()
	first, err := auth.Register(ctx, registerInput())
	require.NoError(t, err)
	second, err := auth.Register(ctx, &model.RegisterInput{Name: "Hà", Email: "ha@example.com", Phone: "0905000002", Password: "secret123"})
	require.NoError(t, err)
	actor := model.Actor{UserID: first.User.ID, Role: first.User.Role}

	user, err := auth.UpdateProfile(ctx, actor, &model.UpdateProfileInput{
		Name:    utils.Ptr("Phạm Long"),
		Gender:  utils.Ptr("Nam"),
		Address: utils.Ptr("Quy Nhơn"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Phạm Long", user.Name)
	assert.Equal(t, "Nam", user.Gender)
	assert.Equal(t, "0905123456", user.Phone, "omitted fields stay")

	_, err = auth.UpdateProfile(ctx, actor, &model.UpdateProfileInput{Phone: utils.Ptr(second.User.Phone)})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = auth.UpdateProfile(ctx, actor, &model.UpdateProfileInput{Gender: utils.Ptr("X")})
	assert.True(t, IsValidation(err))
}

func TestAdminUserManagement(t *testing.T) {
	auth, _ := newAuth()
	ctx := context.Background()
	result, err := auth.Register(ctx, registerInput())
	require.NoError(t, err)
	user := model.Actor{UserID: result.User.ID, Role: constants.ROLE_USER}
	admin := model.Actor{UserID: 500, Role: constants.ROLE_ADMIN}

	_, err = auth.ListUsers(ctx, user)
	assert.ErrorIs(t, err, ErrForbidden)

	list, err := auth.ListUsers(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	updated, err := auth.UpdateRole(ctx, admin, result.User.ID, constants.ROLE_ADMIN)
	require.NoError(t, err)
	assert.Equal(t, constants.ROLE_ADMIN, updated.Role)

	_, err = auth.UpdateRole(ctx, admin, result.User.ID, "root")
	assert.True(t, IsValidation(err))

	err = auth.DeleteUser(ctx, model.Actor{UserID: result.User.ID, Role: constants.ROLE_ADMIN}, result.User.ID)
	assert.True(t, IsValidation(err), "cannot delete self")

	require.NoError(t, auth.DeleteUser(ctx, admin, result.User.ID))
	assert.ErrorIs(t, auth.DeleteUser(ctx, admin, result.User.ID), ErrNotFound)
}
