package service

import (
	"context"
	"strings"
	"time"

	"eldercare_booking/constants"
	"eldercare_booking/helper"
	"eldercare_booking/model"
	"eldercare_booking/store"
	"eldercare_booking/utils"

	"github.com/pkg/errors"
)

const profileDocumentFolder = "eldercare/profiles"

type AuthService struct {
	users    store.UserStore
	uploader ImageUploader
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthService(users store.UserStore, uploader ImageUploader, ttl time.Duration) *AuthService {
	return &AuthService{users: users, uploader: uploader, ttl: ttl, now: time.Now}
}

func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

func (s *AuthService) issue(user *model.User) (*model.AuthResult, error) {
	token, expiresAt, err := helper.GenerateAccessToken(user.ID, s.now(), s.ttl)
	if err != nil {
		return nil, errors.Wrap(err, "sign token")
	}
	return &model.AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *AuthService) Register(ctx context.Context, input *model.RegisterInput) (*model.AuthResult, error) {
	if err := checkStruct(input); err != nil {
		return nil, err
	}
	email := helper.NormalizeEmail(input.Email)
	phone := strings.TrimSpace(input.Phone)

	exists, err := s.users.ExistsEmailOrPhone(ctx, email, phone, 0)
	if err != nil {
		return nil, errors.Wrap(err, "check duplicate account")
	}
	if exists {
		return nil, ErrConflict
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}
	user := &model.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Phone:    phone,
		Password: hash,
		Role:     constants.ROLE_USER,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			return nil, ErrConflict
		}
		return nil, errors.Wrap(err, "create user")
	}
	return s.issue(user)
}

// Login định danh là email hoặc số điện thoại
func (s *AuthService) Login(ctx context.Context, input *model.LoginInput) (*model.AuthResult, error) {
	if err := checkStruct(input); err != nil {
		return nil, err
	}
	identifier := strings.TrimSpace(input.Email)
	if strings.Contains(identifier, "@") {
		identifier = helper.NormalizeEmail(identifier)
	}
	user, err := s.users.FindByLogin(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, errors.Wrap(err, "find user for login")
	}
	if !helper.CheckPasswordHash(input.Password, user.Password) {
		return nil, ErrUnauthorized
	}
	return s.issue(user)
}

func (s *AuthService) Me(ctx context.Context, actor model.Actor) (*model.User, error) {
	if actor.UserID == 0 {
		return nil, ErrUnauthorized
	}
	user, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, mapStoreErr(err, "find current user")
	}
	return user, nil
}

// Actor tra cứu vai trò hiện tại của người dùng trong phiên
func (s *AuthService) Actor(ctx context.Context, session model.Session) (model.Actor, *model.User, error) {
	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Actor{}, nil, ErrUnauthorized
		}
		return model.Actor{}, nil, errors.Wrap(err, "find session user")
	}
	return model.Actor{UserID: user.ID, Role: user.Role}, user, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, actor model.Actor, input *model.UpdateProfileInput) (*model.User, error) {
	if actor.UserID == 0 {
		return nil, ErrUnauthorized
	}
	if err := checkStruct(input); err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, mapStoreErr(err, "find user for profile")
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil && strings.TrimSpace(*input.Phone) != "" {
		phone := strings.TrimSpace(*input.Phone)
		taken, err := s.users.ExistsEmailOrPhone(ctx, "", phone, user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "check duplicate phone")
		}
		if taken {
			return nil, ErrConflict
		}
		user.Phone = phone
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = *input.DateOfBirth
	}
	if input.Gender != nil {
		user.Gender = *input.Gender
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.InsuranceCard != nil {
		card, err := resolveImage(ctx, s.uploader, *input.InsuranceCard, profileDocumentFolder)
		if err != nil {
			return nil, err
		}
		user.InsuranceCard = card
	}

	if err := s.users.Save(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			return nil, ErrConflict
		}
		return nil, errors.Wrap(err, "save profile")
	}
	return user, nil
}

// ResetPassword đổi mật khẩu theo email, chỉ gọi sau khi OTP đã được xác thực
func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	user, err := s.users.FindByEmail(ctx, helper.NormalizeEmail(email))
	if err != nil {
		return mapStoreErr(err, "find user for reset")
	}
	hash, err := helper.HashPassword(newPassword)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	user.Password = hash
	return errors.Wrap(s.users.Save(ctx, user), "save new password")
}

func (s *AuthService) EmailRegistered(ctx context.Context, email string) (bool, error) {
	_, err := s.users.FindByEmail(ctx, helper.NormalizeEmail(email))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	return false, errors.Wrap(err, "find user by email")
}

func (s *AuthService) ListUsers(ctx context.Context, actor model.Actor) (model.Users, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return users, nil
}

func (s *AuthService) UpdateRole(ctx context.Context, actor model.Actor, id uint, role string) (*model.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if !utils.IsValidValueOfConstant(role, constants.ROLES) {
		return nil, invalid("role", "vai trò không hợp lệ: %q", role)
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err, "find user for role")
	}
	user.Role = role
	if err := s.users.Save(ctx, user); err != nil {
		return nil, errors.Wrap(err, "save role")
	}
	return user, nil
}

func (s *AuthService) DeleteUser(ctx context.Context, actor model.Actor, id uint) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if id == actor.UserID {
		return invalid("id", "không thể xóa tài khoản của chính mình")
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return mapStoreErr(err, "delete user")
	}
	return nil
}
