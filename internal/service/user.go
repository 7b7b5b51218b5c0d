package service

import (
	"VidHub/internal/model"
	"VidHub/internal/repository"
	"VidHub/pkg/apperr"
	"VidHub/pkg/token"
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 用户服务接口：1、注册 2、登录 3、个人信息
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	// 返回签好的token和登录的用户
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	GetProfile(ctx context.Context, userID uint64) (*model.User, error)
}

type userService struct {
	userRepo  repository.UserRepository
	jwtSecret string
	jwtExpire time.Duration
}

func NewUserService(userRepo repository.UserRepository, jwtSecret string, jwtExpire time.Duration) UserService {
	return &userService{userRepo: userRepo, jwtSecret: jwtSecret, jwtExpire: jwtExpire}
}

// DefaultAvatar 根据用户名生成头像地址
func DefaultAvatar(username string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(username) + "&background=random"
}

// 注册逻辑：1、检查邮箱和用户名是否已被占用 2、密码加密存储 3、插入数据库
// 字段格式（长度、邮箱格式）在handler绑定请求时已经由binding标签校验过
// 唯一索引兜底：并发注册同一个邮箱时，后插入的那个会得到ErrDuplicatedKey
func (s *userService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, apperr.Validation("Email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}
	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, apperr.Validation("Username is already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	newUser := &model.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		Avatar:   DefaultAvatar(username),
	}
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Validation("Email or username is already registered")
		}
		return nil, apperr.Internal(err)
	}
	return newUser, nil
}

// 登录逻辑：1、按邮箱找用户 2、加密后密码和输入密码比对 3、生成jwt签名
// 邮箱不存在和密码错误返回同一句话，不暴露哪个邮箱注册过
func (s *userService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperr.Unauthenticated("Invalid email or password")
		}
		return "", nil, apperr.Internal(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Unauthenticated("Invalid email or password")
	}

	tokenString, err := token.Sign(s.jwtSecret, user.ID, user.Username, s.jwtExpire)
	if err != nil {
		return "", nil, apperr.Internal(err)
	}
	return tokenString, user, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uint64) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, storageErr(err, "User not found")
	}
	return user, nil
}
