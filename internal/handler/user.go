package handler

import (
	"net/http"

	"VidHub/internal/dto"
	"VidHub/internal/service"
	"VidHub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	GetProfile(c *gin.Context)
}

// 对Service进行封装
type userHandler struct {
	UserService service.UserService
}

func NewUserHandler(userService service.UserService) UserHandler {
	return &userHandler{UserService: userService}
}

// 用处：接收http发来的全部注册信息，字段格式由binding标签校验
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// 校验失败时按“字段.规则”给出具体提示
var registerMessages = map[string]string{
	"Username.required": "Username is required",
	"Username.min":      "Username must be 3-20 characters",
	"Username.max":      "Username must be 3-20 characters",
	"Email.required":    "Email is required",
	"Email.email":       "Please enter a valid email",
	"Password.required": "Password is required",
	"Password.min":      "Password must be at least 6 characters",
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// 注册：1、Body解析并校验为注册请求结构体 2、service层查重并注册 3、返回注册成功后的User
func (h *userHandler) Register(c *gin.Context) {
	var req RegisterRequest
	// c.ShouldBindJSON，绑定和校验，不满足binding标签的字段会返回validator.ValidationErrors
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.WithError(err).Warn("注册请求参数校验失败")
		sendErrorResponse(c, http.StatusBadRequest, validationMessage(err, registerMessages))
		return
	}

	logCtx := logger.Log.WithField("username", req.Username)
	logCtx.Info("开始处理用户注册请求")

	user, err := h.UserService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		logCtx.WithError(err).Warn("用户注册业务逻辑处理失败")
		sendError(c, err)
		return
	}

	logCtx.WithField("user_id", user.ID).Info("用户注册成功")
	c.JSON(http.StatusCreated, dto.ToProfileResponse(user))
}

// 登录：1、Body解析为登录结构体 2、Email和Password传给service层 3、成功则返回token和用户
func (h *userHandler) Login(c *gin.Context) {
	var login LoginRequest
	if err := c.ShouldBindJSON(&login); err != nil {
		logger.Log.WithError(err).Error("登录请求参数解析失败")
		sendErrorResponse(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	logCtx := logger.Log.WithField("email", login.Email)
	logCtx.Info("开始处理用户登录请求")

	token, user, err := h.UserService.Login(c.Request.Context(), login.Email, login.Password)
	if err != nil {
		// service层已经返回模糊的错误提示
		logCtx.WithError(err).Warn("用户登录业务逻辑处理失败")
		sendError(c, err)
		return
	}

	logCtx.WithField("user_id", user.ID).Info("用户登录成功")
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.ToProfileResponse(user)})
}

// 获取当前登录用户的信息，包含其频道ID列表
func (h *userHandler) GetProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	user, err := h.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Warn("获取用户信息失败")
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(user))
}
