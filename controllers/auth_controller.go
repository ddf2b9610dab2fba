package controllers

import (
	"github.com/gin-gonic/gin"

	"staynest/dto"
	"staynest/middleware"
	"staynest/models"
	"staynest/response"
	"staynest/services"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func toUserResponse(user *models.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		PhoneNumber: user.PhoneNumber,
		Image:       user.Image,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt,
	}
	if user.Email != nil {
		resp.Email = *user.Email
	}
	if user.Username != nil {
		resp.Username = *user.Username
	}
	return resp
}

// Register godoc
// @Summary Đăng ký tài khoản
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterInput true "Thông tin đăng ký"
// @Success 201 {object} response.Response
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	user, err := ctrl.authService.Register(input)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Created(c, toUserResponse(user))
}

// Login godoc
// @Summary Đăng nhập bằng email hoặc username
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginInput true "Thông tin đăng nhập"
// @Success 200 {object} response.Response
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	user, token, err := ctrl.authService.Login(input)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, gin.H{
		"accessToken": token,
		"user":        toUserResponse(user),
	})
}

// GoogleLogin godoc
// @Summary Đăng nhập bằng Google ID token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.GoogleLoginInput true "Google ID token"
// @Success 200 {object} response.Response
// @Router /auth/google [post]
func (ctrl *AuthController) GoogleLogin(c *gin.Context) {
	var input dto.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "입력값이 올바르지 않습니다.")
		return
	}

	user, token, err := ctrl.authService.GoogleLogin(c.Request.Context(), input.IDToken)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, gin.H{
		"accessToken": token,
		"user":        toUserResponse(user),
	})
}

// Me godoc
// @Summary Thông tin tài khoản hiện tại
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	user, err := ctrl.authService.GetProfile(userID)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.Success(c, toUserResponse(user))
}

// Logout godoc
// @Summary Đăng xuất (stateless, client tự xóa token)
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	response.Success(c, nil)
}
