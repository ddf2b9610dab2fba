package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staynest/errors"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination định nghĩa cấu trúc phân trang
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "성공했습니다.",
		Data: data,
	})
}

// Created trả về response 201 khi tạo mới
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "성공했습니다.",
		Data: data,
	})
}

// SuccessWithPagination trả về response thành công có phân trang
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "성공했습니다.",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "서버 오류가 발생했습니다.",
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "로그인이 필요합니다.",
	})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "권한이 없습니다.",
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "찾을 수 없습니다."
	}
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: message,
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict trả về response conflict (409)
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// FromAppError ánh xạ AppError sang mã HTTP tương ứng
func FromAppError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidState:
		BadRequest(c, appErr.Message)
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken:
		Unauthorized(c)
	case errors.ErrCodeForbidden:
		Forbidden(c)
	case errors.ErrCodeNotFound:
		NotFound(c, appErr.Message)
	case errors.ErrCodeConflict:
		Conflict(c, appErr.Message)
	case errors.ErrCodeExternalService:
		c.JSON(http.StatusBadGateway, Response{Code: 0, Mess: appErr.Message})
	default:
		ServerError(c)
	}
}
