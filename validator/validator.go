package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"staynest/dto"
	apperrors "staynest/errors"
)

var validate = validator.New()

const minPasswordLength = 8

// ValidateRegisterInput kiểm tra dữ liệu đăng ký trước khi chạm DB.
// Email và username có thể bỏ trống một trong hai nhưng không được cả hai.
func ValidateRegisterInput(input dto.RegisterInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "이름을 입력해주세요.", nil)
	}

	if input.Email == "" && input.Username == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "이메일 또는 아이디를 입력해주세요.", nil)
	}

	if input.Email != "" {
		if err := validate.Var(input.Email, "email"); err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "이메일 형식이 올바르지 않습니다.", err)
		}
	}

	if input.Username != "" {
		if err := validate.Var(input.Username, "alphanum,min=4,max=30"); err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "아이디는 4~30자의 영문/숫자만 가능합니다.", err)
		}
	}

	if len(input.Password) < minPasswordLength {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "비밀번호는 최소 8자 이상이어야 합니다.", nil)
	}

	if input.PhoneNumber != "" {
		if err := validate.Var(input.PhoneNumber, "e164|numeric"); err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "전화번호 형식이 올바르지 않습니다.", err)
		}
	}

	return nil
}

// ValidateLoginInput kiểm tra dữ liệu đăng nhập
func ValidateLoginInput(input dto.LoginInput) error {
	if strings.TrimSpace(input.LoginID) == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "이메일 또는 아이디를 입력해주세요.", nil)
	}
	if input.Password == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "비밀번호를 입력해주세요.", nil)
	}
	return nil
}
