package services

import (
	"context"
	"os"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"

	"staynest/constants"
	"staynest/dto"
	apperrors "staynest/errors"
	"staynest/models"
	"staynest/services/logger"
	"staynest/validator"
)

const (
	bcryptCost         = 12
	tokenExpireMinutes = 60 * 24
)

type AuthService struct {
	db     *gorm.DB
	logger logger.Logger
}

type AuthServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &AuthService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// Register tạo tài khoản mới. SecurityCode khớp ADMIN_SECURITY_CODE
// thì tài khoản được cấp quyền SUPER_ADMIN.
func (s *AuthService) Register(input dto.RegisterInput) (*models.User, error) {
	if err := validator.ValidateRegisterInput(input); err != nil {
		return nil, err
	}

	role := constants.RoleUser
	if input.SecurityCode != "" {
		adminCode := os.Getenv("ADMIN_SECURITY_CODE")
		if adminCode == "" || input.SecurityCode != adminCode {
			return nil, apperrors.NewAppError(apperrors.ErrCodeForbidden, "보안 코드가 올바르지 않습니다.", nil)
		}
		role = constants.RoleSuperAdmin
	}

	if input.Email != "" {
		var count int64
		if err := s.db.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
		}
		if count > 0 {
			return nil, apperrors.NewAppError(apperrors.ErrCodeConflict, "이미 사용 중인 이메일입니다.", nil)
		}
	}
	if input.Username != "" {
		var count int64
		if err := s.db.Model(&models.User{}).Where("username = ?", input.Username).Count(&count).Error; err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
		}
		if count > 0 {
			return nil, apperrors.NewAppError(apperrors.ErrCodeConflict, "이미 사용 중인 아이디입니다.", nil)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}

	user := &models.User{
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Password:    string(hashed),
		Role:        role,
	}
	if input.Email != "" {
		user.Email = &input.Email
	}
	if input.Username != "" {
		user.Username = &input.Username
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "회원가입 중 오류가 발생했습니다.", err)
	}

	s.logger.Info("user %d registered (role=%s)", user.ID, user.Role)
	return user, nil
}

// Login xác thực bằng email hoặc username và trả về access token
func (s *AuthService) Login(input dto.LoginInput) (*models.User, string, error) {
	if err := validator.ValidateLoginInput(input); err != nil {
		return nil, "", err
	}

	var user models.User
	if err := s.db.Where("email = ? OR username = ?", input.LoginID, input.LoginID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "이메일 또는 비밀번호가 올바르지 않습니다.", err)
		}
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}

	if user.Password == "" {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "소셜 로그인으로 가입된 계정입니다.", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "이메일 또는 비밀번호가 올바르지 않습니다.", err)
	}

	token, err := GenerateToken(UserInfo{UserID: user.ID, Role: user.Role}, tokenExpireMinutes)
	if err != nil {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}

	return &user, token, nil
}

// GoogleLogin xác minh ID token của Google, tạo tài khoản nếu lần đầu
func (s *AuthService) GoogleLogin(ctx context.Context, rawIDToken string) (*models.User, string, error) {
	payload, err := idtoken.Validate(ctx, rawIDToken, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "구글 로그인에 실패했습니다.", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "구글 계정에서 이메일을 가져올 수 없습니다.", nil)
	}
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	var user models.User
	err = s.db.Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{
			Name:  name,
			Email: &email,
			Image: picture,
			Role:  constants.RoleUser,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, "", apperrors.NewAppError(apperrors.ErrCodeDBError, "회원가입 중 오류가 발생했습니다.", err)
		}
		s.logger.Info("user %d registered via google", user.ID)
	} else if err != nil {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}

	token, err := GenerateToken(UserInfo{UserID: user.ID, Role: user.Role}, tokenExpireMinutes)
	if err != nil {
		return nil, "", apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}

	return &user, token, nil
}

// GetProfile trả về thông tin user hiện tại
func (s *AuthService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "사용자를 찾을 수 없습니다.", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "서버 오류가 발생했습니다.", err)
	}
	return &user, nil
}
