package services

import (
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"

	"staynest/errors"
)

// UserInfo là payload nhúng trong token
type UserInfo struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateToken tạo access token có hạn theo phút
func GenerateToken(info UserInfo, expireMinutes int) (string, error) {
	claims := jwt.MapClaims{
		"userinfo": map[string]interface{}{
			"userId": info.UserID,
			"role":   info.Role,
		},
		"exp": time.Now().Add(time.Duration(expireMinutes) * time.Minute).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// GetUserIDFromToken xác minh token và lấy userID, role từ claims
func GetUserIDFromToken(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "유효하지 않은 토큰입니다.", nil)
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "유효하지 않은 토큰입니다.", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "유효하지 않은 토큰입니다.", nil)
	}

	userInfo, ok := claims["userinfo"].(map[string]interface{})
	if !ok {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "토큰에서 사용자 정보를 찾을 수 없습니다.", nil)
	}

	userID, okID := userInfo["userId"].(float64)
	role, okRole := userInfo["role"].(string)
	if !okID || !okRole {
		return 0, "", errors.NewAppError(errors.ErrCodeInvalidToken, "토큰에서 사용자 정보를 찾을 수 없습니다.", nil)
	}

	return uint(userID), role, nil
}
