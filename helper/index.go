package helper

import (
	"fmt"
	"strings"
	"time"

	"eldercare_booking/config"
	"eldercare_booking/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

func jwtSecret() []byte {
	return []byte(config.ConfigDefault("JWT_SECRET", "eldercare-dev-secret"))
}

// TokenTTL thời hạn token, mặc định 30 ngày
func TokenTTL() time.Duration {
	return time.Duration(config.ConfigInt("JWT_TTL_HOURS", 720)) * time.Hour
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func GenerateAccessToken(userID uint, issuedAt time.Time, ttl time.Duration) (string, time.Time, error) {
	expiresAt := issuedAt.Add(ttl)
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["id"] = userID
	claims["iat"] = issuedAt.Unix()
	claims["exp"] = expiresAt.Unix()

	t, err := token.SignedString(jwtSecret())
	return t, expiresAt, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Xác thực thuật toán ký là HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})

	return token, err
}

// SessionFromToken kiểm tra chữ ký, hạn dùng và trả về phiên đăng nhập
func SessionFromToken(tokenString string, now time.Time) (*model.Session, error) {
	token, err := ParseToken(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return nil, ErrInvalidToken
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalidToken
	}
	if !now.Before(exp.Time) {
		return nil, ErrExpiredToken
	}
	return &model.Session{UserID: uint(id), ExpiresAt: exp.Time}, nil
}
