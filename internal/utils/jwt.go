package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Claims JWTのペイロード
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.StandardClaims
}

// TokenManager JWTトークンの発行と検証を行う
// シークレットは設定から注入し、パッケージレベルの状態は持たない
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

// NewTokenManager TokenManagerを作成
func NewTokenManager(secret string, expiry time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Generate ユーザーIDからJWTトークンを生成
func (m *TokenManager) Generate(userID uint) (string, error) {
	// トークンの有効期限を設定
	expirationTime := time.Now().Add(m.expiry)

	// クレームを作成
	claims := &Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	// 署名して文字列化
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Validate JWTトークンを検証しクレームを返す
// 不正・改ざん・期限切れのトークンは *jwt.ValidationError を返す
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// 署名方法を確認
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.NewValidationError("unexpected signing method", jwt.ValidationErrorSignatureInvalid)
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.NewValidationError("token is invalid", jwt.ValidationErrorClaimsInvalid)
	}

	return claims, nil
}
