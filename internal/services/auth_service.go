package services

import (
	"context"
	"errors"

	"github.com/LegendsFan/legendsfan_backend/internal/apperrors"
	"github.com/LegendsFan/legendsfan_backend/internal/config"
	"github.com/LegendsFan/legendsfan_backend/internal/models"
	"github.com/LegendsFan/legendsfan_backend/internal/repository"
	"github.com/LegendsFan/legendsfan_backend/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

// AuthService 認証に関するサービスインターフェース
type AuthService interface {
	Register(email, password string) (*models.User, error)
	Login(email, password string) (string, error)
	GoogleLogin(ctx context.Context, googleToken string) (string, bool, error)
	GetUserFromToken(tokenString string) (*models.User, error)
	Profile(userID uint) (*models.User, error)
	UpdateProfile(userID uint, email string) (*models.User, error)
}

// authService AuthServiceの実装
type authService struct {
	userRepo     repository.UserRepository
	tokenManager *utils.TokenManager
	config       *config.Config
}

// NewAuthService AuthServiceを作成
func NewAuthService(userRepo repository.UserRepository, tokenManager *utils.TokenManager, cfg *config.Config) AuthService {
	return &authService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		config:       cfg,
	}
}

// Register ユーザー登録
func (s *authService) Register(email, password string) (*models.User, error) {
	if email == "" {
		return nil, apperrors.NewBadRequest("Email is required")
	}
	if password == "" {
		return nil, apperrors.NewBadRequest("Password is required")
	}

	// パスワードをハッシュ化
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 新しいユーザーを作成
	// メールアドレスの重複はDBのユニーク制約で検出され、エラーレイヤーで400に変換される
	user := &models.User{
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login ログイン
// 存在しないメールアドレスとパスワード誤りは同一メッセージで区別不能にする
func (s *authService) Login(email, password string) (string, error) {
	if email == "" {
		return "", apperrors.NewBadRequest("Email is required")
	}
	if password == "" {
		return "", apperrors.NewBadRequest("Password is required")
	}

	// ユーザーを検索
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", apperrors.NewUnauthorized("Invalid email or password")
	}

	// パスワードを検証
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.NewUnauthorized("Invalid email or password")
	}

	// JWTトークンを生成
	return s.tokenManager.Generate(user.ID)
}

// GoogleLogin GoogleのIDトークンを検証してログインまたは登録する
// 戻り値のboolは新規作成されたかどうか
func (s *authService) GoogleLogin(ctx context.Context, googleToken string) (string, bool, error) {
	payload, err := idtoken.Validate(ctx, googleToken, s.config.Auth.GoogleClientID)
	if err != nil {
		return "", false, err
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return "", false, errors.New("GoogleのIDトークンにメールアドレスが含まれていません")
	}

	// メールアドレスで検索し、存在しない場合はランダムなパスワードで作成
	created := false
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, err
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if err != nil {
			return "", false, err
		}
		user = &models.User{
			Email:    email,
			Password: string(hashedPassword),
		}
		if err := s.userRepo.Create(user); err != nil {
			return "", false, err
		}
		created = true
	}

	token, err := s.tokenManager.Generate(user.ID)
	if err != nil {
		return "", false, err
	}
	return token, created, nil
}

// GetUserFromToken トークンからユーザーを取得
// トークンは有効だがユーザーが存在しない場合も、不正トークンと同じメッセージを返す
func (s *authService) GetUserFromToken(tokenString string) (*models.User, error) {
	claims, err := s.tokenManager.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apperrors.NewUnauthorized("Invalid token")
	}

	return user, nil
}

// Profile ユーザーのプロフィールを取得
func (s *authService) Profile(userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.NewNotFound("User not found")
	}
	return user, nil
}

// UpdateProfile プロフィールを更新（メールアドレスのみ変更可能）
func (s *authService) UpdateProfile(userID uint, email string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.NewNotFound("User not found")
	}

	if email != "" {
		user.Email = email
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}
