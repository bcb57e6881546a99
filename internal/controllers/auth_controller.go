package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/LegendsFan/legendsfan_backend/internal/apperrors"
	"github.com/LegendsFan/legendsfan_backend/internal/models"
	"github.com/LegendsFan/legendsfan_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthController 認証に関するコントローラー
type AuthController struct {
	authService services.AuthService
}

// NewAuthController AuthControllerを作成
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// RegisterRequest ユーザー登録リクエスト
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest ログインリクエスト
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleLoginRequest Googleログインリクエスト
type GoogleLoginRequest struct {
	GoogleToken string `json:"googleToken"`
}

// UpdateProfileRequest プロフィール更新リクエスト
type UpdateProfileRequest struct {
	Email string `json:"email"`
}

// bindJSON リクエストボディをバインドする
// ボディが空の場合はゼロ値のまま続行し、必須フィールドの検証はサービス側に任せる
func bindJSON(ctx *gin.Context, obj interface{}) error {
	if err := ctx.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return apperrors.NewBadRequest(err.Error())
	}
	return nil
}

// Register ユーザー登録
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := bindJSON(ctx, &req); err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}

	user, err := c.authService.Register(req.Email, req.Password)
	if err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"email": user.Email,
	})
}

// Login ログイン
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := bindJSON(ctx, &req); err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}

	token, err := c.authService.Login(req.Email, req.Password)
	if err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"access_token": token})
}

// GoogleLogin GoogleのIDトークンでログインまたは登録
func (c *AuthController) GoogleLogin(ctx *gin.Context) {
	var req GoogleLoginRequest
	if err := bindJSON(ctx, &req); err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}

	token, created, err := c.authService.GoogleLogin(ctx.Request.Context(), req.GoogleToken)
	if err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, gin.H{"access_token": token})
}

// Profile 現在のユーザーのプロフィールを取得
func (c *AuthController) Profile(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		_ = ctx.Error(apperrors.NewUnauthorized("Invalid token"))
		ctx.Abort()
		return
	}

	profile, err := c.authService.Profile(user.ID)
	if err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":    profile.ID,
		"email": profile.Email,
	})
}

// UpdateProfile 現在のユーザーのプロフィールを更新（メールアドレスのみ）
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	user := currentUser(ctx)
	if user == nil {
		_ = ctx.Error(apperrors.NewUnauthorized("Invalid token"))
		ctx.Abort()
		return
	}

	var req UpdateProfileRequest
	if err := bindJSON(ctx, &req); err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}

	updated, err := c.authService.UpdateProfile(user.ID, req.Email)
	if err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":    updated.ID,
		"email": updated.Email,
	})
}

// currentUser コンテキストから認証済みユーザーを取得する
func currentUser(ctx *gin.Context) *models.User {
	value, exists := ctx.Get("user")
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
