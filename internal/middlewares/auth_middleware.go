package middlewares

import (
	"strings"

	"github.com/LegendsFan/legendsfan_backend/internal/apperrors"
	"github.com/LegendsFan/legendsfan_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 認証ミドルウェア
// ヘッダー欠落・形式不正・トークン不正・ユーザー消失のいずれも
// 同一メッセージ "Invalid token" で401を返し、失敗原因を区別できないようにする
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// Authorizationヘッダーを取得
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			_ = ctx.Error(apperrors.NewUnauthorized("Invalid token"))
			ctx.Abort()
			return
		}

		// Bearer トークンの形式かチェック
		if !strings.HasPrefix(authHeader, "Bearer ") {
			_ = ctx.Error(apperrors.NewUnauthorized("Invalid token"))
			ctx.Abort()
			return
		}

		// トークンを抽出
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			_ = ctx.Error(apperrors.NewUnauthorized("Invalid token"))
			ctx.Abort()
			return
		}

		// ユーザーを取得（トークン検証エラーはエラーレイヤーで401に変換される）
		user, err := authService.GetUserFromToken(tokenString)
		if err != nil {
			_ = ctx.Error(err)
			ctx.Abort()
			return
		}

		// ユーザーをコンテキストに保存
		ctx.Set("user", user)
		ctx.Next()
	}
}

// OptionalAuthMiddleware オプショナル認証ミドルウェア（認証がない場合もエラーを返さない）
func OptionalAuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// Authorizationヘッダーを取得
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			ctx.Next()
			return
		}

		// Bearer トークンの形式かチェック
		if !strings.HasPrefix(authHeader, "Bearer ") {
			ctx.Next()
			return
		}

		// トークンを抽出
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// ユーザーを取得
		user, err := authService.GetUserFromToken(tokenString)
		if err != nil {
			ctx.Next()
			return
		}

		// ユーザーをコンテキストに保存
		ctx.Set("user", user)
		ctx.Next()
	}
}
