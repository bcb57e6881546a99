package middlewares

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/LegendsFan/legendsfan_backend/internal/apperrors"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

// ErrorMiddleware エラーハンドリングミドルウェア
// コントローラーが ctx.Error で付加したエラーを唯一のレスポンス変換点として処理する
// パニックもここでキャッチして500に変換する
func ErrorMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				debug.PrintStack()
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"message": "Internal server error",
				})
			}
		}()

		ctx.Next()

		last := ctx.Errors.Last()
		if last == nil {
			return
		}

		status, message := mapError(last.Err)
		ctx.JSON(status, gin.H{"message": message})
	}
}

// mapError エラー値をHTTPステータスコードとメッセージに変換する
// 最初にマッチした規則が優先される全域関数
func mapError(err error) (int, string) {
	// ストアレベルのユニーク制約違反
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return http.StatusBadRequest, "Email must be unique"
	}

	// ステータスコード付きのアプリケーションエラー
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Message
	}

	// トークン検証エラー（検証時に付加されたメッセージは固定文言で上書きする）
	var jwtErr *jwt.ValidationError
	if errors.As(err, &jwtErr) {
		return http.StatusUnauthorized, "Invalid token"
	}

	return http.StatusInternalServerError, "Internal server error"
}

// CORSMiddleware CORSミドルウェア
func CORSMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		ctx.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		ctx.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		ctx.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if ctx.Request.Method == "OPTIONS" {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}
