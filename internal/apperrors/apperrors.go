package apperrors

import (
	"net/http"
)

// Error HTTPステータスコード付きのアプリケーションエラー
// コントローラーやサービスはこの型でエラーを返し、
// エラーマッピングミドルウェアが一括してレスポンスに変換する
type Error struct {
	Status  int
	Message string
}

// Error errorインターフェースを実装
func (e *Error) Error() string {
	return e.Message
}

// NewBadRequest 400エラーを作成
func NewBadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// NewUnauthorized 401エラーを作成
func NewUnauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// NewForbidden 403エラーを作成
func NewForbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

// NewNotFound 404エラーを作成
func NewNotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// NewServiceUnavailable 503エラーを作成（上流APIへのネットワークレベルの失敗）
func NewServiceUnavailable(message string) *Error {
	return &Error{Status: http.StatusServiceUnavailable, Message: message}
}

// NewWithStatus 任意のステータスコードでエラーを作成（上流APIのステータスをそのまま伝搬する場合など）
func NewWithStatus(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}
