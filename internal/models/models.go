package models

import (
	"time"
)

// User ユーザーモデル
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// リレーション
	Favorites []Favorite `json:"-" gorm:"foreignKey:UserID"`
}

// Hero ヒーローカタログモデル
// JSONのキー名は上流APIのワイヤーフォーマットに合わせる
type Hero struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	HeroName      string    `json:"hero_name" gorm:"uniqueIndex;not null"`
	HeroAvatar    string    `json:"hero_avatar" gorm:"not null"`
	HeroRole      string    `json:"hero_role" gorm:"not null"`
	HeroSpecially string    `json:"hero_specially" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// リレーション
	Favorites []Favorite `json:"-" gorm:"foreignKey:HeroID"`
}

// Favorite お気に入りモデル
// ヒーロー情報は登録時点のスナップショットとして非正規化コピーを保持する
type Favorite struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	HeroName      string    `json:"hero_name" gorm:"not null"`
	HeroAvatar    string    `json:"hero_avatar" gorm:"not null"`
	HeroRole      string    `json:"hero_role" gorm:"not null"`
	HeroSpecially string    `json:"hero_specially" gorm:"not null"`
	UserID        uint      `json:"UserId" gorm:"not null"`
	HeroID        uint      `json:"HeroId" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// リレーション
	User *User `json:"-" gorm:"foreignKey:UserID"`
	Hero *Hero `json:"-" gorm:"foreignKey:HeroID"`
}
