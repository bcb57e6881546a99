package mock

import (
	"github.com/LegendsFan/legendsfan_backend/internal/models"
)

// Users シード用ユーザー
// 先頭はゲストユーザー（未認証のお気に入り追加の受け皿）
var Users = []models.User{
	{
		ID:       1,
		Email:    "guest@legendsfan.local",
		Password: "$2a$10$eDxe8U2bkJFVt1C1vfVJJePg8GVyp5eZZP/EaQ/2e8LqNUvpBtqOW", // "password"
	},
	{
		ID:       2,
		Email:    "demo@legendsfan.local",
		Password: "$2a$10$eDxe8U2bkJFVt1C1vfVJJePg8GVyp5eZZP/EaQ/2e8LqNUvpBtqOW", // "password"
	},
}

// Heroes シード用ヒーローカタログ（上流APIのスナップショット）
var Heroes = []models.Hero{
	{
		ID:            1,
		HeroName:      "Alucard",
		HeroAvatar:    "https://static.dazelpro.com/mobile-legends/hero/alucard.png",
		HeroRole:      "Fighter",
		HeroSpecially: "Chase/Damage",
	},
	{
		ID:            2,
		HeroName:      "Miya",
		HeroAvatar:    "https://static.dazelpro.com/mobile-legends/hero/miya.png",
		HeroRole:      "Marksman",
		HeroSpecially: "Reap/Damage",
	},
	{
		ID:            3,
		HeroName:      "Gusion",
		HeroAvatar:    "https://static.dazelpro.com/mobile-legends/hero/gusion.png",
		HeroRole:      "Assassin",
		HeroSpecially: "Burst/Magic Damage",
	},
	{
		ID:            4,
		HeroName:      "Tigreal",
		HeroAvatar:    "https://static.dazelpro.com/mobile-legends/hero/tigreal.png",
		HeroRole:      "Tank",
		HeroSpecially: "Crowd Control/Initiator",
	},
	{
		ID:            5,
		HeroName:      "Estes",
		HeroAvatar:    "https://static.dazelpro.com/mobile-legends/hero/estes.png",
		HeroRole:      "Support",
		HeroSpecially: "Regen/Guard",
	},
}

// Favorites シード用お気に入り
var Favorites = []models.Favorite{
	{
		ID:            1,
		HeroName:      Heroes[0].HeroName,
		HeroAvatar:    Heroes[0].HeroAvatar,
		HeroRole:      Heroes[0].HeroRole,
		HeroSpecially: Heroes[0].HeroSpecially,
		UserID:        2,
		HeroID:        1,
	},
	{
		ID:            2,
		HeroName:      Heroes[2].HeroName,
		HeroAvatar:    Heroes[2].HeroAvatar,
		HeroRole:      Heroes[2].HeroRole,
		HeroSpecially: Heroes[2].HeroSpecially,
		UserID:        2,
		HeroID:        3,
	},
}
