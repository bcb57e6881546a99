package repository

import (
	"github.com/LegendsFan/legendsfan_backend/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository お気に入りに関するデータベース操作を行うインターフェース
type FavoriteRepository interface {
	Create(favorite *models.Favorite) error
	List() ([]models.Favorite, error)
	FindByID(id uint) (*models.Favorite, error)
	Update(favorite *models.Favorite) error
	Delete(id uint) error
}

// favoriteRepository FavoriteRepositoryの実装
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository FavoriteRepositoryを作成
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create 新しいお気に入りを作成
// 同一ユーザー・同一ヒーローの重複登録は許容する（次数制約なし）
func (r *favoriteRepository) Create(favorite *models.Favorite) error {
	return r.db.Create(favorite).Error
}

// List お気に入り一覧を取得
func (r *favoriteRepository) List() ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.db.Order("id ASC").Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

// FindByID IDでお気に入りを検索
func (r *favoriteRepository) FindByID(id uint) (*models.Favorite, error) {
	var favorite models.Favorite
	if err := r.db.First(&favorite, id).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

// Update お気に入りを更新
func (r *favoriteRepository) Update(favorite *models.Favorite) error {
	return r.db.Save(favorite).Error
}

// Delete お気に入りを削除
func (r *favoriteRepository) Delete(id uint) error {
	return r.db.Delete(&models.Favorite{}, id).Error
}
