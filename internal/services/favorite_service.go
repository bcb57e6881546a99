package services

import (
	"github.com/LegendsFan/legendsfan_backend/internal/models"
	"github.com/LegendsFan/legendsfan_backend/internal/repository"
)

// FavoriteService お気に入りに関するサービスインターフェース
type FavoriteService interface {
	List() ([]models.Favorite, error)
	Update(id uint, input EditFavoriteInput) (*models.Favorite, error)
	Delete(id uint) (*models.Favorite, error)
}

// EditFavoriteInput お気に入り編集の入力
// フィールド検証は行わず、指定されたフィールドのみそのまま上書きする
type EditFavoriteInput struct {
	HeroName      *string `json:"hero_name"`
	HeroAvatar    *string `json:"hero_avatar"`
	HeroRole      *string `json:"hero_role"`
	HeroSpecially *string `json:"hero_specially"`
	UserID        *uint   `json:"UserId"`
	HeroID        *uint   `json:"HeroId"`
}

// favoriteService FavoriteServiceの実装
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
}

// NewFavoriteService FavoriteServiceを作成
func NewFavoriteService(favoriteRepo repository.FavoriteRepository) FavoriteService {
	return &favoriteService{favoriteRepo: favoriteRepo}
}

// List お気に入り一覧を取得
func (s *favoriteService) List() ([]models.Favorite, error) {
	return s.favoriteRepo.List()
}

// Update お気に入りを編集
// 存在しないIDはリポジトリのエラーがそのまま伝搬し500になる（元システムの挙動を踏襲）
func (s *favoriteService) Update(id uint, input EditFavoriteInput) (*models.Favorite, error) {
	favorite, err := s.favoriteRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.HeroName != nil {
		favorite.HeroName = *input.HeroName
	}
	if input.HeroAvatar != nil {
		favorite.HeroAvatar = *input.HeroAvatar
	}
	if input.HeroRole != nil {
		favorite.HeroRole = *input.HeroRole
	}
	if input.HeroSpecially != nil {
		favorite.HeroSpecially = *input.HeroSpecially
	}
	if input.UserID != nil {
		favorite.UserID = *input.UserID
	}
	if input.HeroID != nil {
		favorite.HeroID = *input.HeroID
	}
	if err := s.favoriteRepo.Update(favorite); err != nil {
		return nil, err
	}

	return favorite, nil
}

// Delete お気に入りを削除し、削除した行を返す
// 存在しないIDはリポジトリのエラーがそのまま伝搬し500になる（元システムの挙動を踏襲）
func (s *favoriteService) Delete(id uint) (*models.Favorite, error) {
	favorite, err := s.favoriteRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.favoriteRepo.Delete(id); err != nil {
		return nil, err
	}

	return favorite, nil
}
