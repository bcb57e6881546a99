package repository

import (
	"errors"
	"strings"

	"github.com/LegendsFan/legendsfan_backend/internal/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// HeroRepository ヒーローカタログに関するデータベース操作を行うインターフェース
type HeroRepository interface {
	FindOrCreate(hero *models.Hero) (*models.Hero, error)
	FindByID(id uint) (*models.Hero, error)
	List() ([]models.Hero, error)
	Update(hero *models.Hero) error
	Delete(id uint) error
}

// heroRepository HeroRepositoryの実装
type heroRepository struct {
	db *gorm.DB
}

// NewHeroRepository HeroRepositoryを作成
func NewHeroRepository(db *gorm.DB) HeroRepository {
	return &heroRepository{db: db}
}

// FindOrCreate ヒーロー名をキーに検索し、存在しない場合のみ作成する
// 同名ヒーローの同時作成はユニーク制約に当たるため、重複キーエラー時は再検索にフォールバックする
func (r *heroRepository) FindOrCreate(hero *models.Hero) (*models.Hero, error) {
	name := strings.TrimSpace(hero.HeroName)
	if name == "" {
		return nil, errors.New("ヒーロー名は空にできません")
	}

	var existing models.Hero
	err := r.db.Where("hero_name = ?", name).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hero.HeroName = name
	if err := r.db.Create(hero).Error; err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			// 同時リクエストが先に作成した場合
			if err2 := r.db.Where("hero_name = ?", name).First(&existing).Error; err2 == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return hero, nil
}

// FindByID IDでヒーローを検索
func (r *heroRepository) FindByID(id uint) (*models.Hero, error) {
	var hero models.Hero
	if err := r.db.First(&hero, id).Error; err != nil {
		return nil, err
	}
	return &hero, nil
}

// List ヒーロー一覧を取得
func (r *heroRepository) List() ([]models.Hero, error) {
	var heroes []models.Hero
	if err := r.db.Order("hero_name ASC").Find(&heroes).Error; err != nil {
		return nil, err
	}
	return heroes, nil
}

// Update ヒーロー情報を更新
func (r *heroRepository) Update(hero *models.Hero) error {
	return r.db.Save(hero).Error
}

// Delete ヒーローを削除
// 依存するお気に入りは非正規化コピーを持つためカスケード削除しない
func (r *heroRepository) Delete(id uint) error {
	return r.db.Delete(&models.Hero{}, id).Error
}
