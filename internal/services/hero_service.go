package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/LegendsFan/legendsfan_backend/internal/apperrors"
	"github.com/LegendsFan/legendsfan_backend/internal/config"
	"github.com/LegendsFan/legendsfan_backend/internal/models"
	"github.com/LegendsFan/legendsfan_backend/internal/repository"
)

// HeroService ヒーローカタログに関するサービスインターフェース
// 参照系は上流APIへのプロキシ、更新系はローカルカタログへの操作
type HeroService interface {
	ListHeroes(ctx context.Context) ([]byte, error)
	ListRoles(ctx context.Context) ([]byte, error)
	ListSpecialties(ctx context.Context) ([]byte, error)
	GetHeroByID(ctx context.Context, id string) ([]byte, error)
	AddToFavorites(userID uint, input AddHeroInput) (*models.Favorite, error)
	UpdateHero(id uint, input UpdateHeroInput) (*models.Hero, error)
	DeleteHero(id uint) (*models.Hero, error)
}

// AddHeroInput お気に入り追加リクエストの入力
type AddHeroInput struct {
	HeroName      string `json:"hero_name"`
	HeroAvatar    string `json:"hero_avatar"`
	HeroRole      string `json:"hero_role"`
	HeroSpecially string `json:"hero_specially"`
}

// UpdateHeroInput ヒーロー更新の入力（nilのフィールドは変更しない）
type UpdateHeroInput struct {
	HeroName      *string `json:"hero_name"`
	HeroAvatar    *string `json:"hero_avatar"`
	HeroRole      *string `json:"hero_role"`
	HeroSpecially *string `json:"hero_specially"`
}

// heroService HeroServiceの実装
type heroService struct {
	heroRepo     repository.HeroRepository
	favoriteRepo repository.FavoriteRepository
	httpClient   *http.Client
	baseURL      string
}

// NewHeroService HeroServiceを作成
func NewHeroService(heroRepo repository.HeroRepository, favoriteRepo repository.FavoriteRepository, cfg *config.Config) HeroService {
	return &heroService{
		heroRepo:     heroRepo,
		favoriteRepo: favoriteRepo,
		httpClient: &http.Client{
			Timeout: cfg.Catalog.Timeout,
		},
		baseURL: cfg.Catalog.BaseURL,
	}
}

// fetchCatalog 上流カタログAPIからJSONを取得する
// ネットワークレベルの失敗は503、HTTPエラーは上流のステータスをそのまま伝搬する
func (s *heroService) fetchCatalog(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewServiceUnavailable("Service unavailable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewServiceUnavailable("Service unavailable")
	}

	if resp.StatusCode != http.StatusOK {
		message := "API error"
		var payload struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
			message = payload.Message
		}
		return nil, apperrors.NewWithStatus(resp.StatusCode, message)
	}

	return body, nil
}

// ListHeroes ヒーロー一覧を上流APIから取得
func (s *heroService) ListHeroes(ctx context.Context) ([]byte, error) {
	return s.fetchCatalog(ctx, "/hero")
}

// ListRoles ロール一覧を上流APIから取得
func (s *heroService) ListRoles(ctx context.Context) ([]byte, error) {
	return s.fetchCatalog(ctx, "/role")
}

// ListSpecialties スペシャリティ一覧を上流APIから取得
func (s *heroService) ListSpecialties(ctx context.Context) ([]byte, error) {
	return s.fetchCatalog(ctx, "/specially")
}

// GetHeroByID IDでヒーローを上流APIから取得
func (s *heroService) GetHeroByID(ctx context.Context, id string) ([]byte, error) {
	body, err := s.fetchCatalog(ctx, "/hero/"+id)
	if err != nil {
		return nil, err
	}

	// 上流は未知のIDでも200で空配列を返すため、ここで404に変換する
	var payload struct {
		Hero []json.RawMessage `json:"hero"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	if len(payload.Hero) == 0 {
		return nil, apperrors.NewNotFound("Hero not found")
	}

	return body, nil
}

// AddToFavorites ヒーローをお気に入りに追加する
// ヒーロー名をキーにカタログ行をfind-or-createし、送信フィールドの非正規化コピーを持つ
// お気に入り行を無条件に新規作成する（重複登録は許容）
func (s *heroService) AddToFavorites(userID uint, input AddHeroInput) (*models.Favorite, error) {
	input.HeroName = strings.TrimSpace(input.HeroName)
	input.HeroAvatar = strings.TrimSpace(input.HeroAvatar)
	input.HeroRole = strings.TrimSpace(input.HeroRole)
	input.HeroSpecially = strings.TrimSpace(input.HeroSpecially)

	// 必須フィールドを検証し、欠けているフィールド名をすべて列挙する
	var missing []string
	if input.HeroName == "" {
		missing = append(missing, "hero_name")
	}
	if input.HeroAvatar == "" {
		missing = append(missing, "hero_avatar")
	}
	if input.HeroRole == "" {
		missing = append(missing, "hero_role")
	}
	if input.HeroSpecially == "" {
		missing = append(missing, "hero_specially")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewBadRequest("Missing required fields: " + strings.Join(missing, ", "))
	}

	// カタログ行をfind-or-create（既存行がある場合は既存のフィールドが優先される）
	hero, err := s.heroRepo.FindOrCreate(&models.Hero{
		HeroName:      input.HeroName,
		HeroAvatar:    input.HeroAvatar,
		HeroRole:      input.HeroRole,
		HeroSpecially: input.HeroSpecially,
	})
	if err != nil {
		return nil, err
	}

	favorite := &models.Favorite{
		HeroName:      input.HeroName,
		HeroAvatar:    input.HeroAvatar,
		HeroRole:      input.HeroRole,
		HeroSpecially: input.HeroSpecially,
		UserID:        userID,
		HeroID:        hero.ID,
	}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		return nil, err
	}

	return favorite, nil
}

// UpdateHero ローカルカタログのヒーローを部分更新する
// 指定されたフィールドのみ上書きし、省略されたフィールドは従来の値を保持する
func (s *heroService) UpdateHero(id uint, input UpdateHeroInput) (*models.Hero, error) {
	hero, err := s.heroRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Hero not found")
	}

	if input.HeroName != nil {
		hero.HeroName = *input.HeroName
	}
	if input.HeroAvatar != nil {
		hero.HeroAvatar = *input.HeroAvatar
	}
	if input.HeroRole != nil {
		hero.HeroRole = *input.HeroRole
	}
	if input.HeroSpecially != nil {
		hero.HeroSpecially = *input.HeroSpecially
	}
	if err := s.heroRepo.Update(hero); err != nil {
		return nil, err
	}

	return hero, nil
}

// DeleteHero ローカルカタログからヒーローを削除し、削除した行のスナップショットを返す
// 依存するお気に入りは非正規化コピーを持つためカスケード削除しない
func (s *heroService) DeleteHero(id uint) (*models.Hero, error) {
	hero, err := s.heroRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.NewNotFound("Hero not found")
	}

	if err := s.heroRepo.Delete(id); err != nil {
		return nil, err
	}

	return hero, nil
}
