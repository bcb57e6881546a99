package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/LegendsFan/legendsfan_backend/internal/config"
	"github.com/LegendsFan/legendsfan_backend/internal/middlewares"
	"github.com/LegendsFan/legendsfan_backend/internal/models"
	"github.com/LegendsFan/legendsfan_backend/internal/repository"
	"github.com/LegendsFan/legendsfan_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memHeroRepo テスト用のインメモリHeroRepository
type memHeroRepo struct {
	heroes map[uint]*models.Hero
	nextID uint
}

func newMemHeroRepo() *memHeroRepo {
	return &memHeroRepo{heroes: map[uint]*models.Hero{}, nextID: 1}
}

func (m *memHeroRepo) FindOrCreate(hero *models.Hero) (*models.Hero, error) {
	name := strings.TrimSpace(hero.HeroName)
	for _, h := range m.heroes {
		if h.HeroName == name {
			return h, nil
		}
	}
	hero.HeroName = name
	hero.ID = m.nextID
	m.nextID++
	m.heroes[hero.ID] = hero
	return hero, nil
}

func (m *memHeroRepo) FindByID(id uint) (*models.Hero, error) {
	hero, ok := m.heroes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return hero, nil
}

func (m *memHeroRepo) List() ([]models.Hero, error) {
	var heroes []models.Hero
	for _, h := range m.heroes {
		heroes = append(heroes, *h)
	}
	return heroes, nil
}

func (m *memHeroRepo) Update(hero *models.Hero) error {
	m.heroes[hero.ID] = hero
	return nil
}

func (m *memHeroRepo) Delete(id uint) error {
	delete(m.heroes, id)
	return nil
}

// memFavoriteRepo テスト用のインメモリFavoriteRepository
type memFavoriteRepo struct {
	favorites map[uint]*models.Favorite
	nextID    uint
}

func newMemFavoriteRepo() *memFavoriteRepo {
	return &memFavoriteRepo{favorites: map[uint]*models.Favorite{}, nextID: 1}
}

func (m *memFavoriteRepo) Create(favorite *models.Favorite) error {
	favorite.ID = m.nextID
	m.nextID++
	m.favorites[favorite.ID] = favorite
	return nil
}

func (m *memFavoriteRepo) List() ([]models.Favorite, error) {
	var favorites []models.Favorite
	for id := uint(1); id < m.nextID; id++ {
		if fav, ok := m.favorites[id]; ok {
			favorites = append(favorites, *fav)
		}
	}
	return favorites, nil
}

func (m *memFavoriteRepo) FindByID(id uint) (*models.Favorite, error) {
	favorite, ok := m.favorites[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return favorite, nil
}

func (m *memFavoriteRepo) Update(favorite *models.Favorite) error {
	m.favorites[favorite.ID] = favorite
	return nil
}

func (m *memFavoriteRepo) Delete(id uint) error {
	delete(m.favorites, id)
	return nil
}

var (
	_ repository.HeroRepository     = (*memHeroRepo)(nil)
	_ repository.FavoriteRepository = (*memFavoriteRepo)(nil)
)

// newFlowTestRouter お気に入りフロー用のルーターをインメモリリポジトリで組み立てる
func newFlowTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:   "test-secret",
			TokenExpiry: time.Hour,
			GuestUserID: 1,
		},
		Catalog: config.CatalogConfig{BaseURL: "http://unused", Timeout: time.Second},
	}

	heroRepo := newMemHeroRepo()
	favoriteRepo := newMemFavoriteRepo()

	heroService := services.NewHeroService(heroRepo, favoriteRepo, cfg)
	favoriteService := services.NewFavoriteService(favoriteRepo)

	heroController := NewHeroController(heroService, cfg.Auth.GuestUserID)
	favoriteController := NewFavoriteController(favoriteService)

	r := gin.New()
	r.Use(middlewares.ErrorMiddleware())
	r.POST("/hero", heroController.Add)
	r.PUT("/hero/:id", heroController.Update)
	r.DELETE("/hero/:id", heroController.Delete)
	r.GET("/favorite", favoriteController.List)
	r.PUT("/favorite/:id", favoriteController.Update)
	r.DELETE("/favorite/:id", favoriteController.Delete)
	return r
}

const heroBody = `{"hero_name":"Alucard","hero_avatar":"https://example.com/alucard.png","hero_role":"Fighter","hero_specially":"Chase"}`

// お気に入りを追加した後の一覧に、送信したフィールドがそのまま含まれることを確認する
func TestFavoriteFlow_AddThenList(t *testing.T) {
	r := newFlowTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/hero", strings.NewReader(heroBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Message string `json:"message"`
		Hero    struct {
			ID     uint `json:"id"`
			UserID uint `json:"UserId"`
			HeroID uint `json:"HeroId"`
		} `json:"hero"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.Hero.UserID)
	assert.NotZero(t, created.Hero.HeroID)

	// 一覧に非正規化コピーがそのまま現れる
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/favorite", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var favorites []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &favorites))
	require.Len(t, favorites, 1)
	assert.Equal(t, "Alucard", favorites[0]["hero_name"])
	assert.Equal(t, "https://example.com/alucard.png", favorites[0]["hero_avatar"])
	assert.Equal(t, "Fighter", favorites[0]["hero_role"])
	assert.Equal(t, "Chase", favorites[0]["hero_specially"])
}

func TestFavoriteFlow_AddValidation(t *testing.T) {
	r := newFlowTestRouter()

	// ボディなし
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/hero", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// フィールド欠落
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/hero", strings.NewReader(`{"hero_name":"Alucard"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "Missing")
	assert.Contains(t, resp.Message, "hero_avatar")
	assert.Contains(t, resp.Message, "hero_role")
	assert.Contains(t, resp.Message, "hero_specially")
}

func TestHeroUpdate_NotFound(t *testing.T) {
	r := newFlowTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/hero/999", strings.NewReader(`{"hero_role":"Mage"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Hero not found"}`, w.Body.String())
}

func TestHeroDelete_ReturnsSnapshot(t *testing.T) {
	r := newFlowTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/hero", strings.NewReader(heroBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/hero/1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Message     string      `json:"message"`
		DeletedHero models.Hero `json:"deletedHero"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alucard", resp.DeletedHero.HeroName)

	// ヒーロー削除後もお気に入りは残る（カスケード削除しない）
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/favorite", nil)
	r.ServeHTTP(w, req)
	var favorites []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &favorites))
	assert.Len(t, favorites, 1)
}

// 存在しないお気に入りの削除は500になることを確認する（元システムの挙動を踏襲）
func TestFavoriteDelete_MissingRow(t *testing.T) {
	r := newFlowTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/favorite/999", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, w.Body.String())
}

func TestFavoriteUpdate_Permissive(t *testing.T) {
	r := newFlowTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/hero", strings.NewReader(heroBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	// 一部フィールドのみの更新も検証なしで受け付ける
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/favorite/1", strings.NewReader(`{"hero_role":"Jungler"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var favorite map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &favorite))
	assert.Equal(t, "Jungler", favorite["hero_role"])
	assert.Equal(t, "Alucard", favorite["hero_name"])
}
