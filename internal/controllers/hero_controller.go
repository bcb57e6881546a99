package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/LegendsFan/legendsfan_backend/internal/apperrors"
	"github.com/LegendsFan/legendsfan_backend/internal/services"

	"github.com/gin-gonic/gin"
)

const jsonContentType = "application/json; charset=utf-8"

// HeroController ヒーローカタログに関するコントローラー
type HeroController struct {
	heroService services.HeroService
	guestUserID uint
}

// NewHeroController HeroControllerを作成
func NewHeroController(heroService services.HeroService, guestUserID uint) *HeroController {
	return &HeroController{
		heroService: heroService,
		guestUserID: guestUserID,
	}
}

// List ヒーロー一覧を取得（上流APIへのプロキシ）
func (c *HeroController) List(ctx *gin.Context) {
	body, err := c.heroService.ListHeroes(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}
	ctx.Data(http.StatusOK, jsonContentType, body)
}

// ListRoles ロール一覧を取得（上流APIへのプロキシ）
func (c *HeroController) ListRoles(ctx *gin.Context) {
	body, err := c.heroService.ListRoles(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}
	ctx.Data(http.StatusOK, jsonContentType, body)
}

// ListSpecialties スペシャリティ一覧を取得（上流APIへのプロキシ）
func (c *HeroController) ListSpecialties(ctx *gin.Context) {
	body, err := c.heroService.ListSpecialties(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}
	ctx.Data(http.StatusOK, jsonContentType, body)
}

// GetByID IDでヒーローを取得（上流APIへのプロキシ）
func (c *HeroController) GetByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		_ = ctx.Error(apperrors.NewBadRequest("Hero ID is required"))
		ctx.Abort()
		return
	}

	body, err := c.heroService.GetHeroByID(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}
	ctx.Data(http.StatusOK, jsonContentType, body)
}

// Add ヒーローをお気に入りに追加
// 認証済みの場合はそのユーザー、未認証の場合はゲストユーザーとして登録する
func (c *HeroController) Add(ctx *gin.Context) {
	var input services.AddHeroInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		if errors.Is(err, io.EOF) {
			_ = ctx.Error(apperrors.NewBadRequest("Request body is required"))
		} else {
			_ = ctx.Error(apperrors.NewBadRequest(err.Error()))
		}
		ctx.Abort()
		return
	}

	userID := c.guestUserID
	if user := currentUser(ctx); user != nil {
		userID = user.ID
	}

	favorite, err := c.heroService.AddToFavorites(userID, input)
	if err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Hero added to favorites",
		"hero":    favorite,
	})
}

// Update ローカルカタログのヒーローを部分更新
func (c *HeroController) Update(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		_ = ctx.Error(apperrors.NewBadRequest("Hero ID is required"))
		ctx.Abort()
		return
	}

	var input services.UpdateHeroInput
	if err := bindJSON(ctx, &input); err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}

	hero, err := c.heroService.UpdateHero(id, input)
	if err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Hero updated successfully",
		"hero":    hero,
	})
}

// Delete ローカルカタログからヒーローを削除
func (c *HeroController) Delete(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		_ = ctx.Error(apperrors.NewBadRequest("Hero ID is required"))
		ctx.Abort()
		return
	}

	hero, err := c.heroService.DeleteHero(id)
	if err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Hero deleted successfully",
		"deletedHero": hero,
	})
}

// parseID パスパラメータのIDをuintに変換する
func parseID(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
