package controllers

import (
	"fmt"
	"net/http"

	"github.com/LegendsFan/legendsfan_backend/internal/apperrors"
	"github.com/LegendsFan/legendsfan_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// FavoriteController お気に入りに関するコントローラー
type FavoriteController struct {
	favoriteService services.FavoriteService
}

// NewFavoriteController FavoriteControllerを作成
func NewFavoriteController(favoriteService services.FavoriteService) *FavoriteController {
	return &FavoriteController{
		favoriteService: favoriteService,
	}
}

// List お気に入り一覧を取得
func (c *FavoriteController) List(ctx *gin.Context) {
	favorites, err := c.favoriteService.List()
	if err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}
	ctx.JSON(http.StatusOK, favorites)
}

// Update お気に入りを編集
func (c *FavoriteController) Update(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		_ = ctx.Error(apperrors.NewBadRequest("Favorite ID is required"))
		ctx.Abort()
		return
	}

	var input services.EditFavoriteInput
	if err := bindJSON(ctx, &input); err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}

	favorite, err := c.favoriteService.Update(id, input)
	if err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusOK, favorite)
}

// Delete お気に入りを削除
func (c *FavoriteController) Delete(ctx *gin.Context) {
	id, err := parseID(ctx.Param("id"))
	if err != nil {
		_ = ctx.Error(apperrors.NewBadRequest("Favorite ID is required"))
		ctx.Abort()
		return
	}

	favorite, err := c.favoriteService.Delete(id)
	if err != nil {
		_ = ctx.Error(err)
		ctx.Abort()
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s success to delete", favorite.HeroName),
	})
}
