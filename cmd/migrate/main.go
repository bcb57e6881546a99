package main

import (
	"fmt"
	"log"
	"os"

	"github.com/LegendsFan/legendsfan_backend/internal/config"
	"github.com/LegendsFan/legendsfan_backend/internal/mock"
	"github.com/LegendsFan/legendsfan_backend/internal/models"
	"github.com/LegendsFan/legendsfan_backend/internal/repository"
)

func main() {
	// 引数をチェック
	if len(os.Args) < 2 {
		log.Fatal("使用方法: migrate [up|down|seed]")
	}

	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// データベース接続
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("データベース接続に失敗しました: %v", err)
	}

	command := os.Args[1]

	switch command {
	case "up":
		// マイグレーションを実行
		err = db.AutoMigrate(
			&models.User{},
			&models.Hero{},
			&models.Favorite{},
		)
		if err != nil {
			log.Fatalf("マイグレーションに失敗しました: %v", err)
		}
		fmt.Println("マイグレーションが成功しました")

	case "down":
		// テーブルを削除（逆順）
		err = db.Migrator().DropTable(
			&models.Favorite{},
			&models.Hero{},
			&models.User{},
		)
		if err != nil {
			log.Fatalf("テーブルの削除に失敗しました: %v", err)
		}
		fmt.Println("テーブルを削除しました")

	case "seed":
		// すでにシード済みの場合はスキップ
		heroRepo := repository.NewHeroRepository(db)
		heroes, err := heroRepo.List()
		if err != nil {
			log.Fatalf("ヒーロー一覧の取得に失敗しました: %v", err)
		}
		if len(heroes) > 0 {
			fmt.Println("シードデータはすでに投入されています")
			return
		}

		if err := db.Create(&mock.Users).Error; err != nil {
			log.Fatalf("ユーザーのシードに失敗しました: %v", err)
		}
		if err := db.Create(&mock.Heroes).Error; err != nil {
			log.Fatalf("ヒーローのシードに失敗しました: %v", err)
		}
		if err := db.Create(&mock.Favorites).Error; err != nil {
			log.Fatalf("お気に入りのシードに失敗しました: %v", err)
		}
		fmt.Println("シードデータを投入しました")

	default:
		log.Fatalf("不明なコマンド: %s", command)
	}
}
