// @title Study Tracker API
// @version 1.0
// @description 个人学习进度追踪后端服务。

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /

package main

import (
	"flag"
	"log"
	"path/filepath"
	"study_tracker_backend/internal/app"
	"study_tracker_backend/internal/config"
	"study_tracker_backend/pkg/configwatcher"
	"study_tracker_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	seedOnStart := flag.Bool("seed", false, "启动时为空表导入示例数据")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 设置运行时标志
	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly
	cfg.SeedOnStart = *seedOnStart

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	stop := make(chan struct{})
	defer close(stop)
	configFile := filepath.Join(*configDir, "config.yaml")
	if err := configwatcher.WatchConfig(configFile, time.Second, application.ApplyConfig, stop); err != nil {
		logger.Log.Warn("Config hot reload disabled", zap.Error(err))
	}

	application.Run()
}
