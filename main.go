// @title AI Learning Roadmap 目录 API
// @version 1.0
// @description 课程目录可视化站点的数据服务：抓取静态目录 JSON，水合成渲染就绪的数据包并缓存。

// @contact.name API支持

// @license.name MIT

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/NLarchive/ai-learning-roadmap/internal/app"
	"github.com/NLarchive/ai-learning-roadmap/internal/config"
	"github.com/NLarchive/ai-learning-roadmap/pkg/configwatcher"
	"github.com/NLarchive/ai-learning-roadmap/pkg/logger"
)

func main() {
	// 命令行参数
	warm := flag.Bool("warm", false, "启动时预热课程目录缓存")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.WarmCache = *warm

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 配置热更新：目录源变了就清缓存
	go configwatcher.WatchConfig(filepath.Join("configs", "config.yaml"), func(newCfg *config.Config) {
		application.OnConfigReload(newCfg)
	})

	application.Run()
}
