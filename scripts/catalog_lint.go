// 目录数据体检脚本
//
// 对本地目录数据目录跑一遍完整水合，报告悬空引用和汇总统计。
// 发布新目录数据前手动执行一次。
//
// 用法: go run scripts/catalog_lint.go [数据目录]

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/NLarchive/ai-learning-roadmap/internal/config"
	"github.com/NLarchive/ai-learning-roadmap/internal/repository"
	"github.com/NLarchive/ai-learning-roadmap/internal/service"
	"github.com/NLarchive/ai-learning-roadmap/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	dir := ""
	if len(os.Args) > 1 {
		dir = os.Args[1]
	} else {
		data, err := os.ReadFile("configs/config.yaml")
		if err != nil {
			log.Fatalf("无法读取配置文件: %v", err)
		}
		var fileCfg struct {
			Catalog struct {
				LocalPath string `yaml:"local_path"`
			} `yaml:"catalog"`
		}
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			log.Fatalf("解析配置文件失败: %v", err)
		}
		dir = fileCfg.Catalog.LocalPath
	}
	if dir == "" {
		log.Fatal("未指定数据目录（参数或 catalog.local_path）")
	}

	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	logger.InitLogger(cfg)

	source := &repository.LocalCatalogSource{Dir: dir}
	catalog := service.NewCatalogService(source, cfg, nil)
	hydration := service.NewHydrationService(catalog)

	ctx := context.Background()

	coursesFile, err := catalog.LoadCourses(ctx)
	if err != nil {
		log.Fatalf("课程文件加载失败: %v", err)
	}
	rawPaths, err := catalog.LoadCareerPaths(ctx)
	if err != nil {
		log.Fatalf("路径文件加载失败: %v", err)
	}

	known := make(map[string]bool, len(coursesFile.Courses))
	for _, c := range coursesFile.Courses {
		known[c.ID] = true
	}

	// 水合前先点名：报告会被静默丢弃的悬空引用
	dangling := 0
	for pathID, raw := range rawPaths {
		for _, stage := range raw.Stages {
			for _, ref := range stage.Courses {
				if !known[string(ref)] {
					fmt.Printf("悬空引用: 路径 %s / 阶段 %q -> 课程 %q\n", pathID, stage.Name, string(ref))
					dangling++
				}
			}
		}
		for _, ref := range raw.Courses {
			if !known[string(ref)] {
				fmt.Printf("悬空引用: 路径 %s（旧版扁平列表）-> 课程 %q\n", pathID, string(ref))
				dangling++
			}
		}
	}
	for _, c := range coursesFile.Courses {
		for _, id := range c.Prerequisites {
			if !known[id] {
				fmt.Printf("悬空引用: 课程 %s 前置 -> %q\n", c.ID, id)
				dangling++
			}
		}
		for _, id := range c.Next {
			if !known[id] {
				fmt.Printf("悬空引用: 课程 %s 后继 -> %q\n", c.ID, id)
				dangling++
			}
		}
	}

	bundle, err := hydration.Bundle(ctx)
	if err != nil {
		log.Fatalf("水合失败: %v", err)
	}

	fmt.Println("---")
	fmt.Printf("课程总数: %d，总时长: %.1f 小时\n", bundle.Stats.TotalCourses, bundle.Stats.TotalHours)
	fmt.Printf("难度分布: 入门 %d / 进阶 %d / 高级 %d\n",
		bundle.Stats.ByDifficulty.Beginner,
		bundle.Stats.ByDifficulty.Intermediate,
		bundle.Stats.ByDifficulty.Advanced)
	fmt.Printf("职业路径: %d 条，分类: %d 个，站外资源: %d 条\n",
		len(bundle.Paths), len(bundle.Categories), len(bundle.ExternalResources))
	fmt.Printf("悬空引用: %d 处（水合时会被静默丢弃）\n", dangling)

	if dangling > 0 {
		os.Exit(1)
	}
}
