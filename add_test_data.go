//go:build ignore
// +build ignore

// Helper script to fill the configured database with sample tasks around today
// Run with: go run add_test_data.go

package main

import (
	"context"
	"log"
	"time"

	"github.com/thenoetrevino/myday/internal/app"
	"github.com/thenoetrevino/myday/internal/config"
	"github.com/thenoetrevino/myday/internal/database"
	"github.com/thenoetrevino/myday/internal/models"
	taskservice "github.com/thenoetrevino/myday/internal/services/task"
)

type sample struct {
	offset   int // days from today
	content  string
	tag      string
	priority int
	status   models.Status
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	a := app.New(db)
	today := a.Now()

	samples := []sample{
		{-3, "周报", "工作", 3, models.StatusDone},
		{-1, "体检预约", "健康", 2, models.StatusDone},
		{0, "修复登录问题", "工作", 5, models.StatusInProgress},
		{0, "买牛奶", "生活", 1, models.StatusTodo},
		{0, "读完第三章", "学习", 2, models.StatusTodo},
		{1, "跑步 5 公里", "健康", 0, models.StatusTodo},
		{2, "季度规划", "工作", 4, models.StatusOnHold},
		{7, "给房东交租", "生活", 3, models.StatusTodo},
	}

	for _, s := range samples {
		date := today.AddDate(0, 0, s.offset).Format(time.DateOnly)
		task, err := a.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
			Date:     date,
			Content:  s.content,
			Status:   s.status,
			Tag:      s.tag,
			Priority: s.priority,
		})
		if err != nil {
			log.Printf("Error creating task '%s': %v", s.content, err)
			continue
		}
		log.Printf("Created task #%d: %s (%s)", task.ID, s.content, date)
	}

	log.Println("Test data added successfully!")
}
