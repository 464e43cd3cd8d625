package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hanbit-mall/csv-etl/internal/batch"
	"github.com/hanbit-mall/csv-etl/internal/config"
	"github.com/hanbit-mall/csv-etl/internal/shared/database"
	"github.com/hanbit-mall/csv-etl/internal/shared/logger"
)

func main() {
	// Parse command line flags
	env := parseFlags()

	// Initialize logger
	logger.Setup(env)
	slog.Info("배치 초기화 시작", "env", env)

	// Run the batch
	if err := run(env); err != nil {
		slog.Error("배치 실패", "error", err)
		os.Exit(1)
	}

	slog.Info("배치 종료 완료", "env", env)
}

// parseFlags parses command line arguments
func parseFlags() string {
	env := flag.String("env", "local", "Environment (local|dev|production)")
	flag.Parse()
	return *env
}

// run contains the batch lifecycle: load config, connect, run all steps in
// order, and release the connection on every exit path.
func run(env string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	slog.Info("환경 변수 로드 성공")

	// Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("데이터베이스 종료 실패", "error", err)
		}
	}()

	return batch.NewRunner(db.DB, cfg).Run(ctx)
}
