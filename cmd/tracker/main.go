package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/ogurasousui/employee-tracker/internal/adapters/cli"
	"github.com/ogurasousui/employee-tracker/internal/adapters/repository/postgres"
	"github.com/ogurasousui/employee-tracker/internal/core/department"
	"github.com/ogurasousui/employee-tracker/internal/core/employee"
	"github.com/ogurasousui/employee-tracker/internal/core/role"
	"github.com/ogurasousui/employee-tracker/internal/platform/config"
	pg "github.com/ogurasousui/employee-tracker/internal/platform/db/postgres"
	"github.com/ogurasousui/employee-tracker/internal/platform/logger"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults to CONFIG_PATH env)")
	flag.Parse()

	// .env が無い環境では環境変数のみを使用します。
	_ = godotenv.Load()

	cfg, err := config.Load(effectiveConfigPath(*configPath))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg := logger.WithSession(logger.New(cfg.Log, os.Stderr))
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := pg.Connect(ctx, cfg.Database)
	if err != nil {
		lg.Fatal("failed to connect to database",
			zap.String("host", cfg.Database.Host),
			zap.Int("port", cfg.Database.Port),
			zap.String("database", cfg.Database.Name),
			zap.Error(err),
		)
	}
	defer conn.Close(context.Background())

	lg.Info("connected to database", zap.String("database", cfg.Database.Name))

	app := cli.NewApp(cli.Deps{
		Departments: department.NewService(postgres.NewDepartmentRepository(conn)),
		Roles:       role.NewService(postgres.NewRoleRepository(conn)),
		Employees:   employee.NewService(postgres.NewEmployeeRepository(conn)),
		Prompter:    cli.NewSurveyPrompter(),
		Out:         os.Stdout,
		Logger:      lg,
	})

	if err := app.Run(ctx); err != nil {
		lg.Error("session ended with error", zap.Error(err))
		return
	}

	lg.Info("session ended")
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("CONFIG_PATH")
}
