package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"coursehub/internal/auth"
	"coursehub/internal/cache"
	"coursehub/internal/config"
	"coursehub/internal/db"
	"coursehub/internal/logger"
	"coursehub/internal/repository"
	"coursehub/internal/seed"
	"coursehub/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		file  string
		reset bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo users and courses into the database",
		Long: "Creates every user from the seed file whose email address is not taken yet, " +
			"then the courses owned by those users. Without --file the bundled dataset is used.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), file, reset)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to a JSON seed file")
	cmd.Flags().BoolVar(&reset, "reset", false, "drop and recreate the tables before seeding")
	return cmd
}

func run(ctx context.Context, file string, reset bool) error {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFile)
	defer func() { _ = log.Sync() }()

	data, err := loadData(file)
	if err != nil {
		return err
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		return err
	}
	log.Info("connected to database", zap.String("driver", cfg.DBDriver))

	if err := db.Migrate(gormDB, reset || cfg.ResetDB); err != nil {
		return err
	}
	log.Info("database migrations completed", zap.Bool("reset", reset || cfg.ResetDB))

	// new courses must evict the list a running server may have cached
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	seeder := seed.New(
		service.NewUserService(repository.NewUserRepository(gormDB), hasher),
		service.NewCourseService(repository.NewCourseRepository(gormDB), cacheClient, cfg.CacheTTL),
		log,
	)

	res, err := seeder.Run(ctx, data)
	if err != nil {
		return err
	}

	log.Info("seed completed",
		zap.Int("users_created", res.UsersCreated),
		zap.Int("users_skipped", res.UsersSkipped),
		zap.Int("courses_created", res.CoursesCreated),
		zap.Int("courses_skipped", res.CoursesSkipped),
	)
	return nil
}

func loadData(file string) (*seed.Data, error) {
	if file == "" {
		return seed.Default()
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return seed.Parse(raw)
}
