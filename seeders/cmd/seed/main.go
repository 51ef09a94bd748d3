package main

import (
	"context"
	"log"
	"os"

	"employee-portal/pkg/config"
	"employee-portal/pkg/database/postgresql"
	applogger "employee-portal/pkg/logger"
	"employee-portal/seeders"

	"github.com/spf13/cobra"
)

func main() {
	var username, password string

	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Наполнение БД портала",
	}

	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Создать пользователя портала или сменить ему пароль",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
			defer logger.Sync()

			ctx := context.Background()
			pool, err := postgresql.NewPool(ctx, cfg.Postgres.DSN)
			if err != nil {
				return err
			}
			defer pool.Close()

			_, err = seeders.SeedAppUser(ctx, postgresql.NewProvider(pool), username, password, logger)
			return err
		},
	}
	userCmd.Flags().StringVarP(&username, "username", "u", "admin", "имя пользователя")
	userCmd.Flags().StringVarP(&password, "password", "p", "", "пароль (обязателен)")
	_ = userCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(userCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Println("❌", err)
		os.Exit(1)
	}
}
