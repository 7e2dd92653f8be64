package cmd

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hallworks/ms-go-hall/config"
	"github.com/hallworks/ms-go-hall/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Run: func(_ *cobra.Command, _ []string) {
		runMigration(func(conn *sql.DB) error { return goose.Up(conn, "migrations") })
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	Run: func(_ *cobra.Command, _ []string) {
		runMigration(func(conn *sql.DB) error { return goose.Down(conn, "migrations") })
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print migration status",
	Run: func(_ *cobra.Command, _ []string) {
		runMigration(func(conn *sql.DB) error { return goose.Status(conn, "migrations") })
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func runMigration(fn func(conn *sql.DB) error) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	conn, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}()

	goose.SetBaseFS(db.Migrations)
	if err := goose.SetDialect("mysql"); err != nil {
		logrus.WithError(err).Fatal("Failed to set migration dialect")
	}

	if err := fn(conn); err != nil {
		logrus.WithError(err).Fatal("Migration failed")
	}
}
