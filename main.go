package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"annotation-tool/config"
	"annotation-tool/database"
	"annotation-tool/handlers"
	"annotation-tool/store"
)

var (
	configPath  string
	port        int
	dataDir     string
	staticDir   string
	journalPath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "annotation-tool",
	Short: "Local annotation server for survey statements",
	Long: `annotation-tool serves the annotation page and stores each annotator's
work in annotations_<username>.csv next to the shared template.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
		return run(cfg)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config")
	rootCmd.Flags().IntVarP(&port, "port", "p", 0, "listen port")
	rootCmd.Flags().StringVar(&dataDir, "data", "", "directory with the template and user files")
	rootCmd.Flags().StringVar(&staticDir, "static", "", "directory with the annotation page")
	rootCmd.Flags().StringVar(&journalPath, "journal", "", "sqlite file for the activity journal")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Server.Port = port
	}
	if flags.Changed("data") {
		cfg.Storage.DataDir = dataDir
	}
	if flags.Changed("static") {
		cfg.Server.StaticDir = staticDir
	}
	if flags.Changed("journal") {
		cfg.Journal.Path = journalPath
	}
}

func newLogger() (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zapConfig.Build()
}

func run(cfg *config.Config) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Хранилище файлов разметки
	s := store.New(cfg.Storage.DataDir,
		store.WithTemplateName(cfg.Storage.TemplateFile),
		store.WithLogger(logger))

	// Журнал активности (необязательный)
	var journal *database.Journal
	if cfg.Journal.Path != "" {
		journal, err = database.Open(cfg.Journal.Path)
		if err != nil {
			return err
		}
		defer journal.Close()
		logger.Info("Activity journal connected", zap.String("path", cfg.Journal.Path))
	}

	// Настройка Gin
	gin.SetMode(cfg.Server.Mode)
	r := handlers.NewRouter(handlers.New(s, journal, logger), cfg.Server.StaticDir, cfg.Server.IndexFile)

	// Запуск сервера
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("Starting annotation server",
		zap.String("addr", addr),
		zap.String("template", s.TemplatePath()))
	logger.Info(fmt.Sprintf("Open http://localhost:%d in your browser", cfg.Server.Port))

	if err := r.Run(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
