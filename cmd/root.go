package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"db-standard/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrValidationFailed is returned by --strict runs that found issues.
var ErrValidationFailed = errors.New("validation failed")

var (
	cfgFile  string
	dataDir  string
	logLevel string
	jsonOut  bool

	// Store is the data directory opened by the root command.
	Store  *store.Store
	logger *slog.Logger
)

var RootCmd = &cobra.Command{
	Use:   "db-standard",
	Short: "Naming standard and design definition consistency checker",
	Long: `
  ____  ____    ____ _____ ____  
 |  _ \| __ )  / ___|_   _|  _ \ 
 | | | |  _ \  \___ \ | | | | | |
 | |_| | |_) |  ___) || | | |_| |
 |____/|____/  |____/ |_| |____/ 

DB STANDARD - 단어집/도메인/용어 검증과 설계 정의서 정합성 점검
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(viper.GetString("log.level"))
		slog.SetDefault(logger)

		dir := viper.GetString("data.dir")
		if dir == "" {
			return fmt.Errorf("data.dir is required (via flag, config or DBSTD_DATA_DIR)")
		}
		Store = store.New(dir, logger)

		// data.files.<type>: 데이터 타입별 파일명 재정의
		for typ, name := range viper.GetStringMapString("data.files") {
			if err := Store.SetFilename(typ, name); err != nil {
				return fmt.Errorf("invalid data.files.%s: %w", typ, err)
			}
		}
		logger.Debug("Data directory ready", slog.String("dir", dir))
		return nil
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./db-standard.yaml)")
	RootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the JSON data files")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print results as JSON")

	viper.BindPFlag("data.dir", RootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level"))

	viper.SetDefault("data.dir", "./data")
	viper.SetDefault("log.level", "info")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. 실행 파일 디렉터리
		if ex, err := os.Executable(); err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}
		// 2. 현재 디렉터리
		viper.AddConfigPath(".")

		viper.SetConfigName("db-standard")
		viper.SetConfigType("yaml")
	}

	// DBSTD_DATA_DIR, DBSTD_LOG_LEVEL ...
	viper.SetEnvPrefix("DBSTD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newLogger(level string) *slog.Logger {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		lv = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv}))
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
