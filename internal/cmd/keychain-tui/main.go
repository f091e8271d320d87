package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/openkeychain/keychain-tui/internal/config"
	"github.com/openkeychain/keychain-tui/internal/i18n"
	"github.com/openkeychain/keychain-tui/internal/nav"
	"github.com/openkeychain/keychain-tui/internal/result"
	"github.com/openkeychain/keychain-tui/internal/store"
	"github.com/openkeychain/keychain-tui/internal/ui"
	"github.com/openkeychain/keychain-tui/internal/ui/model"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	forceFirstRun  bool
	resultPath     string
	rootCmd        = &cobra.Command{
		Use:   "keychain-tui",
		Short: "Key management TUI",
		Long:  `keychain-tui - Manage your keys, encrypt and decrypt messages and review the apps using them`,
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about keychain-tui",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")
	rootCmd.Flags().BoolVar(&forceFirstRun, "first-run", false, "Run the first time setup even if a key exists")
	rootCmd.Flags().StringVar(&resultPath, "result", "", "Path to a json operation result to announce on startup")
	rootCmd.AddCommand(versionCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("keychain-tui - Key management terminal UI\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)                 //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)                  //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)                    //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)             //nolint:forbidigo
}

// run is the main entry point of keychain-tui.
func run(cmd *cobra.Command, _ []string) error {
	// Make sure our config & data home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)
	configLoader := config.NewLoader(configUpdates, cfgFile)
	userConfig, errConfig := configLoader.Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logLevel := userConfig.Level()
	if userConfig.Debug {
		logLevel = slog.LevelDebug
	}

	logFile, errLogger := config.LoggerInit(config.DefaultLogName, logLevel)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting keychain-tui", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	// Setup the sqlite database system.
	database, errDB := store.Open(cmd.Context(), userConfig.DBPath(), true)
	if errDB != nil {
		return errors.Join(errDB, errApp)
	}

	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Error closing database", slog.String("error", err.Error()))
		}
	}()

	queries := store.New(database)

	signal, errSignal := startupSignal(cmd.Context(), queries)
	if errSignal != nil {
		return errors.Join(errSignal, errApp)
	}

	saved, errSaved := queries.LoadUIState(cmd.Context())
	if errSaved != nil {
		slog.Warn("Discarding saved ui state", slog.String("error", errSaved.Error()))
		saved = nil
	}

	translator, errTranslator := i18n.New(userConfig.Locale)
	if errTranslator != nil {
		return errors.Join(errTranslator, errApp)
	}

	configLoader.Watch()

	app := NewApp(configUpdates)
	app.createUI(cmd.Context(), ui.Options{
		Config:  userConfig,
		Writer:  configLoader,
		Queries: queries,
		Labels:  translator.Label,
		Signal:  signal,
		Saved:   nav.Snapshot(saved),
		BuildInfo: model.BuildInfo{
			Version: BuildVersion,
			Commit:  BuildCommit,
			Date:    BuildDate,
		},
	})

	return app.Start(cmd.Context())
}

// startupSignal collects the launch parameters evaluated once by the navigation host.
func startupSignal(ctx context.Context, queries *store.Queries) (nav.StartupSignal, error) {
	firstTime, errFirst := queries.IsFirstTime(ctx)
	if errFirst != nil {
		return nav.StartupSignal{}, errFirst
	}

	signal := nav.StartupSignal{FirstRun: forceFirstRun || firstTime}

	if resultPath != "" {
		pending, errResult := result.Load(resultPath)
		if errResult != nil {
			return nav.StartupSignal{}, errResult
		}

		signal.PendingResult = pending
	}

	return signal, nil
}
