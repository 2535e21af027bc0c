package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/auraq/auraq-cli/internal/api"
	"github.com/auraq/auraq-cli/internal/cli"
	"github.com/auraq/auraq-cli/internal/cli/auth"
	"github.com/auraq/auraq-cli/internal/cli/settings"
	"github.com/auraq/auraq-cli/internal/cli/system"
	"github.com/auraq/auraq-cli/internal/constants"
	apperrors "github.com/auraq/auraq-cli/internal/errors"
	"github.com/auraq/auraq-cli/internal/logger"
	"github.com/auraq/auraq-cli/internal/models"
	"github.com/auraq/auraq-cli/internal/session"
	"github.com/auraq/auraq-cli/internal/storage"
	"github.com/auraq/auraq-cli/internal/storage/postgres"
	"github.com/auraq/auraq-cli/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use environment variables or .pgpass instead." type:"string" default:"~/.config/auraq/auraq.db"`
	Server  string `help:"Base URL of the AuraQ service. Overrides the stored setting."`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     system.InitCmd       `cmd:"" help:"Initialize auraq storage."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Submit   cli.SubmitCmd        `cmd:"" help:"Submit a journal entry for mood analysis."`
	Status   cli.StatusCmd        `cmd:"" help:"Show session, credits, and the last analysis."`
	Week     cli.WeekCmd          `cmd:"" help:"Show the weekly mood overview."`
	Login    auth.LoginCmd        `cmd:"" help:"Log in to the AuraQ service."`
	Logout   auth.LogoutCmd       `cmd:"" help:"Log out and clear the stored session."`
	Register auth.RegisterCmd     `cmd:"" help:"Create a new AuraQ account."`
	Whoami   auth.WhoamiCmd       `cmd:"" help:"Show the logged-in user."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	// A .env next to the binary or in the working directory is optional.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("auraq"),
		kong.Description("Journal entries, mood analysis, and your weekly emotional patterns"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.2.0"},
	)

	config := CLI.Config
	if env := os.Getenv(constants.EnvDBConnection); env != "" {
		config = env
	}

	configDir := storage.ExpandPath(filepath.Dir(constants.DefaultConfigPath))
	if !storage.IsPostgres(config) {
		configDir = filepath.Dir(storage.ExpandPath(config))
	}

	debug := CLI.Debug || os.Getenv(constants.EnvDebug) != ""
	if err := logger.Init(logger.Config{Debug: debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
	}

	var store storage.Provider
	if storage.IsPostgres(config) {
		if storage.HasEmbeddedCredentials(config) {
			fmt.Fprintf(os.Stderr, "❌ Error: PostgreSQL connection strings with embedded credentials are NOT allowed.\n")
			fmt.Fprintf(os.Stderr, "       Use one of these secure alternatives:\n")
			fmt.Fprintf(os.Stderr, "       1. Environment:   export %s=\"postgresql://user@host:5432/auraq\" with PGPASSWORD set\n", constants.EnvDBConnection)
			fmt.Fprintf(os.Stderr, "       2. .pgpass file:  Use a connection string without a password\n")
			os.Exit(1)
		}
		store = postgres.New(config)
	} else {
		store = sqlite.NewStore(storage.ExpandPath(config))
	}

	// The init command handles its own loading; the store must not be
	// touched before it runs, so it gets default settings only.
	isInit := ctx.Selected() != nil && ctx.Selected().Name == "init"
	if !isInit {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	appCtx := &cli.Context{
		Store:    store,
		Sessions: session.NewManager(store),
		Settings: resolveSettings(store, !isInit),
	}
	appCtx.Client = api.NewClient(appCtx.Settings.ServerURL)

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}

// resolveSettings layers stored settings under the flag and environment
// overrides. When the store has not been loaded (the init command), only
// defaults and overrides apply.
func resolveSettings(store storage.Provider, loaded bool) models.Settings {
	var settings models.Settings
	if loaded {
		settings, _ = store.GetSettings()
	}
	if settings.ServerURL == "" {
		settings = models.Settings{
			ServerURL:         constants.DefaultServerURL,
			FreeLimit:         constants.DefaultFreeLimit,
			PaidCost:          constants.DefaultPaidCost,
			RewardOnFree:      constants.DefaultRewardOnFree,
			TokenTTLSec:       int(constants.DefaultTokenTTL.Seconds()),
			MaxAttempts:       constants.DefaultMaxAttempts,
			AttemptTimeoutSec: int(constants.DefaultAttemptTimeout.Seconds()),
		}
	}

	if env := os.Getenv(constants.EnvServerURL); env != "" {
		settings.ServerURL = env
	}
	if CLI.Server != "" {
		settings.ServerURL = CLI.Server
	}

	return settings
}
