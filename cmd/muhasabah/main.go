package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/muhasabah/internal/cli"
	"github.com/julianstephens/muhasabah/internal/cli/challenges"
	"github.com/julianstephens/muhasabah/internal/cli/days"
	"github.com/julianstephens/muhasabah/internal/cli/deeds"
	"github.com/julianstephens/muhasabah/internal/cli/progress"
	"github.com/julianstephens/muhasabah/internal/cli/qadas"
	"github.com/julianstephens/muhasabah/internal/cli/system"
	"github.com/julianstephens/muhasabah/internal/cli/workouts"
	"github.com/julianstephens/muhasabah/internal/constants"
	"github.com/julianstephens/muhasabah/internal/engine"
	apperrors "github.com/julianstephens/muhasabah/internal/errors"
	"github.com/julianstephens/muhasabah/internal/keyring"
	"github.com/julianstephens/muhasabah/internal/logger"
	"github.com/julianstephens/muhasabah/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path (.db for SQLite, .json for a plain JSON document)." default:"~/.config/muhasabah/muhasabah.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   system.InitCmd   `cmd:"" help:"Initialize muhasabah storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Day    struct {
		Record days.RecordCmd `cmd:"" help:"Record or edit today's self-assessment."`
		Show   days.ShowCmd   `cmd:"" help:"Show a day's record." default:"1"`
	} `cmd:"" help:"Daily records."`
	Week  progress.WeekCmd `cmd:"" help:"Show the weekly gate for the current week."`
	Level struct {
		Show  progress.LevelShowCmd  `cmd:"" help:"Show the current level." default:"1"`
		Check progress.LevelCheckCmd `cmd:"" help:"Evaluate the last elapsed week for advancement."`
	} `cmd:"" help:"Progression level."`
	Qada struct {
		List qadas.ListCmd `cmd:"" help:"List outstanding obligations." default:"1"`
		Pay  qadas.PayCmd  `cmd:"" help:"Record a made-up obligation."`
		Add  qadas.AddCmd  `cmd:"" help:"Add a debt predating the app."`
	} `cmd:"" help:"Missed-obligation ledger."`
	Deed struct {
		Add    deeds.AddCmd    `cmd:"" help:"Add a custom deed."`
		List   deeds.ListCmd   `cmd:"" help:"List all deeds." default:"1"`
		Remove deeds.RemoveCmd `cmd:"" help:"Remove a custom deed."`
	} `cmd:"" help:"Deed catalog."`
	Workout struct {
		Log     workouts.LogCmd     `cmd:"" help:"Log a workout."`
		Prs     workouts.PrsCmd     `cmd:"" help:"Show personal records." default:"1"`
		AddType workouts.AddTypeCmd `cmd:"" help:"Add a custom workout type."`
	} `cmd:"" help:"Workout tracking."`
	Challenge struct {
		Add   challenges.AddCmd   `cmd:"" help:"Start a fixed-length challenge."`
		Check challenges.CheckCmd `cmd:"" help:"Check off a challenge day."`
		List  challenges.ListCmd  `cmd:"" help:"List challenges." default:"1"`
	} `cmd:"" help:"Fixed-length commitments."`
	Mirror struct {
		Set    system.MirrorSetCmd    `cmd:"" help:"Store the remote mirror connection string."`
		Clear  system.MirrorClearCmd  `cmd:"" help:"Remove the remote mirror connection string."`
		Status system.MirrorStatusCmd `cmd:"" help:"Show mirror configuration and reachability."`
	} `cmd:"" help:"Best-effort remote mirror."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily self-assessment and deed tracking companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)
	if strings.HasPrefix(configPath, "postgres://") || strings.HasPrefix(configPath, "postgresql://") {
		apperrors.Fatalf("PostgreSQL is only supported as a mirror, not as primary storage; store the connection string with 'muhasabah mirror set' instead")
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(configPath)}); err != nil {
		apperrors.Fatalf("failed to initialize logging: %v", err)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}

	// A configured mirror wraps the local store; every lookup failure just
	// means local-only operation.
	if dsn := mirrorDSN(); dsn != "" {
		if storage.HasEmbeddedCredentials(dsn) && os.Getenv("MUHASABAH_MIRROR_DSN") != "" {
			apperrors.Fatalf("MUHASABAH_MIRROR_DSN must not embed a password; use .pgpass or store the full string in the OS keyring via 'muhasabah mirror set'")
		}
		store = storage.NewMirrorStore(store, dsn)
	}

	appCtx := &cli.Context{
		Store:  store,
		Engine: engine.New(store),
		Debug:  CLI.Debug,
	}

	if selected := ctx.Selected(); selected != nil && selected.Name != "init" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}
	defer store.Close()

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

// mirrorDSN resolves the remote mirror connection string: environment first,
// then the OS keyring.
func mirrorDSN() string {
	if dsn := os.Getenv("MUHASABAH_MIRROR_DSN"); dsn != "" {
		return dsn
	}
	dsn, err := keyring.GetMirrorDSN()
	if err != nil {
		return ""
	}
	return dsn
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
