package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/muhasabah/internal/cli"
	"github.com/julianstephens/muhasabah/internal/keyring"
	"github.com/julianstephens/muhasabah/internal/storage"
)

// MirrorSetCmd stores the remote mirror connection string in the OS keyring.
type MirrorSetCmd struct {
	DSN string `arg:"" help:"PostgreSQL connection string for the remote mirror."`
}

func (cmd *MirrorSetCmd) Run(ctx *cli.Context) error {
	if !strings.HasPrefix(cmd.DSN, "postgres://") &&
		!strings.HasPrefix(cmd.DSN, "postgresql://") &&
		!strings.Contains(cmd.DSN, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if storage.HasEmbeddedCredentials(cmd.DSN) {
		fmt.Println("⚠️  Warning: connection string contains an embedded password.")
		fmt.Println("   It will be stored in the encrypted OS keyring, which is a secure place for it.")
		fmt.Println("   On the command line the same string would be rejected.")
	}

	if err := keyring.SetMirrorDSN(cmd.DSN); err != nil {
		return err
	}
	fmt.Println("✓ Mirror connection string stored in OS keyring")
	fmt.Println("  Daily records will now be mirrored remotely, best effort.")
	return nil
}

// MirrorClearCmd removes the remote mirror connection string.
type MirrorClearCmd struct{}

func (cmd *MirrorClearCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteMirrorDSN(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no mirror connection string stored")
		}
		return err
	}
	fmt.Println("✓ Mirror connection string removed; running local-only")
	return nil
}

// MirrorStatusCmd reports mirror configuration and reachability.
type MirrorStatusCmd struct{}

func (cmd *MirrorStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		fmt.Println("❌ OS keyring is not available on this system")
		return errors.New("keyring unavailable")
	}
	fmt.Println("✓ OS keyring is available")

	_, err := keyring.GetMirrorDSN()
	switch {
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Println("ℹ No mirror configured; records live only in local storage")
		return nil
	case err != nil:
		return err
	}
	fmt.Println("✓ Mirror connection string is stored in keyring")

	if mirror, ok := ctx.Store.(*storage.MirrorStore); ok {
		if err := mirror.Ping(); err != nil {
			fmt.Printf("⚠ Mirror unreachable: %v\n", err)
			fmt.Println("  Writes continue locally; the mirror catches up on the next save.")
			return nil
		}
		fmt.Println("✓ Mirror is reachable")
	}
	return nil
}
