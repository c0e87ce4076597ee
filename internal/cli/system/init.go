package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/muhasabah/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting the existing database first."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		path := ctx.Store.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized muhasabah storage at: %s\n", ctx.Store.GetConfigPath())
	fmt.Println("Record your first day with 'muhasabah day record --interactive'.")
	return nil
}
