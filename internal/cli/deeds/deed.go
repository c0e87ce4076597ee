package deeds

import (
	"fmt"
	"strings"

	"github.com/julianstephens/muhasabah/internal/cli"
	"github.com/julianstephens/muhasabah/internal/constants"
	"github.com/julianstephens/muhasabah/internal/models"
	"github.com/julianstephens/muhasabah/internal/utils"
)

type AddCmd struct {
	Title string `arg:"" help:"Display title of the new deed."`
	Type  string `short:"t" help:"Deed type (binary|scalar)." default:"binary" enum:"binary,scalar"`
	ID    string `help:"Deed id (defaults to a slug derived from the title)."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	id := c.ID
	if id == "" {
		id = "custom_" + slugify(c.Title)
	}

	deed := models.DeedDefinition{
		ID:       id,
		Title:    c.Title,
		Type:     constants.DeedType(c.Type),
		IsCustom: true,
	}
	if err := ctx.Engine.AddCustomDeed(deed); err != nil {
		return err
	}
	fmt.Printf("Added %s deed %q (id: %s)\n", c.Type, c.Title, id)
	if deed.Type == constants.DeedBinary {
		fmt.Println(cli.DimStyle.Render("Binary deeds must score 100 for a day to pass the weekly gate."))
	}
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	deeds := ctx.Engine.Catalog()

	for _, t := range []constants.DeedType{
		constants.DeedBinary, constants.DeedScalar, constants.DeedPrayer, constants.DeedGolden,
	} {
		group := cli.DeedsByType(deeds, t)
		if len(group) == 0 {
			continue
		}
		fmt.Println(cli.TitleStyle.Render(string(t)))
		for _, d := range group {
			marker := ""
			if d.IsCustom {
				marker = cli.DimStyle.Render(" (custom)")
			}
			fmt.Printf("  %-24s %s%s\n", d.ID, d.Title, marker)
		}
	}
	return nil
}

type RemoveCmd struct {
	ID string `arg:"" help:"Id of the custom deed to remove."`
}

func (c *RemoveCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.RemoveCustomDeed(c.ID, utils.Today()); err != nil {
		return err
	}
	fmt.Printf("Removed custom deed %q. Today's score for it was cleared.\n", c.ID)
	return nil
}

func slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
