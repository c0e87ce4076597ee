package progress

import (
	"fmt"

	"github.com/julianstephens/muhasabah/internal/cli"
	"github.com/julianstephens/muhasabah/internal/constants"
	"github.com/julianstephens/muhasabah/internal/utils"
)

type LevelShowCmd struct{}

func (c *LevelShowCmd) Run(ctx *cli.Context) error {
	level, err := ctx.Store.GetLevel()
	if err != nil {
		return err
	}
	fmt.Printf("Current level: %s / %d\n",
		cli.TitleStyle.Render(fmt.Sprintf("%d", level.CurrentLevel)), constants.MaxLevel)
	if level.LastCheckDate != "" {
		fmt.Printf("Last advanced for the week of %s\n", level.LastCheckDate)
	}
	return nil
}

type LevelCheckCmd struct{}

func (c *LevelCheckCmd) Run(ctx *cli.Context) error {
	level, advanced, err := ctx.Engine.AdvanceLevel(utils.Today())
	if err != nil {
		return err
	}
	if advanced {
		fmt.Printf("%s Advanced to level %d!\n", cli.GoodStyle.Render("★"), level.CurrentLevel)
		return nil
	}
	if level.CurrentLevel >= constants.MaxLevel {
		fmt.Println("You are at the final level.")
		return nil
	}
	fmt.Printf("No advancement. Current level: %d\n", level.CurrentLevel)
	fmt.Println(cli.DimStyle.Render("A level is earned by a full Saturday-to-Friday week of passing days."))
	return nil
}
