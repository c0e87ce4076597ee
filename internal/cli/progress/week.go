package progress

import (
	"fmt"

	"github.com/julianstephens/muhasabah/internal/cli"
	"github.com/julianstephens/muhasabah/internal/engine"
	"github.com/julianstephens/muhasabah/internal/utils"
)

type WeekCmd struct {
	Date string `help:"Any date inside the week to show (YYYY-MM-DD, defaults to today)."`
}

func (c *WeekCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	start, err := utils.StartOfWeek(date)
	if err != nil {
		return err
	}

	days, err := ctx.Engine.EvaluateWeek(start, utils.Today())
	if err != nil {
		return err
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Week of %s", start)))
	for _, day := range days {
		fmt.Printf("  %s  %s  %s\n", cli.StatusGlyph(day.Status), day.Date, day.Status)
	}
	if engine.WeekPassed(days) {
		fmt.Println(cli.GoodStyle.Render("All seven days passed."))
	}
	return nil
}
