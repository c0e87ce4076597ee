package challenges

import (
	"fmt"

	"github.com/julianstephens/muhasabah/internal/cli"
	"github.com/julianstephens/muhasabah/internal/constants"
	"github.com/julianstephens/muhasabah/internal/utils"
)

type AddCmd struct {
	Title string `arg:"" help:"Title of the challenge."`
	Days  int    `short:"d" help:"Length of the challenge in days." required:""`
	Start string `help:"Start date (YYYY-MM-DD, defaults to today)."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	start, err := cli.ResolveDate(c.Start)
	if err != nil {
		return err
	}

	ch, err := ctx.Engine.StartChallenge(c.Title, c.Days, start)
	if err != nil {
		return err
	}
	end, err := utils.AddDays(ch.StartDate, ch.TotalDays-1)
	if err != nil {
		return err
	}
	fmt.Printf("Started %q: %d days, %s through %s\n", ch.Title, ch.TotalDays, ch.StartDate, end)
	fmt.Println(cli.DimStyle.Render(fmt.Sprintf("Check off each day with 'muhasabah challenge check %s'", ch.ID)))
	return nil
}

type CheckCmd struct {
	ID   string `arg:"" help:"Id of the challenge to check off."`
	Date string `help:"Date to check off (YYYY-MM-DD, defaults to today)."`
}

func (c *CheckCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	ch, err := ctx.Engine.CheckChallenge(c.ID, date)
	if err != nil {
		return err
	}

	if ch.Status == constants.ChallengeSuccess {
		fmt.Printf("%s Challenge %q completed, all %d days!\n",
			cli.GoodStyle.Render("★"), ch.Title, ch.TotalDays)
		return nil
	}
	fmt.Printf("Checked off %s for %q (%d/%d days)\n",
		date, ch.Title, len(ch.CompletedDates), ch.TotalDays)
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	challenges, err := ctx.Store.GetChallenges()
	if err != nil {
		return err
	}
	if len(challenges) == 0 {
		fmt.Println("No challenges yet. Start one with 'muhasabah challenge add'.")
		return nil
	}

	for _, ch := range challenges {
		var status string
		switch ch.Status {
		case constants.ChallengeSuccess:
			status = cli.GoodStyle.Render("success")
		case constants.ChallengeFailed:
			status = cli.BadStyle.Render("failed")
		default:
			status = cli.WarnStyle.Render("active")
		}
		fmt.Printf("%s  %-28s %d/%d days  %s\n",
			cli.DimStyle.Render(ch.ID), ch.Title, len(ch.CompletedDates), ch.TotalDays, status)
	}
	return nil
}
