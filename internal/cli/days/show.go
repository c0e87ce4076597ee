package days

import (
	"fmt"

	"github.com/julianstephens/muhasabah/internal/catalog"
	"github.com/julianstephens/muhasabah/internal/cli"
	"github.com/julianstephens/muhasabah/internal/constants"
	"github.com/julianstephens/muhasabah/internal/storage"
)

type ShowCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD, defaults to today)."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	rec, err := ctx.Store.GetRecord(date)
	if err == storage.ErrNotFound {
		fmt.Printf("No record for %s yet.\n", date)
		return nil
	} else if err != nil {
		return err
	}

	deeds := ctx.Engine.Catalog()

	fmt.Println(cli.TitleStyle.Render(date))
	for _, t := range []constants.DeedType{
		constants.DeedBinary, constants.DeedScalar, constants.DeedPrayer, constants.DeedGolden,
	} {
		for _, d := range cli.DeedsByType(deeds, t) {
			score, ok := rec.Scores[d.ID]
			if !ok && t == constants.DeedGolden {
				continue
			}
			fmt.Printf("  %-28s %s\n", d.Title, cli.FormatScore(score))
		}
	}

	if len(rec.Sins) > 0 {
		fmt.Println(cli.BadStyle.Render("Sins:"))
		for _, id := range rec.Sins {
			if s, ok := catalog.FindSin(id); ok {
				fmt.Printf("  %s\n", s.Title)
			} else {
				fmt.Printf("  %s\n", id)
			}
		}
	}

	if len(rec.PerformedQada) > 0 {
		fmt.Println("Qada performed:")
		for _, key := range cli.SortedScoreIDs(rec.PerformedQada) {
			fmt.Printf("  %-28s %d\n", key, rec.PerformedQada[key])
		}
	}

	if len(rec.Workouts) > 0 {
		fmt.Println("Workouts:")
		for _, id := range cli.SortedScoreIDs(rec.Workouts) {
			title, unit := id, ""
			if w, ok := catalog.FindWorkout(nil, id); ok {
				title, unit = w.Title, w.Unit
			}
			fmt.Printf("  %-28s %d %s\n", title, rec.Workouts[id], unit)
		}
	}

	if rec.Report != "" {
		fmt.Printf("Report: %s\n", rec.Report)
	}
	fmt.Printf("Total: %s\n", cli.FormatTotal(rec.TotalAverage))
	return nil
}
