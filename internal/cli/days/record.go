package days

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/muhasabah/internal/catalog"
	"github.com/julianstephens/muhasabah/internal/cli"
	"github.com/julianstephens/muhasabah/internal/constants"
	"github.com/julianstephens/muhasabah/internal/logger"
	"github.com/julianstephens/muhasabah/internal/models"
	"github.com/julianstephens/muhasabah/internal/storage"
)

type RecordCmd struct {
	Date        string   `help:"Date to record (YYYY-MM-DD, defaults to today)."`
	Set         []string `short:"s" help:"Deed score assignment (deed=score, repeatable). Use deed=missed for a missed prayer."`
	Sin         []string `help:"Sin id committed today (repeatable)."`
	Report      string   `short:"r" help:"Short written reflection for the day."`
	Interactive bool     `short:"i" help:"Fill in the day through an interactive form."`
	Force       bool     `help:"Allow editing a day other than today."`
}

func (c *RecordCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	if err := cli.EnsureEditable(date, c.Force); err != nil {
		return err
	}

	// Start from the persisted record so a partial edit keeps earlier entries.
	prev, err := ctx.Store.GetRecord(date)
	if err == storage.ErrNotFound {
		prev = models.NewDailyRecord(date)
	} else if err != nil {
		return err
	}

	scores := make(map[string]int, len(prev.Scores))
	for id, s := range prev.Scores {
		scores[id] = s
	}
	sins := append([]string(nil), prev.Sins...)
	report := prev.Report

	if c.Interactive {
		if err := c.runForm(ctx, scores, &sins, &report); err != nil {
			return err
		}
	}

	set, err := cli.ParseScoreArgs(c.Set)
	if err != nil {
		return err
	}
	deeds := ctx.Engine.Catalog()
	for id, s := range set {
		known := false
		for _, d := range deeds {
			if d.ID == id {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown deed %q (see 'muhasabah deed list')", id)
		}
		scores[id] = s
	}
	for _, id := range c.Sin {
		if _, ok := catalog.FindSin(id); !ok {
			return fmt.Errorf("unknown sin %q", id)
		}
		sins = append(sins, id)
	}
	if c.Report != "" {
		report = c.Report
	}
	if report == "" {
		return fmt.Errorf("a daily report is required (--report or --interactive)")
	}

	rec, err := ctx.Engine.SaveDay(date, scores, sins, report)
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %s: total %s\n", date, cli.FormatTotal(rec.TotalAverage))
	if rec.HasMissedPrayer() {
		fmt.Println(cli.WarnStyle.Render("Missed prayers were added to the qada ledger."))
	}

	// Opportunistic progression check; failures only get logged so the save
	// itself still reads as successful.
	if level, advanced, err := ctx.Engine.AdvanceLevel(date); err != nil {
		logger.Warn("Level check after save failed", "error", err)
	} else if advanced {
		fmt.Printf("%s You reached level %d!\n", cli.GoodStyle.Render("★"), level.CurrentLevel)
	}
	return nil
}

func (c *RecordCmd) runForm(ctx *cli.Context, scores map[string]int, sins *[]string, report *string) error {
	deeds := ctx.Engine.Catalog()

	// huh binds values through pointers, so every deed needs a stable holder.
	boolVals := map[string]*bool{}
	intVals := map[string]*int{}

	var groups []*huh.Group

	var binaryFields []huh.Field
	for _, d := range deeds {
		if d.Type != constants.DeedBinary && d.Type != constants.DeedGolden {
			continue
		}
		v := scores[d.ID] == constants.MaxScore
		boolVals[d.ID] = &v
		binaryFields = append(binaryFields, huh.NewConfirm().Title(d.Title).Value(&v))
	}
	if len(binaryFields) > 0 {
		groups = append(groups, huh.NewGroup(binaryFields...).Title("Done today?"))
	}

	var scaleFields []huh.Field
	for _, d := range deeds {
		if d.Type != constants.DeedScalar && d.Type != constants.DeedPrayer {
			continue
		}
		v := scores[d.ID]
		intVals[d.ID] = &v

		opts := make([]huh.Option[int], 0, constants.MaxScore/constants.ScoreStep+2)
		if d.Type == constants.DeedPrayer {
			opts = append(opts, huh.NewOption("missed", constants.MissedPrayer))
		}
		for s := 0; s <= constants.MaxScore; s += constants.ScoreStep {
			opts = append(opts, huh.NewOption(strconv.Itoa(s), s))
		}
		scaleFields = append(scaleFields, huh.NewSelect[int]().Title(d.Title).Options(opts...).Value(&v))
	}
	if len(scaleFields) > 0 {
		groups = append(groups, huh.NewGroup(scaleFields...).Title("How did it go?"))
	}

	sinOpts := make([]huh.Option[string], 0, len(catalog.Sins))
	for _, s := range catalog.Sins {
		sinOpts = append(sinOpts, huh.NewOption(s.Title, s.ID))
	}
	groups = append(groups, huh.NewGroup(
		huh.NewMultiSelect[string]().Title("Sins committed today").Options(sinOpts...).Value(sins),
		huh.NewText().Title("Daily report").Value(report),
	))

	if err := huh.NewForm(groups...).Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}

	for id, v := range boolVals {
		if *v {
			scores[id] = constants.MaxScore
		} else {
			scores[id] = 0
		}
	}
	for id, v := range intVals {
		scores[id] = *v
	}
	return nil
}
