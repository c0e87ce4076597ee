package workouts

import (
	"fmt"
	"strings"

	"github.com/julianstephens/muhasabah/internal/catalog"
	"github.com/julianstephens/muhasabah/internal/cli"
	"github.com/julianstephens/muhasabah/internal/models"
)

type LogCmd struct {
	Workout string `arg:"" help:"Workout id (see 'muhasabah workout prs' for known ids)."`
	Value   int    `arg:"" help:"Amount performed, in the workout's unit."`
	Date    string `help:"Date of the workout (YYYY-MM-DD, defaults to today)."`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	newPR, err := ctx.Engine.LogWorkout(date, c.Workout, c.Value)
	if err != nil {
		return err
	}

	unit := ""
	settings, err := ctx.Store.GetSettings()
	if err == nil {
		if w, ok := catalog.FindWorkout(settings.CustomWorkouts, c.Workout); ok {
			unit = " " + w.Unit
		}
	}
	fmt.Printf("Logged %d%s of %s on %s\n", c.Value, unit, c.Workout, date)
	if newPR {
		fmt.Printf("%s New personal record!\n", cli.GoodStyle.Render("★"))
	}
	return nil
}

type PrsCmd struct{}

func (c *PrsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	prs, err := ctx.Store.GetWorkoutPRs()
	if err != nil {
		return err
	}

	fmt.Println(cli.TitleStyle.Render("Personal records"))
	for _, w := range catalog.AllWorkouts(settings.CustomWorkouts) {
		best, ok := prs[w.ID]
		line := fmt.Sprintf("  %-12s %-16s", w.ID, w.Title)
		if ok {
			line += fmt.Sprintf("%d %s", best, w.Unit)
		} else {
			line += cli.DimStyle.Render("—")
		}
		fmt.Println(line)
	}
	return nil
}

type AddTypeCmd struct {
	Title string `arg:"" help:"Display title of the new workout."`
	Unit  string `short:"u" help:"Measurement unit (reps, seconds, minutes, ...)." required:""`
	ID    string `help:"Workout id (defaults to a slug derived from the title)."`
}

func (c *AddTypeCmd) Run(ctx *cli.Context) error {
	id := c.ID
	if id == "" {
		id = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(c.Title)), " ", "_")
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if _, ok := catalog.FindWorkout(settings.CustomWorkouts, id); ok {
		return fmt.Errorf("workout %q already exists", id)
	}

	settings.CustomWorkouts = append(settings.CustomWorkouts, models.WorkoutDefinition{
		ID:       id,
		Title:    c.Title,
		Unit:     c.Unit,
		IsCustom: true,
	})
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Printf("Added workout %q (id: %s, unit: %s)\n", c.Title, id, c.Unit)
	return nil
}
