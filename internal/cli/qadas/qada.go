package qadas

import (
	"fmt"

	"github.com/julianstephens/muhasabah/internal/cli"
	"github.com/julianstephens/muhasabah/internal/models"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	ledger, err := ctx.Store.GetQada()
	if err != nil {
		return err
	}

	fmt.Println(cli.TitleStyle.Render("Outstanding qada"))
	for _, key := range models.QadaKeys {
		count := ledger.Get(key)
		line := fmt.Sprintf("  %-10s %d", key, count)
		if count == 0 {
			line = cli.DimStyle.Render(line)
		}
		fmt.Println(line)
	}
	if ledger.Total() == 0 {
		fmt.Println(cli.GoodStyle.Render("Nothing owed."))
	} else {
		fmt.Printf("Total owed: %s\n", cli.WarnStyle.Render(fmt.Sprintf("%d", ledger.Total())))
	}
	return nil
}

type PayCmd struct {
	Key  string `arg:"" help:"Obligation to repay (fajr|dhuhr|asr|maghrib|isha|ayat|fasting)."`
	Date string `help:"Date the make-up was performed (YYYY-MM-DD, defaults to today)."`
}

func (c *PayCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	ledger, paid, err := ctx.Engine.PayQada(c.Key, date)
	if err != nil {
		return err
	}
	if !paid {
		fmt.Printf("No outstanding %s to repay.\n", c.Key)
		return nil
	}
	fmt.Printf("%s Repaid one %s. Remaining: %d\n",
		cli.GoodStyle.Render("✓"), c.Key, ledger.Get(c.Key))
	return nil
}

type AddCmd struct {
	Key string `arg:"" help:"Obligation to add a debt for (fajr|dhuhr|asr|maghrib|isha|ayat|fasting)."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	ledger, err := ctx.Engine.AddQadaDebt(c.Key)
	if err != nil {
		return err
	}
	fmt.Printf("Added one %s debt. Outstanding: %d\n", c.Key, ledger.Get(c.Key))
	return nil
}
