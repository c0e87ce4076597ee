package system

import (
	"fmt"
	"os"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/muhasabah/internal/cli"
	"github.com/julianstephens/muhasabah/internal/constants"
	"github.com/julianstephens/muhasabah/internal/keyring"
	"github.com/julianstephens/muhasabah/internal/storage"
	"github.com/julianstephens/muhasabah/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: store reachable
	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storeReachable = true
	}

	// Check 2: record date integrity
	if storeReachable {
		if err := checkRecordDates(ctx); err != nil {
			fmt.Printf("❌ Record dates: FAIL\n   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Record dates: OK\n")
		}
	} else {
		fmt.Printf("⊘ Record dates: SKIPPED (storage not reachable)\n")
	}

	// Check 3: level document sanity
	if storeReachable {
		if err := checkLevel(ctx); err != nil {
			fmt.Printf("❌ Level document: FAIL\n   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Level document: OK\n")
		}
	} else {
		fmt.Printf("⊘ Level document: SKIPPED (storage not reachable)\n")
	}

	// Check 4: no second writer
	if err := checkSingleWriter(); err != nil {
		fmt.Printf("⚠ Single writer: WARNING\n   %v\n", err)
	} else {
		fmt.Printf("✓ Single writer: OK\n")
	}

	// Check 5: clock/timezone sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 6: OS keyring (warning only; the mirror is optional)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n   keyring unavailable; mirror credentials cannot be stored\n")
	}

	// Check 7: remote mirror
	if mirror, ok := ctx.Store.(*storage.MirrorStore); ok {
		if err := mirror.Ping(); err != nil {
			fmt.Printf("⚠ Remote mirror: WARNING\n   %v\n", err)
		} else {
			fmt.Printf("✓ Remote mirror: OK\n")
		}
	} else {
		fmt.Printf("⊘ Remote mirror: SKIPPED (not configured)\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	if _, err := ctx.Store.GetSettings(); err != nil {
		return err
	}
	return nil
}

func checkRecordDates(ctx *cli.Context) error {
	records, err := ctx.Store.GetAllRecords()
	if err != nil {
		return err
	}
	for _, rec := range records {
		if _, err := utils.ParseDate(rec.Date); err != nil {
			return fmt.Errorf("record has malformed date %q", rec.Date)
		}
	}
	return nil
}

func checkLevel(ctx *cli.Context) error {
	level, err := ctx.Store.GetLevel()
	if err != nil {
		return err
	}
	if level.CurrentLevel < constants.MinLevel || level.CurrentLevel > constants.MaxLevel {
		return fmt.Errorf("level %d is outside [%d, %d]", level.CurrentLevel, constants.MinLevel, constants.MaxLevel)
	}
	if level.LastCheckDate != "" {
		if _, err := utils.ParseDate(level.LastCheckDate); err != nil {
			return fmt.Errorf("malformed last check date %q", level.LastCheckDate)
		}
	}
	return nil
}

// checkSingleWriter scans the process table for another live muhasabah
// process. Two concurrent writers can interleave the read-modify-write save
// workflow.
func checkSingleWriter() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("could not list processes: %v", err)
	}
	self := os.Getpid()
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName {
			return fmt.Errorf("another muhasabah process is running (pid %d)", p.Pid())
		}
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock reads %s; date-keyed records would corrupt", now.Format(constants.DateFormat))
	}
	if _, offset := now.Zone(); offset%900 != 0 {
		return fmt.Errorf("unusual timezone offset %d seconds", offset)
	}
	return nil
}
