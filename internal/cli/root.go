package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/muhasabah/internal/constants"
	"github.com/julianstephens/muhasabah/internal/engine"
	"github.com/julianstephens/muhasabah/internal/models"
	"github.com/julianstephens/muhasabah/internal/storage"
	"github.com/julianstephens/muhasabah/internal/utils"
)

type Context struct {
	Store  storage.Provider
	Engine *engine.Engine
	Debug  bool
}

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	GoodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	BadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// FormatTotal renders a day total with color keyed to the gate threshold.
func FormatTotal(total int) string {
	s := strconv.Itoa(total)
	switch {
	case total >= constants.GateMinTotal:
		return GoodStyle.Render(s)
	case total >= 0:
		return WarnStyle.Render(s)
	default:
		return BadStyle.Render(s)
	}
}

// FormatScore renders one deed score, special-casing the missed sentinel.
func FormatScore(score int) string {
	if score == constants.MissedPrayer {
		return BadStyle.Render("missed")
	}
	if score == constants.MaxScore {
		return GoodStyle.Render("100")
	}
	return strconv.Itoa(score)
}

// StatusGlyph maps a gate verdict to its display glyph.
func StatusGlyph(status constants.GateStatus) string {
	switch status {
	case constants.GateSuccess:
		return GoodStyle.Render("✓")
	case constants.GateFail:
		return BadStyle.Render("✗")
	default:
		return DimStyle.Render("·")
	}
}

// ParseScoreArgs parses repeated "deed=score" assignments. The sentinel may
// be written as "missed" for prayer entries.
func ParseScoreArgs(args []string) (map[string]int, error) {
	scores := make(map[string]int, len(args))
	for _, arg := range args {
		id, val, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid score %q (expected deed=score)", arg)
		}
		id = strings.TrimSpace(id)
		val = strings.TrimSpace(val)
		if val == "missed" {
			scores[id] = constants.MissedPrayer
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("invalid score %q for deed %q", val, id)
		}
		scores[id] = n
	}
	return scores, nil
}

// ResolveDate normalizes an optional date flag: empty means today.
func ResolveDate(date string) (string, error) {
	if date == "" {
		return utils.Today(), nil
	}
	if _, err := utils.ParseDate(date); err != nil {
		return "", err
	}
	return date, nil
}

// EnsureEditable enforces the today-only editing policy unless forced.
func EnsureEditable(date string, force bool) error {
	if force || date == utils.Today() {
		return nil
	}
	return fmt.Errorf("only today's record may be edited; use --force to edit %s", date)
}

// SortedScoreIDs returns the ids of a score map in deterministic order.
func SortedScoreIDs(scores map[string]int) []string {
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DeedsByType groups a catalog slice preserving order within each type.
func DeedsByType(deeds []models.DeedDefinition, t constants.DeedType) []models.DeedDefinition {
	var out []models.DeedDefinition
	for _, d := range deeds {
		if d.Type == t {
			out = append(out, d)
		}
	}
	return out
}
