package streaks

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nila/internal/cli"
	"github.com/julianstephens/nila/internal/tui/components/week"
	"github.com/julianstephens/nila/internal/utils"
)

var (
	cellStyle   = lipgloss.NewStyle().Width(5).Align(lipgloss.Center)
	todayStyle  = cellStyle.Bold(true).Underline(true)
	markedStyle = cellStyle.Foreground(lipgloss.Color("208"))
	emptyStyle  = cellStyle.Foreground(lipgloss.Color("238"))
)

type StreakCmd struct {
	Show StreakShowCmd `cmd:"" help:"Show this week's streak." default:"1"`
	Mark StreakMarkCmd `cmd:"" help:"Mark today."`
}

type StreakShowCmd struct {
	All bool `help:"List every marked date."`
}

func (c *StreakShowCmd) Run(ctx *cli.Context) error {
	st, err := ctx.NewState()
	if err != nil {
		return err
	}
	out := ctx.Stdout()

	if c.All {
		keys := st.StreakKeys()
		if len(keys) == 0 {
			fmt.Fprintln(out, "No days marked yet.")
			return nil
		}
		fmt.Fprintln(out, strings.Join(keys, "\n"))
		return nil
	}

	labels := utils.WeekdayLabels()
	todayKey := utils.DateKey(st.Today())
	status := st.WeekStatus()

	var header, dots []string
	for i, day := range st.WeekWindow() {
		if utils.DateKey(day) == todayKey {
			header = append(header, todayStyle.Render(labels[i]))
		} else {
			header = append(header, cellStyle.Render(labels[i]))
		}
		if status[i] {
			dots = append(dots, markedStyle.Render("●"))
		} else {
			dots = append(dots, emptyStyle.Render("○"))
		}
	}

	fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, header...))
	fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, dots...))
	fmt.Fprintln(out, week.Flame(st.CurrentRun()))
	return nil
}

type StreakMarkCmd struct{}

func (c *StreakMarkCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireNoLiveTUI(); err != nil {
		return err
	}
	st, err := ctx.NewState()
	if err != nil {
		return err
	}

	msg, changed := st.MarkToday()
	if !changed {
		msg = "Already marked for today"
	}
	fmt.Fprintln(ctx.Stdout(), msg)
	return nil
}
