package phrases

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/nila/internal/app"
	"github.com/julianstephens/nila/internal/cli"
)

var favoriteMark = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render("♥")

type PhraseCmd struct {
	List   PhraseListCmd   `cmd:"" help:"List every phrase in the deck." default:"1"`
	Show   PhraseShowCmd   `cmd:"" help:"Show one phrase."`
	Random PhraseRandomCmd `cmd:"" help:"Show a random phrase."`
}

type PhraseListCmd struct{}

func (c *PhraseListCmd) Run(ctx *cli.Context) error {
	st, err := ctx.NewState()
	if err != nil {
		return err
	}

	out := ctx.Stdout()
	for i, phrase := range st.Deck().Phrases() {
		mark := " "
		if st.IsFavorite(i) {
			mark = favoriteMark
		}
		fmt.Fprintf(out, "%s %3d. %s\n", mark, i+1, phrase)
	}
	return nil
}

type PhraseShowCmd struct {
	Index string `arg:"" optional:"" help:"Phrase number (1-based). Defaults to the first phrase."`
}

func (c *PhraseShowCmd) Run(ctx *cli.Context) error {
	st, err := ctx.NewState()
	if err != nil {
		return err
	}

	if c.Index != "" {
		i, err := cli.ParseIndex(c.Index, st.Deck().Len())
		if err != nil {
			return err
		}
		st.JumpTo(i)
	}
	fmt.Fprintln(ctx.Stdout(), st.Deck().Current())
	return nil
}

type PhraseRandomCmd struct {
	Seed *uint64 `help:"Seed for a repeatable pick."`
}

func (c *PhraseRandomCmd) Run(ctx *cli.Context) error {
	opts, err := ctx.StateOptions()
	if err != nil {
		return err
	}
	if c.Seed != nil {
		opts.Rand = rand.New(rand.NewPCG(*c.Seed, *c.Seed))
	}
	st, err := app.New(opts)
	if err != nil {
		return err
	}

	st.Shuffle()
	fmt.Fprintf(ctx.Stdout(), "%d. %s\n", st.Deck().Index()+1, st.Deck().Current())
	return nil
}
