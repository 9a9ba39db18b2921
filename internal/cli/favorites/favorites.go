package favorites

import (
	"fmt"

	"github.com/julianstephens/nila/internal/cli"
)

type FavoriteCmd struct {
	List   FavoriteListCmd   `cmd:"" help:"List favorite phrases." default:"1"`
	Toggle FavoriteToggleCmd `cmd:"" help:"Add or remove a phrase from favorites."`
}

type FavoriteListCmd struct{}

func (c *FavoriteListCmd) Run(ctx *cli.Context) error {
	st, err := ctx.NewState()
	if err != nil {
		return err
	}

	out := ctx.Stdout()
	indices := st.FavoriteIndices()
	if len(indices) == 0 {
		fmt.Fprintln(out, "No favorites yet.")
		return nil
	}
	for _, i := range indices {
		phrase, _ := st.Deck().Phrase(i)
		fmt.Fprintf(out, "%3d. %s\n", i+1, phrase)
	}
	return nil
}

type FavoriteToggleCmd struct {
	Index string `arg:"" help:"Phrase number (1-based)."`
}

func (c *FavoriteToggleCmd) Run(ctx *cli.Context) error {
	if err := ctx.RequireNoLiveTUI(); err != nil {
		return err
	}
	st, err := ctx.NewState()
	if err != nil {
		return err
	}

	i, err := cli.ParseIndex(c.Index, st.Deck().Len())
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Stdout(), st.ToggleFavoriteAt(i))
	return nil
}
