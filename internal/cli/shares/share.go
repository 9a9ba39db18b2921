package shares

import (
	"fmt"

	"github.com/julianstephens/nila/internal/app"
	"github.com/julianstephens/nila/internal/cli"
	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/share"
)

type ShareCmd struct {
	Index       string  `arg:"" help:"Phrase number (1-based)."`
	Out         string  `help:"Directory to write the card image to. Defaults to the share_dir setting." type:"path"`
	Density     float64 `help:"Pixel density of the card image. Defaults to the pixel_density setting."`
	NoClipboard bool    `help:"Do not copy the phrase to the clipboard."`
}

func (c *ShareCmd) Run(ctx *cli.Context) error {
	if c.Density < 0 || c.Density > constants.MaxPixelDensity {
		return fmt.Errorf("--density must be in (0, %g]", constants.MaxPixelDensity)
	}

	opts, err := ctx.StateOptions()
	if err != nil {
		return err
	}
	if c.Out != "" {
		opts.Exporter.Dir = c.Out
	}
	opts.Exporter.Clipboard = !c.NoClipboard
	if c.Density > 0 {
		opts.Settings.PixelDensity = c.Density
	}

	st, err := app.New(opts)
	if err != nil {
		return err
	}
	i, err := cli.ParseIndex(c.Index, st.Deck().Len())
	if err != nil {
		return err
	}

	res := st.Share(i)
	out := ctx.Stdout()
	if res.Copied {
		fmt.Fprintln(out, constants.MsgShareCopied)
	}
	if res.Path != "" {
		fmt.Fprintf(out, constants.MsgShareSaved+"\n", res.Path)
	}
	if res == (share.Result{}) {
		fmt.Fprintln(out, constants.MsgShareUnavailable)
	}
	return nil
}
