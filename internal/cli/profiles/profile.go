package profiles

import (
	"fmt"

	"github.com/julianstephens/nila/internal/cli"
	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/models"
	"github.com/julianstephens/nila/internal/tui/handlers"
)

type ProfileCmd struct {
	Show ProfileShowCmd `cmd:"" help:"Show the saved profile." default:"1"`
	Set  ProfileSetCmd  `cmd:"" help:"Update profile fields."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *cli.Context) error {
	st, err := ctx.NewState()
	if err != nil {
		return err
	}
	printProfile(ctx, st.Profile())
	return nil
}

type ProfileSetCmd struct {
	Name  *string `help:"Display name."`
	Email *string `help:"Email address."`
	DOB   *string `name:"dob" help:"Date of birth (YYYY-MM-DD)."`
}

func (c *ProfileSetCmd) Run(ctx *cli.Context) error {
	if c.Name == nil && c.Email == nil && c.DOB == nil {
		return fmt.Errorf("no changes specified: use --name, --email or --dob")
	}
	if err := ctx.RequireNoLiveTUI(); err != nil {
		return err
	}
	st, err := ctx.NewState()
	if err != nil {
		return err
	}

	if c.DOB != nil {
		if err := handlers.ValidateDOB(*c.DOB); err != nil {
			return fmt.Errorf("invalid --dob: %w", err)
		}
		dob, _ := handlers.ParseDOB(*c.DOB, st.Today().Location())
		st.SetDateOfBirth(dob)
	}
	if c.Name != nil {
		st.SetName(*c.Name)
	}
	if c.Email != nil {
		st.SetEmail(*c.Email)
	}

	fmt.Fprintln(ctx.Stdout(), constants.MsgProfileSaved)
	printProfile(ctx, st.Profile())
	return nil
}

func printProfile(ctx *cli.Context, p models.Profile) {
	out := ctx.Stdout()
	fmt.Fprintf(out, "  Name:           %s\n", p.Name)
	fmt.Fprintf(out, "  Email:          %s\n", p.Email)
	if p.EmailWarning() {
		fmt.Fprintf(out, "                  %s\n", constants.MsgInvalidEmail)
	}
	fmt.Fprintf(out, "  Date of birth:  %s\n", p.DateOfBirth.Format(constants.DateFormat))
}
