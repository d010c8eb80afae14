package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brunovale/prancheta/internal/cli/formatter"
	"github.com/brunovale/prancheta/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change your account profile",
	}

	cmd.AddCommand(newProfileShowCmd(app), newProfileSetCmd(app))

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(context.Background(), currentUser())
			if errors.Is(err, domain.ErrNotFound) {
				fmt.Printf("No profile for %s yet; the FREE plan applies.\n", currentUser())
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("%s %s\n", formatter.Dim("user"), formatter.Bold(p.UserID))
			if p.FullName != "" {
				fmt.Printf("%s %s\n", formatter.Dim("name"), p.FullName)
			}
			fmt.Printf("%s %s\n", formatter.Dim("plan"), string(p.Plan))
			if p.TrialEndsAt != nil {
				fmt.Printf("%s %s\n", formatter.Dim("trial ends"), formatter.RelativeDate(*p.TrialEndsAt))
			}
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var fullName, plan, trialEnds string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			p, err := app.Profiles.Get(ctx, currentUser())
			if errors.Is(err, domain.ErrNotFound) {
				p = &domain.Profile{UserID: currentUser()}
			} else if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.FullName = fullName
			}
			if cmd.Flags().Changed("plan") {
				p.Plan = domain.Plan(plan)
			}
			if cmd.Flags().Changed("trial-ends") {
				ends, err := time.Parse("2006-01-02", trialEnds)
				if err != nil {
					return fmt.Errorf("invalid trial end date %q: %w", trialEnds, err)
				}
				p.TrialEndsAt = &ends
			}

			if err := app.Profiles.Upsert(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Saved profile for %s (%s)\n", p.UserID, string(p.Plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "name", "", "Full name")
	cmd.Flags().StringVar(&plan, "plan", "", "Plan (FREE|TRIAL|PREMIUM)")
	cmd.Flags().StringVar(&trialEnds, "trial-ends", "", "Trial end date (YYYY-MM-DD)")

	return cmd
}
