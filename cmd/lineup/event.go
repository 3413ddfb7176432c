package main

import (
	"context"
	"errors"
	"fmt"

	"festival-lineup/internal/model"

	"github.com/spf13/cobra"
)

func (a *app) eventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage lineup events",
	}
	cmd.AddCommand(a.eventGetCmd(), a.eventCreateCmd(), a.eventEditCmd(), a.eventDeleteCmd())
	return cmd
}

type eventFlags struct {
	name, genre, image, description, websiteURL string
}

func (f *eventFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "band name")
	cmd.Flags().StringVar(&f.genre, "genre", "", "genre")
	cmd.Flags().StringVar(&f.image, "image", "", "image URL")
	cmd.Flags().StringVar(&f.description, "description", "", "description")
	cmd.Flags().StringVar(&f.websiteURL, "website-url", "", "website URL")
}

// params returns only the flags the user actually set.
func (f *eventFlags) params(cmd *cobra.Command) model.UpdateEventParams {
	var p model.UpdateEventParams
	set := func(flag string, v *string) *string {
		if cmd.Flags().Changed(flag) {
			return v
		}
		return nil
	}
	p.Name = set("name", &f.name)
	p.Genre = set("genre", &f.genre)
	p.Image = set("image", &f.image)
	p.Description = set("description", &f.description)
	p.WebsiteURL = set("website-url", &f.websiteURL)
	return p
}

func (a *app) eventGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
			defer cancel()

			event, err := a.client().GetEvent(ctx, args[0])
			if err != nil {
				return err
			}
			a.printEvent(event)
			return nil
		},
	}
}

func (a *app) eventCreateCmd() *cobra.Command {
	var f eventFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a new event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
			defer cancel()

			created, err := a.client().CreateEvent(ctx, &model.Event{
				Name:        f.name,
				Genre:       f.genre,
				Image:       f.image,
				Description: f.description,
				WebsiteURL:  f.websiteURL,
			})
			if err != nil {
				return fmt.Errorf("could not save the event: %w", err)
			}
			fmt.Fprintf(a.out, "Created event %s\n", created.ID)
			return a.refresh(ctx)
		},
	}
	f.bind(cmd)
	return cmd
}

func (a *app) eventEditCmd() *cobra.Command {
	var f eventFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update the fields given as flags, keeping the rest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
			defer cancel()

			c := a.client()
			current, err := c.GetEvent(ctx, args[0])
			if err != nil {
				return err
			}

			params := f.params(cmd)
			params.Apply(current)

			updated, err := c.UpdateEvent(ctx, current.ID, model.UpdateEventParams{
				Name:        &current.Name,
				Genre:       &current.Genre,
				Image:       &current.Image,
				Description: &current.Description,
				WebsiteURL:  &current.WebsiteURL,
			})
			if err != nil {
				return fmt.Errorf("could not save the event: %w", err)
			}
			fmt.Fprintf(a.out, "Updated event %s\n", updated.ID)
			return a.refresh(ctx)
		},
	}
	f.bind(cmd)
	return cmd
}

func (a *app) eventDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an event after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !a.confirm("Are you sure you want to delete this event?") {
				fmt.Fprintln(a.out, "Cancelled.")
				return nil
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
			defer cancel()

			msg, err := a.client().DeleteEvent(ctx, args[0])
			if err != nil {
				return fmt.Errorf("could not delete event: %w", err)
			}
			fmt.Fprintln(a.out, msg)
			return a.refresh(ctx)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// refresh re-fetches and prints the full list after a mutation.
func (a *app) refresh(ctx context.Context) error {
	events, err := a.client().ListEvents(ctx)
	if err != nil {
		return errors.Join(errors.New("could not load events"), err)
	}
	fmt.Fprintln(a.out)
	a.printEvents(events)
	return nil
}
