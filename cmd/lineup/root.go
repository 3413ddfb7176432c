package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"festival-lineup/internal/model"
	"festival-lineup/pkg/client"

	"github.com/spf13/cobra"
)

type app struct {
	in      *bufio.Reader
	out     io.Writer
	apiURL  string
	timeout time.Duration
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{in: bufio.NewReader(in), out: out}

	root := &cobra.Command{
		Use:           "lineup",
		Short:         "Browse and manage the festival lineup",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(out)
	root.SetErr(out)

	defaultURL := os.Getenv("LINEUP_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:3000"
	}
	root.PersistentFlags().StringVar(&a.apiURL, "api", defaultURL, "base URL of the lineup API (env LINEUP_API_URL)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 15*time.Second, "per-command timeout")

	root.AddCommand(
		a.listCmd(),
		a.genresCmd(),
		a.eventCmd(),
		a.registerCmd(),
		a.usersCmd(),
	)
	return root
}

func (a *app) client() *client.Client {
	return client.New(a.apiURL)
}

func (a *app) printEvents(events []*model.Event) {
	if len(events) == 0 {
		fmt.Fprintln(a.out, "No bands found.")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tGENRE\tWEBSITE")
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Genre, e.WebsiteURL)
	}
	_ = tw.Flush()
}

func (a *app) printEvent(e *model.Event) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "id:\t%s\n", e.ID)
	fmt.Fprintf(tw, "name:\t%s\n", e.Name)
	fmt.Fprintf(tw, "genre:\t%s\n", e.Genre)
	fmt.Fprintf(tw, "image:\t%s\n", e.Image)
	fmt.Fprintf(tw, "description:\t%s\n", e.Description)
	fmt.Fprintf(tw, "websiteUrl:\t%s\n", e.WebsiteURL)
	_ = tw.Flush()
}

// confirm reads one line and accepts y or yes.
func (a *app) confirm(prompt string) bool {
	fmt.Fprintf(a.out, "%s [y/N]: ", prompt)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
