package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"akademix/internal/app"
	"akademix/internal/catalog"
	"akademix/internal/config"
	"akademix/internal/store"
	"akademix/internal/util"
	"akademix/pkg/domain"
)

type cli struct {
	configPath string
	app        *app.App
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "akademix",
		Short:         "Inspect the AkademiX content store",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", config.ConfigPath, "path to config file")

	root.AddCommand(
		c.feedCmd(),
		c.commentsCmd(),
		c.academicsCmd(),
		c.journalsCmd(),
		c.loginCmd(),
	)
	return root
}

func (c *cli) init() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	latency, err := config.ParseLoginLatency(cfg.LoginLatency)
	if err != nil {
		return err
	}
	fixtures, err := cfg.ReadFixtures()
	if err != nil {
		return err
	}

	logger := util.InitLogger(cfg.LogLevel, cfg.LogFormat)
	s, err := store.New(store.Config{
		Fixtures:      fixtures,
		LoginLatency:  latency,
		LoginEmail:    cfg.LoginEmail,
		LoginPassword: cfg.LoginPassword,
		Logger:        &logger,
	})
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	c.app, err = app.New(app.Config{Store: s, Logger: &logger})
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return nil
}

func (c *cli) feedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "List the shared feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := c.app.Dashboard()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "following %d academics\n", d.FollowingCount)
			for _, p := range d.Posts {
				writePost(out, p)
			}
			return nil
		},
	}
}

func (c *cli) commentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comments POST_ID",
		Short: "List the comments on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			comments := c.app.Comments(args[0])
			if len(comments) == 0 {
				fmt.Fprintln(out, "no comments")
				return nil
			}
			for _, cm := range comments {
				fmt.Fprintf(out, "%s (%s): %s\n", cm.UserName, cm.Date, cm.Content)
			}
			return nil
		},
	}
}

func (c *cli) academicsCmd() *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "academics",
		Short: "List or search the academic directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, a := range c.app.DiscoverAcademics(query) {
				mark := " "
				if a.IsFollowing {
					mark = "*"
				}
				fmt.Fprintf(out, "%s [%s] %s, %s, %s (h-index %d)\n",
					mark, a.ID, a.Name, a.Affiliation, a.Department, a.HIndex)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by name, affiliation or department")
	return cmd
}

func (c *cli) journalsCmd() *cobra.Command {
	var (
		field    string
		quartile string
		top      int
	)
	cmd := &cobra.Command{
		Use:   "journals",
		Short: "Browse the journal catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if field == "" {
				for _, f := range c.app.JournalFields() {
					fmt.Fprintln(out, f)
				}
				return nil
			}
			var (
				journals []catalog.Journal
				err      error
			)
			if quartile != "" {
				journals, err = c.app.Journals(field, quartile)
			} else {
				journals, err = c.app.TopJournals(field, top)
			}
			if err != nil {
				return err
			}
			for _, j := range journals {
				fmt.Fprintf(out, "%s %-6s %s (%s, %s)\n", j.Quartile, j.Impact.StringFixed(1), j.Name, j.Publisher, j.Website)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&field, "field", "", "academic field; empty lists the fields")
	cmd.Flags().StringVar(&quartile, "quartile", "", "Q1..Q4; empty ranks the whole field by impact")
	cmd.Flags().IntVar(&top, "top", 0, "limit the impact ranking to the first N journals")
	return cmd
}

func (c *cli) loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Try the configured credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.app.SignIn(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "welcome, %s %s\n", user.Title, user.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	return cmd
}

func writePost(out io.Writer, p domain.Post) {
	var flags []string
	if p.IsLiked {
		flags = append(flags, "liked")
	}
	if p.IsShared {
		flags = append(flags, "shared")
	}
	fmt.Fprintf(out, "%s [%s] %s (%s)\n", p.Image, p.ID, p.Title, p.Type)
	fmt.Fprintf(out, "    %s, %s | %s | %s\n", p.Author, p.Affiliation, p.Venue, p.Date)
	line := fmt.Sprintf("    likes %d, comments %d %s", p.Likes, p.Comments, strings.Join(flags, " "))
	fmt.Fprintln(out, strings.TrimRight(line, " "))
}
