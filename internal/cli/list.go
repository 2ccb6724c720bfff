package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/memelab/pkg/category"
	"github.com/matzehuels/memelab/pkg/providers"
)

func (c *CLI) categoriesCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the canned search categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			cats := category.All()
			if asJSON {
				return printJSON(w, cats)
			}
			for _, cat := range cats {
				printKeyValue(w, cat.ID, cat.Name)
				printDetail(w, "%s", cat.Query)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print categories as JSON")
	return cmd
}

func (c *CLI) sourcesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List providers and whether their credential is configured",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, err := c.newRunner(cmd.Context())
			if err != nil {
				return err
			}
			defer runner.Close()

			w := cmd.OutOrStdout()
			reg := runner.Registry
			for _, tier := range []providers.Tier{providers.Primary, providers.Secondary, providers.Tertiary} {
				for _, name := range reg.Tier(tier) {
					p, _ := reg.Get(name)
					if p.Configured() {
						printSuccess(w, "%s %s", styleKey.Render(name), StyleDim.Render(tier.String()))
					} else {
						printError(w, "%s %s", styleKey.Render(name), StyleDim.Render(tier.String()+", no credential"))
					}
				}
			}
			if catalog := reg.Catalog(); catalog != nil {
				printSuccess(w, "%s %s", styleKey.Render(catalog.Name()), StyleDim.Render("catalog"))
			}
			printInfo(w, "%d sources available", len(runner.Sources()))
			return nil
		},
	}
}

func (c *CLI) templatesCommand() *cobra.Command {
	var (
		asJSON bool
		match  string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the Imgflip meme templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, _, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			res, err := runner.Templates(ctx)
			if err != nil {
				return err
			}
			templates := res.Templates
			if match != "" {
				catalog := runner.Registry.Catalog()
				if templates, err = catalog.Match(ctx, match, 0); err != nil {
					return err
				}
			}
			if limit > 0 && len(templates) > limit {
				templates = templates[:limit]
			}

			w := cmd.OutOrStdout()
			if asJSON {
				return printJSON(w, templates)
			}
			printSuccess(w, "%s", StyleTitle.Render(fmt.Sprintf("%d templates", len(templates))))
			printStats(w, len(templates), res.Cached)
			for _, t := range templates {
				printKeyValue(w, t.ID, truncate(t.Name, 60))
				printDetail(w, "%dx%d, %d boxes %s %s", t.Width, t.Height, t.BoxCount, iconArrow, t.URL)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print templates as JSON")
	cmd.Flags().StringVarP(&match, "match", "m", "", "only templates whose name contains this text")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "print at most this many templates")
	return cmd
}
