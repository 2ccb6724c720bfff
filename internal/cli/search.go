package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/memelab/pkg/category"
	"github.com/matzehuels/memelab/pkg/meme"
	"github.com/matzehuels/memelab/pkg/pipeline"
)

// resultOptions are the output flags shared by the aggregating commands.
type resultOptions struct {
	json bool
}

func (o *resultOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.json, "json", false, "print results as JSON")
}

func (c *CLI) searchCommand() *cobra.Command {
	var (
		out    resultOptions
		source string
		num    int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search meme images across providers",
		Long: `Search fans the query out to every configured provider (or only --source),
merges and deduplicates the results, and prints them.

With --source all, up to five matching Imgflip templates are appended.`,
		Example: `  memelab search "distracted boyfriend"
  memelab search cat --source giphy --num 10`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.SearchOptions{
				Query:  strings.Join(args, " "),
				Source: source,
				Num:    num,
			}
			return c.runResult(cmd, out, "Searching "+opts.Query, func(ctx context.Context, r *pipeline.Runner) (*pipeline.Result, error) {
				return r.Search(ctx, opts)
			})
		},
	}

	out.register(cmd)
	cmd.Flags().StringVarP(&source, "source", "s", pipeline.SourceAll, "provider id, or all")
	cmd.Flags().IntVarP(&num, "num", "n", pipeline.DefaultNum, "number of results to request")
	return cmd
}

func (c *CLI) trendingCommand() *cobra.Command {
	var out resultOptions

	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Show trending memes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResult(cmd, out, "Fetching trending memes", func(ctx context.Context, r *pipeline.Runner) (*pipeline.Result, error) {
				return r.Trending(ctx)
			})
		},
	}

	out.register(cmd)
	return cmd
}

func (c *CLI) categoryCommand() *cobra.Command {
	var (
		out  resultOptions
		page int
		num  int
	)

	cmd := &cobra.Command{
		Use:   "category <id>",
		Short: "Show memes of a category",
		Long:  `Category runs the canned query of a category. See "memelab categories" for the ids.`,
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var ids []string
			for _, cat := range category.All() {
				ids = append(ids, cat.ID)
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.CategoryOptions{Category: args[0], Page: page, Num: num}
			return c.runResult(cmd, out, "Fetching "+category.DisplayName(args[0]), func(ctx context.Context, r *pipeline.Runner) (*pipeline.Result, error) {
				return r.Category(ctx, opts)
			})
		},
	}

	out.register(cmd)
	cmd.Flags().IntVarP(&page, "page", "p", pipeline.DefaultPage, "page number")
	cmd.Flags().IntVarP(&num, "num", "n", pipeline.DefaultNum, "number of results to request")
	return cmd
}

// runResult builds a runner, runs fn behind a spinner and prints the result.
func (c *CLI) runResult(cmd *cobra.Command, out resultOptions, message string, fn func(context.Context, *pipeline.Runner) (*pipeline.Result, error)) error {
	ctx := cmd.Context()
	runner, _, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	var spinner *Spinner
	if !out.json && !c.verbose {
		spinner = newSpinner(ctx, cmd.ErrOrStderr(), message)
		spinner.Start()
	}
	res, err := fn(ctx, runner)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("%s: %d results", strings.ToLower(message), len(res.Results)))

	w := cmd.OutOrStdout()
	if out.json {
		return printJSON(w, res)
	}

	printSuccess(w, "%s", StyleTitle.Render(fmt.Sprintf("%d results", len(res.Results))))
	printStats(w, len(res.Results), res.Cached)
	printSourceStatus(w, res.Status)
	if len(res.Results) == 0 && allUnavailable(res.Status) {
		printWarning(w, "no provider is configured; set one of the *_API_KEY variables")
		return nil
	}
	fmt.Fprintln(w)
	printResults(w, res.Results)
	return nil
}

func allUnavailable(status meme.SourceStatus) bool {
	for _, s := range status {
		if s != meme.StatusUnavailable {
			return false
		}
	}
	return true
}
