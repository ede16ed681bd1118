package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/learnkick/learnkick-admin/internal/config"
	"github.com/learnkick/learnkick-admin/internal/helpdocs"
	"github.com/spf13/cobra"
)

func newDocsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Search and read the admin documentation",
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.docsCorpus, "corpus", "", "documentation YAML file (default: built-in)")
	flags.StringVarP(&a.docsLanguage, "language", "l", "", "documentation language (en, de, fr, sq)")

	cmd.AddCommand(newDocsSearchCmd(a), newDocsArticleCmd(a))
	return cmd
}

func (a *app) docsLanguageSetting() helpdocs.Language {
	return helpdocs.Language(strings.ToLower(a.container.Settings.Docs.Language))
}

func newDocsSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query...>",
		Short: "Rank articles by how well they match the query",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			results, err := a.container.DocumentationContainer.Service.Search(a.ctx, a.docsLanguageSetting(), query)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.jsonOutput() {
				return config.JSON(w, results)
			}
			if len(results) == 0 {
				_, err := fmt.Fprintf(w, "No results for %q\n", query)
				return err
			}

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{
					strconv.Itoa(r.RelevanceScore),
					r.Section.Title,
					r.Article.Title,
					truncate(oneLine(r.MatchedContent), 80),
				})
			}
			renderTable(w, []string{"Score", "Section", "Article", "Excerpt"}, rows)
			_, err = fmt.Fprintf(w, "%d results for %q\n", len(results), query)
			return err
		},
	}
}

func newDocsArticleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "article <id>",
		Short: "Show one article and its related articles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.container.DocumentationContainer.Service.GetArticle(a.ctx, a.docsLanguageSetting(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.jsonOutput() {
				return config.JSON(w, view)
			}
			printArticle(w, view)
			return nil
		},
	}
}
