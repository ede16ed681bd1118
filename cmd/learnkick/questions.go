package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/learnkick/learnkick-admin/internal/config"
	"github.com/learnkick/learnkick-admin/internal/question"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var ErrInvalidFlag = errors.New("invalid flag value")

// filterFlags holds the facet flags shared by export and filter. Every facet
// accepts "all" for no constraint.
type filterFlags struct {
	subject    string
	grade      string
	difficulty string
	qtype      string
	language   string
	search     string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.subject, "subject", question.FacetAll, "subject to keep")
	flags.StringVar(&f.grade, "grade", question.FacetAll, "grade to keep (1-6)")
	flags.StringVar(&f.difficulty, "difficulty", question.FacetAll, "difficulty to keep (1-5)")
	flags.StringVar(&f.qtype, "type", question.FacetAll, "question type to keep")
	flags.StringVar(&f.language, "language", question.FacetAll, "language to keep (de, en, fr)")
	flags.StringVar(&f.search, "search", "", "text to look for in the prompt or answers")
}

func (f *filterFlags) spec() (question.FilterSpec, error) {
	spec := question.DefaultFilterSpec()
	spec.Subject = question.ParseStringFacet(f.subject)
	spec.Search = f.search

	var err error
	if spec.Grade, err = question.ParseIntFacet(f.grade); err != nil {
		return spec, fmt.Errorf("%w: --grade: %v", ErrInvalidFlag, err)
	}
	if spec.Difficulty, err = question.ParseIntFacet(f.difficulty); err != nil {
		return spec, fmt.Errorf("%w: --difficulty: %v", ErrInvalidFlag, err)
	}

	if v, ok := question.ParseStringFacet(f.qtype).Value(); ok {
		t := question.Type(strings.ToLower(v))
		if !t.IsValid() {
			return spec, fmt.Errorf("%w: --type %q", ErrInvalidFlag, v)
		}
		spec.Type = question.OnlyFacet(t)
	}
	if v, ok := question.ParseStringFacet(f.language).Value(); ok {
		l := question.Language(strings.ToLower(v))
		if !l.IsValid() {
			return spec, fmt.Errorf("%w: --language %q", ErrInvalidFlag, v)
		}
		spec.Language = question.OnlyFacet(l)
	}
	return spec, nil
}

func newQuestionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "questions",
		Aliases: []string{"q"},
		Short:   "Export, import and filter question banks",
	}
	cmd.AddCommand(
		newQuestionsExportCmd(a),
		newQuestionsImportCmd(a),
		newQuestionsFilterCmd(a),
	)
	return cmd
}

func newQuestionsExportCmd(a *app) *cobra.Command {
	var (
		in      string
		out     string
		filters filterFlags
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write questions as CSV",
		Long: `Load a JSON or YAML question file, keep the questions matching the
filter flags and write them as CSV, to stdout unless --out is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := filters.spec()
			if err != nil {
				return err
			}
			qs, err := question.LoadFile(in)
			if err != nil {
				return fmt.Errorf("failed to load questions: %w", err)
			}

			csv, n := a.container.QuestionContainer.Service.ExportCSV(a.ctx, qs, spec)
			if out == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), csv)
				return err
			}
			if err := os.WriteFile(out, []byte(csv+"\n"), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			config.WithContext(a.ctx).WithFields(logrus.Fields{
				"file":      out,
				"questions": n,
			}).Info("CSV written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "question file (.json, .yaml)")
	cmd.Flags().StringVar(&out, "out", "", "CSV file to write")
	_ = cmd.MarkFlagRequired("in")
	filters.register(cmd)
	return cmd
}

func newQuestionsImportCmd(a *app) *cobra.Command {
	var (
		in     string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Read questions from CSV",
		Long: `Decode a CSV export, convert and validate every row and print the
resulting questions. Invalid rows are reported and skipped; with --strict
any invalid row fails the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(in)
			if err != nil {
				return fmt.Errorf("failed to read CSV: %w", err)
			}

			report := a.container.QuestionContainer.Service.ImportCSV(a.ctx, string(data))

			w := cmd.OutOrStdout()
			if a.jsonOutput() {
				if err := config.JSON(w, report); err != nil {
					return err
				}
			} else {
				printQuestions(w, report.Questions)
				if len(report.Issues) > 0 {
					printIssues(w, report.Issues)
				}
			}

			if strict && len(report.Issues) > 0 {
				return fmt.Errorf("%w: %d of %d rows", question.ErrInvalidRows,
					len(report.Issues), len(report.Issues)+len(report.Questions))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "CSV file to import")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any row is invalid")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func newQuestionsFilterCmd(a *app) *cobra.Command {
	var (
		in      string
		filters filterFlags
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "List the questions matching the filter flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := filters.spec()
			if err != nil {
				return err
			}
			qs, err := question.LoadFile(in)
			if err != nil {
				return fmt.Errorf("failed to load questions: %w", err)
			}

			matched := a.container.QuestionContainer.Service.FilterQuestions(a.ctx, qs, spec)

			w := cmd.OutOrStdout()
			if a.jsonOutput() {
				data, err := question.MarshalQuestions(matched)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(w, string(data))
				return err
			}
			printQuestions(w, matched)
			_, err = fmt.Fprintf(w, "%d of %d questions\n", len(matched), len(qs))
			return err
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "question file (.json, .yaml)")
	_ = cmd.MarkFlagRequired("in")
	filters.register(cmd)
	return cmd
}

func questionRow(q question.Question) []string {
	b := q.Common()
	return []string{
		b.ID,
		string(q.QuestionType()),
		b.Subject,
		strconv.Itoa(b.Grade),
		strconv.Itoa(b.Difficulty),
		string(b.Language),
		truncate(question.Prompt(q), 60),
	}
}
