package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/learnkick/learnkick-admin/internal/helpdocs"
	"github.com/learnkick/learnkick-admin/internal/question"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(w, t)
}

func printQuestions(w io.Writer, qs []question.Question) {
	if len(qs) == 0 {
		fmt.Fprintln(w, "No questions")
		return
	}
	rows := make([][]string, 0, len(qs))
	for _, q := range qs {
		rows = append(rows, questionRow(q))
	}
	renderTable(w, []string{"ID", "Type", "Subject", "Grade", "Difficulty", "Language", "Prompt"}, rows)
}

func printIssues(w io.Writer, issues []question.ImportIssue) {
	rows := make([][]string, 0, len(issues))
	for _, is := range issues {
		rows = append(rows, []string{strconv.Itoa(is.Row), is.ID, is.Message})
	}
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%d invalid rows", len(issues))))
	renderTable(w, []string{"Row", "ID", "Problem"}, rows)
}

func printArticle(w io.Writer, view *helpdocs.ArticleView) {
	a := view.Article

	fmt.Fprintln(w, titleStyle.Render(a.Title))
	meta := fmt.Sprintf("%s · %d min read · %s · updated %s", view.Section, a.ReadTime, a.Difficulty, a.LastUpdated)
	fmt.Fprintln(w, mutedStyle.Render(meta))
	if len(a.Tags) > 0 {
		fmt.Fprintln(w, mutedStyle.Render("tags: "+strings.Join(a.Tags, ", ")))
	}
	if a.VideoURL != "" {
		fmt.Fprintln(w, mutedStyle.Render("video: "+a.VideoURL))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.TrimSpace(a.Content))

	if len(view.Related) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Related"))
	for _, r := range view.Related {
		fmt.Fprintf(w, "  %s  %s\n", r.ID, r.Title)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
