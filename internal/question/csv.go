package question

import (
	"strconv"
	"strings"
)

// CSVHeaders is the fixed column order of question exports.
var CSVHeaders = []string{
	"ID",
	"Type",
	"Subject",
	"Grade",
	"Difficulty",
	"Language",
	"Question",
	"Statement",
	"Answer A",
	"Answer B",
	"Answer C",
	"Answer D",
	"Correct Index",
	"Correct Answer",
	"Explanation",
	"Unit",
	"Image URL",
	"Tags",
	"Created At",
	"Updated At",
}

const answerColumns = 4

// EncodeCSV renders questions as CSV text: a header row and one row per
// question in input order. Every field is quoted, embedded quotes are
// doubled and rows are joined with "\n". Answers beyond the fourth do not
// fit the layout and are not written.
func EncodeCSV(qs []Question) string {
	var sb strings.Builder
	writeCSVRow(&sb, CSVHeaders)
	for _, q := range qs {
		sb.WriteByte('\n')
		writeCSVRow(&sb, csvRecord(q))
	}
	return sb.String()
}

func writeCSVRow(sb *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(f, `"`, `""`))
		sb.WriteByte('"')
	}
}

func csvRecord(q Question) []string {
	base := q.Common()
	rec := make([]string, len(CSVHeaders))

	rec[0] = base.ID
	rec[1] = string(q.QuestionType())
	rec[2] = base.Subject
	rec[3] = intField(base.Grade)
	rec[4] = intField(base.Difficulty)
	rec[5] = string(base.Language)

	switch v := q.(type) {
	case *MultipleChoice:
		rec[6] = v.Question
		putAnswers(rec, v.Answers)
		rec[12] = strconv.Itoa(v.CorrectIndex)
	case *TrueFalse:
		rec[7] = v.Statement
		if v.Correct {
			rec[13] = "True"
		} else {
			rec[13] = "False"
		}
	case *NumberInput:
		rec[6] = v.Question
		rec[13] = strconv.FormatFloat(v.CorrectAnswer, 'f', -1, 64)
		rec[15] = v.Unit
	case *ImageQuestion:
		rec[6] = v.Question
		putAnswers(rec, v.Answers)
		rec[12] = strconv.Itoa(v.CorrectIndex)
		rec[16] = v.ImageURL
	}

	rec[14] = Explanation(q)
	rec[17] = strings.Join(base.Tags, ";")
	rec[18] = base.CreatedAt
	rec[19] = base.UpdatedAt
	return rec
}

func putAnswers(rec []string, answers []string) {
	for i := 0; i < answerColumns && i < len(answers); i++ {
		rec[8+i] = answers[i]
	}
}

// intField leaves unset (zero) numbers blank so they decode as absent.
func intField(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}
