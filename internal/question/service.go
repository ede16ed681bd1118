package question

import (
	"context"
	"errors"

	"github.com/learnkick/learnkick-admin/internal/config"
	"github.com/sirupsen/logrus"
)

var ErrInvalidRows = errors.New("csv contains invalid rows")

type ImportIssue struct {
	Row int    `json:"row"`
	ID  string `json:"id"`
	Err error  `json:"-"`
	// Message mirrors Err for JSON output.
	Message string `json:"message"`
}

type ImportReport struct {
	Questions []Question    `json:"questions"`
	Issues    []ImportIssue `json:"issues"`
}

type QuestionService interface {
	ExportCSV(ctx context.Context, qs []Question, spec FilterSpec) (string, int)
	ImportCSV(ctx context.Context, text string) *ImportReport
	FilterQuestions(ctx context.Context, qs []Question, spec FilterSpec) []Question
}

type questionService struct {
	decoder Decoder
}

func NewService(decoder Decoder) QuestionService {
	return &questionService{decoder: decoder}
}

func (s *questionService) ExportCSV(ctx context.Context, qs []Question, spec FilterSpec) (string, int) {
	log := config.WithContext(ctx)

	selected := Filter(qs, spec)
	csv := EncodeCSV(selected)

	log.WithFields(logrus.Fields{
		"total":    len(qs),
		"exported": len(selected),
	}).Info("Questions exported to CSV")
	return csv, len(selected)
}

// ImportCSV decodes text and converts every row. Rows that cannot be typed or
// fail Validate are reported as issues; the rest are returned in file order.
func (s *questionService) ImportCSV(ctx context.Context, text string) *ImportReport {
	log := config.WithContext(ctx)

	builders := s.decoder.Decode(text)
	report := &ImportReport{
		Questions: make([]Question, 0, len(builders)),
		Issues:    []ImportIssue{},
	}

	for i := range builders {
		b := &builders[i]
		row := i + 1

		q, err := b.Build()
		if err == nil {
			err = Validate(q)
		}
		if err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"row": row,
				"id":  deref(b.ID),
			}).Warn("Skipping invalid CSV row")
			report.Issues = append(report.Issues, ImportIssue{
				Row:     row,
				ID:      deref(b.ID),
				Err:     err,
				Message: err.Error(),
			})
			continue
		}
		report.Questions = append(report.Questions, q)
	}

	log.WithFields(logrus.Fields{
		"rows":     len(builders),
		"imported": len(report.Questions),
		"failed":   len(report.Issues),
	}).Info("CSV import completed")
	return report
}

func (s *questionService) FilterQuestions(ctx context.Context, qs []Question, spec FilterSpec) []Question {
	log := config.WithContext(ctx)

	out := Filter(qs, spec)
	log.WithFields(logrus.Fields{
		"subject":    spec.Subject.String(),
		"grade":      spec.Grade.String(),
		"difficulty": spec.Difficulty.String(),
		"type":       spec.Type.String(),
		"language":   spec.Language.String(),
		"search":     spec.Search,
		"matched":    len(out),
	}).Debug("Questions filtered")
	return out
}
