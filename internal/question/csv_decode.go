package question

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	util "github.com/learnkick/learnkick-admin/internal/utils"
)

var (
	leadingIntPattern   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloatPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
)

// Decoder turns exported CSV text back into builder records. The zero value
// uses the system clock and the standard time limit.
type Decoder struct {
	Now              util.Clock
	DefaultTimeLimit int
}

// DecodeCSV decodes with a zero Decoder.
func DecodeCSV(text string) []Builder {
	return Decoder{}.Decode(text)
}

// Decode returns one builder per non-blank line after the header. It never
// fails: unknown columns are ignored, blank cells leave fields unset and
// unparsable numbers are dropped. Validation is up to the caller.
func (d Decoder) Decode(text string) []Builder {
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return []Builder{}
	}

	clock := d.Now
	if clock == nil {
		clock = util.SystemClock
	}
	now := clock()
	stamp := util.FormatISO(now)
	millis := util.UnixMillis(now)

	timeLimit := d.DefaultTimeLimit
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}

	headers := splitCSVLine(strings.TrimPrefix(lines[0], "\ufeff"))
	for i, h := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	out := make([]Builder, 0, len(lines)-1)
	for index, line := range lines[1:] {
		values := splitCSVLine(line)
		var b Builder
		for i, header := range headers {
			if i >= len(values) {
				break
			}
			value := strings.TrimSpace(values[i])
			if value == "" {
				continue
			}
			b.set(header, value)
		}

		if b.ID == nil {
			b.ID = ptr(fmt.Sprintf("imported-%d-%d", millis, index))
		}
		if b.CreatedAt == nil {
			b.CreatedAt = ptr(stamp)
		}
		if b.UpdatedAt == nil {
			b.UpdatedAt = ptr(stamp)
		}
		if b.TimeLimit == nil {
			b.TimeLimit = ptr(timeLimit)
		}
		b.normalize()

		out = append(out, b)
	}
	return out
}

func (b *Builder) set(header, value string) {
	switch header {
	case "id":
		b.ID = ptr(value)
	case "type":
		b.Type = ptr(Type(value))
	case "subject":
		b.Subject = ptr(value)
	case "grade":
		if v, ok := leadingInt(value); ok {
			b.Grade = ptr(v)
		}
	case "difficulty":
		if v, ok := leadingInt(value); ok {
			b.Difficulty = ptr(v)
		}
	case "language":
		b.Language = ptr(value)
	case "question":
		b.Question = ptr(value)
	case "statement":
		b.Statement = ptr(value)
	case "answer a", "answer b", "answer c", "answer d":
		if b.Answers == nil {
			b.Answers = make([]string, answerColumns)
		}
		b.Answers[header[len(header)-1]-'a'] = value
	case "correct index":
		if v, ok := leadingFloat(value); ok && math.Abs(v) < math.MaxInt32 {
			b.CorrectIndex = ptr(int(math.Floor(v)))
		}
	case "correct answer":
		b.CorrectAnswer = ptr(value)
	case "explanation":
		b.Explanation = ptr(value)
	case "unit":
		b.Unit = ptr(value)
	case "image url":
		b.ImageURL = ptr(value)
	case "tags":
		b.Tags = splitTags(value)
	case "created at":
		b.CreatedAt = ptr(value)
	case "updated at":
		b.UpdatedAt = ptr(value)
	}
}

// normalize applies the per-type cleanup of imported rows.
func (b *Builder) normalize() {
	if b.Type == nil {
		return
	}
	switch *b.Type {
	case TypeTrueFalse:
		b.Answers = nil
		if b.CorrectAnswer == nil {
			b.CorrectAnswer = ptr("True")
		}
	case TypeNumberInput:
		b.Answers = nil
	case TypeMultipleChoice, TypeImageQuestion:
		if b.Answers == nil {
			return
		}
		answers := make([]string, 0, len(b.Answers))
		for _, a := range b.Answers {
			if strings.TrimSpace(a) != "" {
				answers = append(answers, a)
			}
		}
		b.Answers = answers
		if b.CorrectIndex != nil && *b.CorrectIndex >= 0 && *b.CorrectIndex < len(answers) {
			b.CorrectAnswer = ptr(answers[*b.CorrectIndex])
		}
	}
}

func nonBlankLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitCSVLine splits one line on commas outside quotes. A quote toggles the
// quoted state and is not part of the value, except for a doubled quote
// inside a quoted field, which yields a literal quote.
func splitCSVLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				current.WriteRune('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(c)
		}
	}
	return append(fields, current.String())
}

func splitTags(value string) []string {
	parts := strings.Split(value, ";")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

func leadingInt(s string) (int, bool) {
	m := leadingIntPattern.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return v, true
}

func leadingFloat(s string) (float64, bool) {
	m := leadingFloatPattern.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func ptr[T any](v T) *T {
	return &v
}
