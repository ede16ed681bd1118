package question

import (
	"fmt"
	"strconv"
	"strings"
)

// FacetAll is the external spelling of "no constraint".
const FacetAll = "all"

// Facet is one filter dimension: either a concrete value or no constraint.
type Facet[T comparable] struct {
	value T
	set   bool
}

func AnyFacet[T comparable]() Facet[T] {
	return Facet[T]{}
}

func OnlyFacet[T comparable](v T) Facet[T] {
	return Facet[T]{value: v, set: true}
}

func (f Facet[T]) Value() (T, bool) {
	return f.value, f.set
}

func (f Facet[T]) Matches(v T) bool {
	return !f.set || f.value == v
}

func (f Facet[T]) String() string {
	if !f.set {
		return FacetAll
	}
	return fmt.Sprint(f.value)
}

func ParseStringFacet(s string) Facet[string] {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, FacetAll) {
		return AnyFacet[string]()
	}
	return OnlyFacet(s)
}

func ParseIntFacet(s string) (Facet[int], error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, FacetAll) {
		return AnyFacet[int](), nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Facet[int]{}, fmt.Errorf("invalid facet value %q: %w", s, err)
	}
	return OnlyFacet(v), nil
}

// FilterSpec is a conjunction of facets plus a free-text search.
type FilterSpec struct {
	Subject    Facet[string]
	Grade      Facet[int]
	Difficulty Facet[int]
	Type       Facet[Type]
	Language   Facet[Language]
	Search     string
}

func DefaultFilterSpec() FilterSpec {
	return FilterSpec{}
}

// Filter returns the questions matching every active facet, in input order.
// The input slice is not modified.
func Filter(qs []Question, spec FilterSpec) []Question {
	search := strings.ToLower(spec.Search)

	out := make([]Question, 0, len(qs))
	for _, q := range qs {
		if spec.matches(q, search) {
			out = append(out, q)
		}
	}
	return out
}

func (spec FilterSpec) matches(q Question, search string) bool {
	base := q.Common()
	if !spec.Subject.Matches(base.Subject) ||
		!spec.Grade.Matches(base.Grade) ||
		!spec.Difficulty.Matches(base.Difficulty) ||
		!spec.Type.Matches(q.QuestionType()) ||
		!spec.Language.Matches(base.Language) {
		return false
	}
	if search == "" {
		return true
	}
	return matchesText(q, search)
}

// matchesText reports whether the prompt, statement or any answer contains
// the lower-cased search string.
func matchesText(q Question, search string) bool {
	if strings.Contains(strings.ToLower(Prompt(q)), search) {
		return true
	}
	for _, a := range Answers(q) {
		if strings.Contains(strings.ToLower(a), search) {
			return true
		}
	}
	return false
}
