package helpdocs

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageGerman   Language = "de"
	LanguageFrench   Language = "fr"
	LanguageAlbanian Language = "sq"
)

var AllLanguages = []Language{
	LanguageEnglish,
	LanguageGerman,
	LanguageFrench,
	LanguageAlbanian,
}

func (l Language) IsValid() bool {
	for _, v := range AllLanguages {
		if l == v {
			return true
		}
	}
	return false
}

type Article struct {
	ID              string     `json:"id" yaml:"id"`
	Title           string     `json:"title" yaml:"title"`
	Content         string     `json:"content" yaml:"content"`
	LastUpdated     string     `json:"lastUpdated" yaml:"lastUpdated"`
	ReadTime        int        `json:"readTime" yaml:"readTime"`
	Difficulty      Difficulty `json:"difficulty" yaml:"difficulty"`
	Tags            []string   `json:"tags" yaml:"tags"`
	RelatedArticles []string   `json:"relatedArticles,omitempty" yaml:"relatedArticles,omitempty"`
	VideoURL        string     `json:"videoUrl,omitempty" yaml:"videoUrl,omitempty"`
}

// Section owns its articles in display order.
type Section struct {
	ID       string    `json:"id" yaml:"id"`
	Title    string    `json:"title" yaml:"title"`
	Icon     string    `json:"icon" yaml:"icon"`
	Articles []Article `json:"articles" yaml:"articles"`
}

// SearchResult points into the searched sections. Section is only a lookup
// reference for grouping; the article is owned by that section.
type SearchResult struct {
	Article        *Article `json:"article"`
	Section        *Section `json:"-"`
	SectionID      string   `json:"sectionId"`
	RelevanceScore int      `json:"relevanceScore"`
	MatchedContent string   `json:"matchedContent"`
}

// Corpus is the documentation for one language.
type Corpus struct {
	Language Language  `json:"language" yaml:"language"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Article returns the article with the given id and the section holding it.
func (c *Corpus) Article(id string) (*Article, *Section, bool) {
	for si := range c.Sections {
		s := &c.Sections[si]
		for ai := range s.Articles {
			if s.Articles[ai].ID == id {
				return &s.Articles[ai], s, true
			}
		}
	}
	return nil, nil, false
}

// Related resolves the related article ids of id, in declared order. Ids that
// do not exist in the corpus are skipped.
func (c *Corpus) Related(id string) []*Article {
	a, _, ok := c.Article(id)
	if !ok {
		return []*Article{}
	}

	out := make([]*Article, 0, len(a.RelatedArticles))
	for _, rid := range a.RelatedArticles {
		if rel, _, ok := c.Article(rid); ok {
			out = append(out, rel)
		}
	}
	return out
}

func (c *Corpus) ArticleCount() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Articles)
	}
	return n
}
