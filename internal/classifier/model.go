package classifier

import (
	"strings"
	"unicode"

	"github.com/jbrukh/bayesian"
)

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "of": {}, "to": {}, "in": {}, "a": {}, "for": {},
	"is": {}, "on": {}, "with": {}, "as": {}, "by": {}, "at": {}, "from": {},
	"that": {}, "this": {}, "it": {}, "an": {}, "be": {}, "or": {}, "are": {},
	"was": {}, "will": {}, "has": {}, "have": {}, "had": {}, "but": {},
	"not": {}, "your": {}, "you": {}, "we": {}, "our": {},
}

// Model is a naive Bayes text classifier trained once at construction from
// the fixed corpus. It is immutable afterwards and safe for concurrent use.
type Model struct {
	classifier *bayesian.Classifier
	classes    []bayesian.Class
}

// NewModel trains a model on the built-in corpus.
func NewModel() *Model {
	classes := make([]bayesian.Class, len(Categories))
	for i, category := range Categories {
		classes[i] = bayesian.Class(category)
	}

	c := bayesian.NewClassifier(classes...)

	for _, class := range classes {
		c.Learn(tokenize(trainingCorpus[string(class)]), class)
	}

	return &Model{
		classifier: c,
		classes:    classes,
	}
}

// Predict returns the highest-scoring category for the given signal text.
// The second return value is false when the text carries no usable tokens or
// the model cannot pick a single winner.
func (m *Model) Predict(text string) (string, bool) {
	words := tokenize(text)
	if len(words) == 0 {
		return "", false
	}

	_, idx, strict := m.classifier.LogScores(words)
	if !strict {
		return "", false
	}

	return string(m.classes[idx]), true
}

func tokenize(text string) []string {
	var tokens []string

	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})

		if word == "" {
			continue
		}

		if _, skip := stopwords[word]; skip {
			continue
		}

		tokens = append(tokens, word)
	}

	return tokens
}
