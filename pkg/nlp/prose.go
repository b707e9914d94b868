// Package nlp wraps the in-process prose English model behind the small
// surface the extraction pipeline needs: POS-tagged tokens and named
// entities. The model ships with the library, so construction never
// touches disk or network.
package nlp

import (
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// Entity is a labeled span found by the model, e.g. a PERSON mention.
type Entity struct {
	Text  string
	Label string
}

// Token is a single tokenized word with its Penn Treebank tag.
type Token struct {
	Text string
	Tag  string
}

// ProseTagger runs the prose English model. Safe for concurrent use; the
// underlying model is read-only after load.
type ProseTagger struct{}

// NewProseTagger creates a tagger backed by the built-in English model.
func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

// DetectEntities returns the named entities found in text.
func (t *ProseTagger) DetectEntities(text string) ([]Entity, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, err
	}
	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, Entity{Text: e.Text, Label: e.Label})
	}
	return out, nil
}

// Tokens returns the POS-tagged tokens of text.
func (t *ProseTagger) Tokens(text string) ([]Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, err
	}
	toks := doc.Tokens()
	out := make([]Token, 0, len(toks))
	for _, tok := range toks {
		out = append(out, Token{Text: tok.Text, Tag: tok.Tag})
	}
	return out, nil
}
