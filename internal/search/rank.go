// Package search ranks job postings against a cleaned free-text query using
// weighted multi-field term matching with a tiered fallback strategy.
package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/mkaneda/talentboard/internal/types"
)

// Field weights, in order of importance.
const (
	titleWeight       = 4.0
	skillsWeight      = 3.0
	descriptionWeight = 2.0
	companyWeight     = 1.0
)

// Ranked is one posting's position in the relevance order. Rank is the
// ordinal position within the tier that produced the result and is used as
// a tie-break key downstream.
type Ranked struct {
	JobID uuid.UUID
	Rank  int
}

// document is a posting's searchable text split per field.
type document struct {
	id     uuid.UUID
	order  int
	fields []field
}

type field struct {
	tokens []string
	raw    string
	weight float64
}

// Rank orders the corpus by text relevance to the cleaned query. Tier one
// requires every query term to prefix-match; if that produces nothing and
// the query has more than one term, tier two accepts any term; tier three
// falls back to a plain substring match, so a query only returns empty when
// the corpus genuinely contains nothing relevant. An empty query returns nil.
func Rank(cleanedQuery string, corpus []types.JobPosting) []Ranked {
	terms := tokenize(cleanedQuery)
	if len(terms) == 0 {
		return nil
	}

	docs := make([]document, len(corpus))
	for i := range corpus {
		docs[i] = buildDocument(&corpus[i], i)
	}

	results := matchTerms(docs, terms, true)
	if len(results) == 0 && len(terms) > 1 {
		results = matchTerms(docs, terms, false)
	}
	if len(results) == 0 {
		results = matchSubstring(docs, cleanedQuery)
	}
	return results
}

func buildDocument(p *types.JobPosting, order int) document {
	return document{
		id:    p.ID,
		order: order,
		fields: []field{
			{tokens: tokenize(p.Title), raw: strings.ToLower(p.Title), weight: titleWeight},
			{tokens: tokenize(strings.Join(p.Skills, " ")), raw: strings.ToLower(strings.Join(p.Skills, " ")), weight: skillsWeight},
			{tokens: tokenize(p.Description), raw: strings.ToLower(p.Description), weight: descriptionWeight},
			{tokens: tokenize(p.CompanyName), raw: strings.ToLower(p.CompanyName), weight: companyWeight},
		},
	}
}

// matchTerms scores documents by prefix-matched terms. With conjunctive set,
// every term must match somewhere; otherwise any term suffices. Each matched
// term contributes the weight of the best field it hits.
func matchTerms(docs []document, terms []string, conjunctive bool) []Ranked {
	type scored struct {
		doc   *document
		score float64
	}
	var hits []scored

	for i := range docs {
		doc := &docs[i]
		total := 0.0
		matchedAll := true
		matchedAny := false
		for _, term := range terms {
			best := 0.0
			for _, f := range doc.fields {
				if f.weight <= best {
					continue
				}
				if prefixMatch(f.tokens, term) {
					best = f.weight
				}
			}
			if best > 0 {
				matchedAny = true
				total += best
			} else {
				matchedAll = false
			}
		}
		if conjunctive && !matchedAll {
			continue
		}
		if !matchedAny {
			continue
		}
		hits = append(hits, scored{doc: doc, score: total})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].doc.order < hits[j].doc.order
	})

	results := make([]Ranked, len(hits))
	for i, h := range hits {
		results[i] = Ranked{JobID: h.doc.id, Rank: i}
	}
	return results
}

// matchSubstring is the last tier: a case-insensitive substring scan across
// all fields, keeping corpus order among equally-weighted hits.
func matchSubstring(docs []document, cleanedQuery string) []Ranked {
	needle := strings.ToLower(strings.TrimSpace(cleanedQuery))
	if needle == "" {
		return nil
	}

	type scored struct {
		doc   *document
		score float64
	}
	var hits []scored
	for i := range docs {
		doc := &docs[i]
		total := 0.0
		for _, f := range doc.fields {
			if strings.Contains(f.raw, needle) {
				total += f.weight
			}
		}
		if total > 0 {
			hits = append(hits, scored{doc: doc, score: total})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].doc.order < hits[j].doc.order
	})

	results := make([]Ranked, len(hits))
	for i, h := range hits {
		results[i] = Ranked{JobID: h.doc.id, Rank: i}
	}
	return results
}

func prefixMatch(tokens []string, term string) bool {
	for _, tok := range tokens {
		if strings.HasPrefix(tok, term) {
			return true
		}
	}
	return false
}

// tokenize lowercases and splits text into alphanumeric runs.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
