package faq

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ParseLanguage canonicalises a BCP 47 tag to its base language code.
// Blank input resolves to CanonicalLanguage.
func ParseLanguage(raw string) (Language, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return CanonicalLanguage, nil
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse language %q: %w", raw, err)
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return "", fmt.Errorf("unknown language %q", raw)
	}
	return Language(base.String()), nil
}

// languageSet is the set of languages a listing can be projected into.
type languageSet struct {
	targets []Language
	index   map[Language]struct{}
}

func newLanguageSet(targets []Language) languageSet {
	set := languageSet{index: make(map[Language]struct{}, len(targets))}
	for _, lang := range targets {
		if lang == CanonicalLanguage {
			continue
		}
		if _, dup := set.index[lang]; dup {
			continue
		}
		set.index[lang] = struct{}{}
		set.targets = append(set.targets, lang)
	}
	return set
}

func (s languageSet) supports(lang Language) bool {
	if lang == CanonicalLanguage {
		return true
	}
	_, ok := s.index[lang]
	return ok
}

func (s languageSet) all() []Language {
	out := make([]Language, 0, len(s.targets)+1)
	out = append(out, CanonicalLanguage)
	return append(out, s.targets...)
}

// project renders a record in lang. A record without a usable translation
// for lang (for example one created before lang was configured) falls back
// to the canonical fields.
func project(record Record, lang Language) Item {
	item := Item{
		ID:       record.ID,
		Question: record.Question,
		Answer:   record.Answer,
	}
	if lang == CanonicalLanguage {
		return item
	}
	tr, ok := record.Translations[lang]
	if !ok || tr.Question == "" || tr.Answer == "" {
		return item
	}
	item.Question = tr.Question
	item.Answer = tr.Answer
	return item
}
