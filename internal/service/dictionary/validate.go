package dictionary

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/wordvault-backend/internal/domain"
)

// errEmptyDefinition signals the legacy flat payload variant carried no
// usable definition. It is a not-found outcome, not a validation failure.
var errEmptyDefinition = fmt.Errorf("empty definition: %w", domain.ErrNotFound)

// ParseEntryPayload converts an untrusted decoded-JSON payload (from the
// generative provider or a client draft) into a total WordEntry. This is
// the single trust boundary between "maybe well-formed JSON" and a domain
// object: required fields are enforced, every optional field is defaulted,
// and list/string shapes are coerced.
//
// Two payload variants are accepted:
//   - the canonical nested shape with a "meanings" array, where a non-empty
//     "word" is required;
//   - the legacy flat shape with a top-level "definition" and no "meanings",
//     which is lifted into a single meaning group. Here the definition is
//     checked before anything else: an empty flat definition returns a
//     domain.ErrNotFound-wrapped error, never a validation error, and a
//     missing "word" defaults to "" (callers that persist supply the key).
func ParseEntryPayload(raw map[string]any) (*domain.WordEntry, error) {
	if raw == nil {
		return nil, domain.NewValidationError("payload", "Payload is required")
	}

	_, hasMeanings := raw["meanings"]
	_, hasFlat := raw["definition"]
	isFlat := !hasMeanings && hasFlat

	var flat domain.Meaning
	if isFlat {
		var err error
		flat, err = liftFlatDefinition(raw)
		if err != nil {
			return nil, err
		}
	}

	wordStr, err := parseWord(raw, isFlat)
	if err != nil {
		return nil, err
	}

	entry := &domain.WordEntry{
		Word:          wordStr,
		IPA:           asString(raw["ipa"]),
		Meanings:      parseMeanings(raw["meanings"]),
		Phrases:       parsePhrases(raw["phrases"]),
		OriginDetails: parseOrigin(raw["originDetails"]),
		Translation:   parseTranslation(raw["translation"]),
	}
	if isFlat {
		entry.Meanings = []domain.Meaning{flat}
	}

	return entry, nil
}

// parseWord enforces the "word" field. The flat variant tolerates a missing
// or malformed word (it coerces to ""); the nested variant requires a
// non-empty string.
func parseWord(raw map[string]any, lenient bool) (string, error) {
	if lenient {
		return asString(raw["word"]), nil
	}

	wordVal, ok := raw["word"]
	if !ok {
		return "", domain.NewValidationError("word", "Word is required")
	}
	wordStr, ok := wordVal.(string)
	if !ok {
		return "", domain.NewValidationError("word", "Word must be a string")
	}
	wordStr = strings.TrimSpace(wordStr)
	if wordStr == "" {
		return "", domain.NewValidationError("word", "Word is required")
	}
	return wordStr, nil
}

// liftFlatDefinition converts the flat single-meaning shape into one
// meaning group. Empty definition after coercion means the provider had
// nothing usable, which is a not-found signal.
func liftFlatDefinition(raw map[string]any) (domain.Meaning, error) {
	def := asString(raw["definition"])
	if def == "" {
		return domain.Meaning{}, errEmptyDefinition
	}

	return domain.Meaning{
		PartOfSpeech: asString(raw["partOfSpeech"]),
		Definitions: []domain.Definition{{
			Definition: def,
			Example:    asString(raw["example"]),
			Synonyms:   asStringList(raw["synonyms"]),
			Antonyms:   asStringList(raw["antonyms"]),
		}},
	}, nil
}

func parseMeanings(v any) []domain.Meaning {
	items, ok := v.([]any)
	if !ok {
		return []domain.Meaning{}
	}

	meanings := make([]domain.Meaning, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		meanings = append(meanings, domain.Meaning{
			PartOfSpeech: asString(m["partOfSpeech"]),
			Forms:        asString(m["forms"]),
			Definitions:  parseDefinitions(m["definitions"], true),
		})
	}
	return meanings
}

// parseDefinitions decodes a definitions array. allowSubs bounds the
// nesting to one level: subs of subs are dropped.
func parseDefinitions(v any, allowSubs bool) []domain.Definition {
	items, ok := v.([]any)
	if !ok {
		return []domain.Definition{}
	}

	defs := make([]domain.Definition, 0, len(items))
	for _, item := range items {
		d, ok := item.(map[string]any)
		if !ok {
			continue
		}
		def := domain.Definition{
			Definition: asString(d["definition"]),
			Example:    asString(d["example"]),
			Synonyms:   asStringList(d["synonyms"]),
			Antonyms:   asStringList(d["antonyms"]),
		}
		if allowSubs {
			def.Subs = parseDefinitions(d["subs"], false)
			if len(def.Subs) == 0 {
				def.Subs = nil
			}
		}
		if def.Definition == "" && len(def.Subs) == 0 {
			continue
		}
		defs = append(defs, def)
	}
	return defs
}

func parsePhrases(v any) []domain.Phrase {
	items, ok := v.([]any)
	if !ok {
		return []domain.Phrase{}
	}

	phrases := make([]domain.Phrase, 0, len(items))
	for _, item := range items {
		p, ok := item.(map[string]any)
		if !ok {
			continue
		}
		phrase := domain.Phrase{
			Phrase:  asString(p["phrase"]),
			Meaning: asString(p["meaning"]),
			Example: asString(p["example"]),
		}
		if phrase.Phrase == "" {
			continue
		}
		phrases = append(phrases, phrase)
	}
	return phrases
}

func parseOrigin(v any) domain.OriginDetails {
	m, ok := v.(map[string]any)
	if !ok {
		return domain.OriginDetails{}
	}
	return domain.OriginDetails{
		Text: asString(m["text"]),
		Flow: asStringList(m["flow"]),
	}
}

func parseTranslation(v any) domain.Translation {
	m, ok := v.(map[string]any)
	if !ok {
		return domain.Translation{}
	}
	return domain.Translation{
		Primary: asString(m["primary"]),
		Others:  asStringList(m["others"]),
	}
}

// asString coerces a scalar-string field. Arrays are flattened to a
// comma-joined string (items trimmed, empties dropped, order preserved);
// anything else defaults to "".
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case []any:
		parts := asStringList(t)
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

// asStringList coerces a list-of-strings field. A bare string becomes a
// one-element list; items are trimmed and empties dropped.
func asStringList(v any) []string {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		return []string{s}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				continue
			}
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			out = append(out, s)
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}
