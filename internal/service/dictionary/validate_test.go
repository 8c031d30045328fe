package dictionary

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordvault-backend/internal/domain"
)

// decode is a helper to feed realistic decoded-JSON values (float64 numbers,
// []any arrays) rather than hand-built Go literals.
func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &m))
	return m
}

func TestParseEntryPayload_Defaulting(t *testing.T) {
	t.Parallel()

	entry, err := ParseEntryPayload(decode(t, `{"word": "cat", "ipa": "/kæt/"}`))
	require.NoError(t, err)

	assert.Equal(t, "cat", entry.Word)
	assert.Equal(t, "/kæt/", entry.IPA)
	// Every optional field is total: present and empty, never absent.
	assert.NotNil(t, entry.Meanings)
	assert.Empty(t, entry.Meanings)
	assert.NotNil(t, entry.Phrases)
	assert.Empty(t, entry.Phrases)
	assert.Equal(t, domain.OriginDetails{}, entry.OriginDetails)
	assert.Equal(t, domain.Translation{}, entry.Translation)
}

func TestParseEntryPayload_MissingWord(t *testing.T) {
	t.Parallel()

	_, err := ParseEntryPayload(decode(t, `{"ipa": "/x/"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "word", ve.Field())
}

func TestParseEntryPayload_WordWrongType(t *testing.T) {
	t.Parallel()

	_, err := ParseEntryPayload(decode(t, `{"word": 42}`))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = ParseEntryPayload(decode(t, `{"word": ["cat"]}`))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = ParseEntryPayload(decode(t, `{"word": "   "}`))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseEntryPayload_NilPayload(t *testing.T) {
	t.Parallel()

	_, err := ParseEntryPayload(nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseEntryPayload_NestedShape(t *testing.T) {
	t.Parallel()

	entry, err := ParseEntryPayload(decode(t, `{
		"word": "scoop",
		"ipa": "/skuːp/",
		"meanings": [
			{
				"partOfSpeech": "noun",
				"forms": "noun: scoop; plural noun: scoops",
				"definitions": [
					{
						"definition": "a utensil resembling a spoon",
						"example": "the powder is packed in tubs",
						"synonyms": ["spoon", "ladle"],
						"antonyms": [],
						"subs": [
							{"definition": "a short-handled deep shovel", "subs": [{"definition": "too deep"}]}
						]
					}
				]
			}
		],
		"phrases": [{"phrase": "scoop up", "meaning": "pick up quickly", "example": "she scooped up the child"}],
		"originDetails": {"text": "early 14th century", "flow": ["MIDDLE DUTCH", "ENGLISH"]},
		"translation": {"primary": "ковш", "others": ["черпак"]}
	}`))
	require.NoError(t, err)

	require.Len(t, entry.Meanings, 1)
	m := entry.Meanings[0]
	assert.Equal(t, "noun", m.PartOfSpeech)
	assert.Equal(t, "noun: scoop; plural noun: scoops", m.Forms)
	require.Len(t, m.Definitions, 1)

	d := m.Definitions[0]
	assert.Equal(t, []string{"spoon", "ladle"}, d.Synonyms)
	assert.Nil(t, d.Antonyms)
	// Nesting is bounded to one level: subs survive, subs-of-subs are dropped.
	require.Len(t, d.Subs, 1)
	assert.Equal(t, "a short-handled deep shovel", d.Subs[0].Definition)
	assert.Nil(t, d.Subs[0].Subs)

	require.Len(t, entry.Phrases, 1)
	assert.Equal(t, "scoop up", entry.Phrases[0].Phrase)
	assert.Equal(t, []string{"MIDDLE DUTCH", "ENGLISH"}, entry.OriginDetails.Flow)
	assert.Equal(t, "ковш", entry.Translation.Primary)
}

func TestParseEntryPayload_FlatVariant(t *testing.T) {
	t.Parallel()

	entry, err := ParseEntryPayload(decode(t, `{
		"word": "serendipity",
		"partOfSpeech": "noun",
		"definition": "finding something good without looking for it",
		"example": "pure serendipity",
		"synonyms": ["luck", "chance"],
		"antonyms": "misfortune"
	}`))
	require.NoError(t, err)

	require.Len(t, entry.Meanings, 1)
	m := entry.Meanings[0]
	assert.Equal(t, "noun", m.PartOfSpeech)
	require.Len(t, m.Definitions, 1)
	assert.Equal(t, "finding something good without looking for it", m.Definitions[0].Definition)
	assert.Equal(t, []string{"luck", "chance"}, m.Definitions[0].Synonyms)
	// Bare string where a list is expected becomes a one-element list.
	assert.Equal(t, []string{"misfortune"}, m.Definitions[0].Antonyms)
}

func TestParseEntryPayload_FlatEmptyDefinition_NotFound(t *testing.T) {
	t.Parallel()

	for _, payload := range []string{
		`{"word": "qwertyuiop", "definition": ""}`,
		`{"word": "qwertyuiop", "definition": "   "}`,
		`{"word": "qwertyuiop", "definition": null}`,
		`{"definition": ""}`,
		`{"definition": null}`,
	} {
		_, err := ParseEntryPayload(decode(t, payload))
		assert.ErrorIs(t, err, domain.ErrNotFound, "payload %s", payload)
		assert.False(t, errors.Is(err, domain.ErrValidation), "payload %s must not be a validation failure", payload)
	}
}

func TestParseEntryPayload_FlatMissingWord(t *testing.T) {
	t.Parallel()

	// The flat variant tolerates a missing word: the caller supplies the
	// key. The definition check decides the outcome, nothing else.
	entry, err := ParseEntryPayload(decode(t, `{
		"partOfSpeech": "noun",
		"definition": "finding something good without looking for it"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "", entry.Word)
	require.Len(t, entry.Meanings, 1)
	assert.Equal(t, "finding something good without looking for it",
		entry.Meanings[0].Definitions[0].Definition)
}

func TestParseEntryPayload_FlatWordWrongTypeTolerated(t *testing.T) {
	t.Parallel()

	entry, err := ParseEntryPayload(decode(t, `{"word": 42, "definition": "a number"}`))
	require.NoError(t, err)
	assert.Equal(t, "", entry.Word)
}

func TestParseEntryPayload_ArrayWhereStringExpected(t *testing.T) {
	t.Parallel()

	entry, err := ParseEntryPayload(decode(t, `{
		"word": "cat",
		"ipa": [" /kæt/ ", "", "/kat/"]
	}`))
	require.NoError(t, err)

	// Arrays flatten to a delimiter-joined string, trimmed, empties dropped.
	assert.Equal(t, "/kæt/, /kat/", entry.IPA)
}

func TestParseEntryPayload_MalformedOptionalShapes(t *testing.T) {
	t.Parallel()

	entry, err := ParseEntryPayload(decode(t, `{
		"word": "cat",
		"ipa": 7,
		"meanings": "not-an-array",
		"phrases": [42, {"meaning": "no phrase text"}],
		"originDetails": "latin",
		"translation": [1, 2]
	}`))
	require.NoError(t, err, "wrong-typed optional fields must default, not fail")

	assert.Equal(t, "", entry.IPA)
	assert.Empty(t, entry.Meanings)
	assert.Empty(t, entry.Phrases)
	assert.Equal(t, domain.OriginDetails{}, entry.OriginDetails)
	assert.Equal(t, domain.Translation{}, entry.Translation)
}

func TestParseEntryPayload_SkipsEmptyDefinitions(t *testing.T) {
	t.Parallel()

	entry, err := ParseEntryPayload(decode(t, `{
		"word": "cat",
		"meanings": [
			{"partOfSpeech": "noun", "definitions": [{"definition": ""}, {"definition": "a small feline"}]}
		]
	}`))
	require.NoError(t, err)

	require.Len(t, entry.Meanings, 1)
	require.Len(t, entry.Meanings[0].Definitions, 1)
	assert.Equal(t, "a small feline", entry.Meanings[0].Definitions[0].Definition)
}
