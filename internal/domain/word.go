package domain

import "time"

// WordEntry is a persisted, structured dictionary record for one normalized word.
// The word itself is the sole identity: at most one entry exists per key.
type WordEntry struct {
	Word          string        `json:"word" db:"word"`
	IPA           string        `json:"ipa" db:"ipa"`
	Meanings      []Meaning     `json:"meanings" db:"meanings"`
	Phrases       []Phrase      `json:"phrases" db:"phrases"`
	OriginDetails OriginDetails `json:"originDetails" db:"origin_details"`
	Translation   Translation   `json:"translation" db:"translation"`
	Timestamp     time.Time     `json:"timestamp" db:"ts"`
}

// Meaning groups definitions under one part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Forms        string       `json:"forms,omitempty"`
	Definitions  []Definition `json:"definitions"`
}

// Definition is a single sense. Subs holds variant senses nested one
// level deep; a sub never has subs of its own.
type Definition struct {
	Definition string       `json:"definition"`
	Example    string       `json:"example,omitempty"`
	Synonyms   []string     `json:"synonyms,omitempty"`
	Antonyms   []string     `json:"antonyms,omitempty"`
	Subs       []Definition `json:"subs,omitempty"`
}

// Phrase is a common phrase built on the word.
type Phrase struct {
	Phrase  string `json:"phrase"`
	Meaning string `json:"meaning"`
	Example string `json:"example,omitempty"`
}

// OriginDetails describes etymological lineage.
type OriginDetails struct {
	Text string   `json:"text,omitempty"`
	Flow []string `json:"flow,omitempty"`
}

// Translation carries the primary translation plus alternatives.
type Translation struct {
	Primary string   `json:"primary,omitempty"`
	Others  []string `json:"others,omitempty"`
}

// HistoryItem is one append-only search-history row. Rows are never
// mutated or deleted; the same word may appear many times.
type HistoryItem struct {
	ID         int64     `json:"id" db:"id"`
	Word       string    `json:"word" db:"word"`
	SearchedAt time.Time `json:"searchedAt" db:"searched_at"`
}
