package claude

import "fmt"

const systemPrompt = "You are a professional lexicographer. Return exhaustive, deeply structured JSON " +
	"mirroring Google's Search Dictionary exactly. Do not skip any meanings. Use nested sub-definitions " +
	"for variant meanings of the same sense. Use numbering (1., 2., 3.) for distinct senses. Include full " +
	"part-of-speech forms (e.g., plural noun, verb conjugations). Return ONLY valid JSON."

// buildLookupPrompt creates the user prompt for a single word. The entry
// structure in the example is the contract the validator expects.
func buildLookupPrompt(word string) string {
	return fmt.Sprintf(`Return JSON only. Format strictly like Google Search dictionary for "%s".
Ensure every part of speech is listed. Use specific numbering (1., 2., 3.) for main definitions.
Use sub-points (dot points) for related definitions under a main number.
Include plurality for nouns (e.g., "noun: scoop; plural noun: scoops").
Include verb forms (e.g., "verb: scoop; 3rd person present: scoops...").
Include "Similar" chips for BOTH main definitions AND sub-definitions where applicable.
Include "Origin" with text and a flow array (e.g., ["MIDDLE DUTCH", "MIDDLE LOW GERMAN", "ENGLISH"]).
Include "Phrases" section if common.
Example Structure:
{
  "word": "scoop",
  "ipa": "/skuːp/",
  "meanings": [
    {
      "partOfSpeech": "noun",
      "forms": "noun: scoop; plural noun: scoops",
      "definitions": [
        {
          "definition": "a utensil resembling a spoon...",
          "example": "the powder is packed in tubs...",
          "synonyms": ["spoon", "ladle"],
          "subs": [
            { "definition": "a short-handled deep shovel...", "example": "..." },
            { "definition": "a moving bowl-shaped part...", "example": "..." }
          ]
        }
      ]
    }
  ],
  "phrases": [{ "phrase": "...", "meaning": "...", "example": "..." }],
  "originDetails": { "text": "...", "flow": ["LATIN", "FRENCH", "ENGLISH"] },
  "translation": { "primary": "...", "others": ["..."] }
}`, word)
}
