package extract

import "fmt"

// extractionPrompt mandates strict JSON with the fixed extraction schema.
// The wording is part of the model contract; changing it changes what the
// model returns.
const extractionPrompt = `Extract only important reminder details.

Return STRICT JSON ONLY:
{
"summary":"short summary",
"deadline":"date if exists else Not Found",
"fine":"fine if exists else None",
"priority":"High | Medium | Low",
"category":"Work | Personal | Health | Finance | Education | Other"
}

Text:
%s`

// BuildExtractionPrompt renders the strict-JSON extraction instruction for
// the given source text.
func BuildExtractionPrompt(text string) string {
	return fmt.Sprintf(extractionPrompt, text)
}
