package faq

import "context"

// Translator converts plain text into the target language.
type Translator interface {
	Translate(ctx context.Context, text string, target Language) (string, error)
}

// Sanitizer reduces rich text to the markup that is safe to store and render.
type Sanitizer interface {
	Sanitize(raw string) string
}
