package faq

import "time"

// Language is a lower-case ISO 639 base language code such as "en" or "hi".
type Language string

// CanonicalLanguage is the language the question and answer are authored in.
const CanonicalLanguage Language = "en"

// Translation is one projected question/answer pair.
type Translation struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Record is a persisted FAQ entry.
type Record struct {
	ID           string                   `json:"id"`
	Question     string                   `json:"question"`
	Answer       string                   `json:"answer"`
	Translations map[Language]Translation `json:"translations"`
	OwnerID      int64                    `json:"ownerId"`
	CreatedAt    time.Time                `json:"createdAt"`
}

// CreateRequest is the payload for a new FAQ.
type CreateRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ListRequest selects a page of FAQs projected into a language. Zero values
// mean "use the default".
type ListRequest struct {
	Language string
	Page     int
	PageSize int
}

// Item is a FAQ projected into a single language.
type Item struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Pagination describes where a page sits in the full listing.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// ListResponse is returned to the HTTP transport and stored in the cache.
type ListResponse struct {
	FAQs       []Item     `json:"faqs"`
	Pagination Pagination `json:"pagination"`
}

// LanguagesResponse lists the languages a listing can be projected into.
type LanguagesResponse struct {
	Default   Language   `json:"default"`
	Languages []Language `json:"languages"`
}
