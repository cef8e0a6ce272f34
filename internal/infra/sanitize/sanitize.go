// Package sanitize restricts FAQ answers to safe rich-text markup.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/yanqian/faq-service/internal/domain/faq"
)

// HTMLSanitizer applies bluemonday's user-generated-content policy.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer builds the policy once; bluemonday policies are safe for
// concurrent use after construction.
func NewHTMLSanitizer() *HTMLSanitizer {
	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return &HTMLSanitizer{policy: policy}
}

// Sanitize implements faq.Sanitizer.
func (s *HTMLSanitizer) Sanitize(raw string) string {
	return s.policy.Sanitize(raw)
}

var _ faq.Sanitizer = (*HTMLSanitizer)(nil)
