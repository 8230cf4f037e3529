package toolsdk

import "github.com/microcosm-cc/bluemonday"

// SanitizeConfig maps saved field names to the markup each may keep when
// the host sanitizes persisted block data.
type SanitizeConfig map[string]FieldRule

// FieldRule declares the inline elements a saved field retains. The zero
// rule strips every element.
type FieldRule struct {
	AllowedElements []string
}

// Policy compiles the rule into a bluemonday policy.
func (r FieldRule) Policy() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()
	if len(r.AllowedElements) > 0 {
		policy.AllowElements(r.AllowedElements...)
	}
	return policy
}

// Apply sanitizes value according to the rule.
func (r FieldRule) Apply(value string) string {
	return r.Policy().Sanitize(value)
}

// Rule returns the rule declared for field; missing fields get the zero
// rule, which strips everything.
func (c SanitizeConfig) Rule(field string) FieldRule {
	return c[field]
}
