package certigenius

import "regexp"

// placeholderPattern matches {{identifier}} tokens where identifier is a
// maximal run of word characters.
var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Substitute resolves {{field}} tokens in text against a recipient record.
// Substitution is partial and non-failing: tokens whose key is absent from
// the recipient (or whose value is empty) are left in place verbatim so
// template mistakes stay visible in the output. Keys match case-sensitively;
// import-time normalization already lowercases CSV columns. A nil recipient
// returns text unchanged, which serves the unbound editing preview.
func Substitute(text string, r *Recipient) string {
	if r == nil {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		key := token[2 : len(token)-2]
		if value, ok := r.Field(key); ok {
			return value
		}
		return token
	})
}
