package relay

import (
	"fmt"
	"net/url"
	"strings"
)

// ResolvedParameter is one ordered (key, value) pair of the outgoing query.
type ResolvedParameter struct {
	Key   string
	Value string
}

// ResolveParams merges the caller-supplied parameter string with the stored
// defaults. Precedence is wholesale: a non-empty override replaces the
// defaults entirely, there is no field-level merge.
//
// The source string is split on ";" into ordered tokens. A token containing
// "=" splits at the first occurrence into key and value; the value keeps any
// further "=" verbatim. A token without "=" becomes a positional parameter
// keyed "p<i>" where i is the 1-based token position. Empty segments between
// delimiters are preserved as empty positional contributions.
func ResolveParams(override, defaults string) []ResolvedParameter {
	source := override
	if source == "" {
		source = defaults
	}
	if source == "" {
		return nil
	}

	tokens := strings.Split(source, ";")
	params := make([]ResolvedParameter, 0, len(tokens))
	for i, token := range tokens {
		if eq := strings.Index(token, "="); eq >= 0 {
			params = append(params, ResolvedParameter{
				Key:   token[:eq],
				Value: token[eq+1:],
			})
			continue
		}
		params = append(params, ResolvedParameter{
			Key:   fmt.Sprintf("p%d", i+1),
			Value: token,
		})
	}
	return params
}

// EncodeQuery joins resolved parameters as URL-encoded key=value pairs in
// their original order. url.Values is unsuitable here: it sorts keys on
// encode, and the query must reproduce token order exactly.
func EncodeQuery(params []ResolvedParameter) string {
	if len(params) == 0 {
		return ""
	}

	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
