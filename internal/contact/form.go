package contact

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// ContentKind classifies a declared request content type.
type ContentKind int

const (
	// KindUnknown covers missing and unrecognized content types. Bodies are
	// still given a JSON parse attempt, so clients that forget the header
	// keep working; only an actual parse failure is rejected.
	KindUnknown ContentKind = iota
	KindJSON
	KindForm
)

// DetectContentKind classifies a Content-Type header value, ignoring
// parameters such as charset.
func DetectContentKind(contentType string) ContentKind {
	mediaType := contentType
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		return KindJSON
	case mediaType == "application/x-www-form-urlencoded":
		return KindForm
	default:
		return KindUnknown
	}
}

// ParseFields normalizes a raw request body into a flat field mapping,
// regardless of whether it arrived as JSON or URL-encoded form data.
func ParseFields(body, contentType string) (map[string]string, error) {
	switch DetectContentKind(contentType) {
	case KindJSON:
		return parseJSONFields(body)
	case KindForm:
		return parseFormFields(body)
	default:
		if strings.TrimSpace(body) == "" {
			return map[string]string{}, nil
		}
		return parseJSONFields(body)
	}
}

// parseJSONFields decodes a JSON object into string fields. JSON null values
// are treated as absent; any other non-string value is rejected, since the
// stored record is all string attributes.
func parseJSONFields(body string) (map[string]string, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrMalformedBody, err)
	}

	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			fields[key] = v
		case nil:
			// absent
		default:
			return nil, fmt.Errorf("%w: field %q is not a string", ErrMalformedBody, key)
		}
	}
	return fields, nil
}

// parseFormFields decodes key=value&key=value pairs. When a key repeats,
// the first occurrence wins; url.ParseQuery keeps every value, so pairs are
// walked by hand.
func parseFormFields(body string) (map[string]string, error) {
	fields := map[string]string{}
	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid form encoding in %q", ErrMalformedBody, rawKey)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid form encoding in %q", ErrMalformedBody, rawValue)
		}
		if key == "" {
			continue
		}
		if _, seen := fields[key]; !seen {
			fields[key] = value
		}
	}
	return fields, nil
}
