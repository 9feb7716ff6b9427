// Package translator converts catalog records from the English source
// vocabulary into the Spanish vocabulary, at both the key and value level.
// Everything here is pure and data-driven: two static maps, no I/O.
package translator

import (
	"regexp"
	"strings"
)

var trailingID = regexp.MustCompile(`/(\d+)/?$`)

// TranslateFieldName maps a known catalog field name to its Spanish
// counterpart. Unknown names pass through unchanged so the mapping
// degrades gracefully if the upstream schema grows.
func TranslateFieldName(name string) string {
	if translated, ok := fieldNames[name]; ok {
		return translated
	}
	return name
}

// TranslateValue maps a known string value to its Spanish synonym. The
// lookup is case-insensitive but an unmatched string is returned exactly
// as received, not lower-cased. Non-string values pass through untouched;
// this function never descends into nested structures.
func TranslateValue(value interface{}) interface{} {
	s, ok := value.(string)
	if !ok {
		return value
	}
	if translated, ok := valueSynonyms[strings.ToLower(s)]; ok {
		return translated
	}
	return s
}

// TranslateRecord produces a new record with every key run through
// TranslateFieldName and every value through TranslateValue. Array values
// are translated element by element, preserving order and length. A nil
// record yields nil rather than an error; callers rely on that.
func TranslateRecord(record map[string]interface{}) map[string]interface{} {
	if record == nil {
		return nil
	}

	out := make(map[string]interface{}, len(record))
	for key, value := range record {
		switch v := value.(type) {
		case []interface{}:
			items := make([]interface{}, len(v))
			for i, item := range v {
				items[i] = TranslateValue(item)
			}
			out[TranslateFieldName(key)] = items
		default:
			out[TranslateFieldName(key)] = TranslateValue(v)
		}
	}
	return out
}

// TranslateRecordList translates every record in the list, dropping
// elements that are not records (nil entries, scalars mixed in). This is
// the only place in the pipeline where cardinality can change.
func TranslateRecordList(records []interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(records))
	for _, item := range records {
		record, ok := item.(map[string]interface{})
		if !ok || record == nil {
			continue
		}
		out = append(out, TranslateRecord(record))
	}
	return out
}

// ExtractIDFromURL returns the numeric identifier at the end of a catalog
// resource URL ("…/people/42/" or "…/people/42"). It returns "" when the
// URL does not end in a numeral.
func ExtractIDFromURL(url string) string {
	m := trailingID.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}
