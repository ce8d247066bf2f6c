package revet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// The batch endpoints report several aggregates as JSON objects whose key
// order is engine-determined priority. Go maps drop that order, so these
// mappings decode into ordered slices via the token stream instead. Decoding
// happens once at the network boundary; renderers only see typed slices.

// decodeOrderedObject walks the keys of a JSON object in document order,
// calling visit with a decoder positioned at each value.
func decodeOrderedObject(data []byte, visit func(key string, dec *json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil // JSON null, nothing to visit
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}
		if err := visit(key, dec); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
	}

	_, err = dec.Token() // consume closing '}'
	return err
}

// StatusCount is one entry of a status distribution.
type StatusCount struct {
	Tag   StatusTag
	Count int
}

// StatusCounts is a status distribution in the order the engine reported it.
type StatusCounts []StatusCount

// UnmarshalJSON implements json.Unmarshaler preserving key order.
func (s *StatusCounts) UnmarshalJSON(data []byte) error {
	*s = nil
	return decodeOrderedObject(data, func(key string, dec *json.Decoder) error {
		var count int
		if err := dec.Decode(&count); err != nil {
			return err
		}
		*s = append(*s, StatusCount{Tag: StatusTag(key), Count: count})
		return nil
	})
}

// TagCount is one entry of a classification distribution.
type TagCount struct {
	Tag   string
	Count int
}

// TagCounts is a classification distribution in reported order.
type TagCounts []TagCount

// UnmarshalJSON implements json.Unmarshaler preserving key order.
func (t *TagCounts) UnmarshalJSON(data []byte) error {
	*t = nil
	return decodeOrderedObject(data, func(key string, dec *json.Decoder) error {
		var count int
		if err := dec.Decode(&count); err != nil {
			return err
		}
		*t = append(*t, TagCount{Tag: key, Count: count})
		return nil
	})
}

// CategoryCount is one rating bucket, e.g. "excellent" or "poor".
type CategoryCount struct {
	Name  string
	Count int
}

// CategoryCounts holds rating buckets in reported order.
type CategoryCounts []CategoryCount

// UnmarshalJSON implements json.Unmarshaler preserving key order.
func (c *CategoryCounts) UnmarshalJSON(data []byte) error {
	*c = nil
	return decodeOrderedObject(data, func(key string, dec *json.Decoder) error {
		var count int
		if err := dec.Decode(&count); err != nil {
			return err
		}
		*c = append(*c, CategoryCount{Name: key, Count: count})
		return nil
	})
}

// CompanyRating is one company leaderboard entry.
type CompanyRating struct {
	Name  string
	Mean  float64
	Count int
}

// CompanyRatings is the per-company leaderboard in reported order. The
// engine owns the ordering; clients never re-sort it.
type CompanyRatings []CompanyRating

// UnmarshalJSON implements json.Unmarshaler preserving key order.
func (c *CompanyRatings) UnmarshalJSON(data []byte) error {
	*c = nil
	return decodeOrderedObject(data, func(key string, dec *json.Decoder) error {
		var stats struct {
			Mean  float64 `json:"mean"`
			Count int     `json:"count"`
		}
		if err := dec.Decode(&stats); err != nil {
			return err
		}
		*c = append(*c, CompanyRating{Name: key, Mean: stats.Mean, Count: stats.Count})
		return nil
	})
}

// SampleGroup is a set of sample reviews sharing a classification.
type SampleGroup struct {
	Tag     string
	Reviews []SampleReview
}

// SampleGroups holds sample reviews grouped by classification, groups in
// reported order.
type SampleGroups []SampleGroup

// UnmarshalJSON implements json.Unmarshaler preserving key order.
func (s *SampleGroups) UnmarshalJSON(data []byte) error {
	*s = nil
	return decodeOrderedObject(data, func(key string, dec *json.Decoder) error {
		var reviews []SampleReview
		if err := dec.Decode(&reviews); err != nil {
			return err
		}
		*s = append(*s, SampleGroup{Tag: key, Reviews: reviews})
		return nil
	})
}

// Detail is one labeled value attached to a preprocessing step.
type Detail struct {
	Key   string
	Value DetailValue
}

// Details holds preprocessing step details in reported order.
type Details []Detail

// UnmarshalJSON implements json.Unmarshaler preserving key order.
func (d *Details) UnmarshalJSON(data []byte) error {
	*d = nil
	return decodeOrderedObject(data, func(key string, dec *json.Decoder) error {
		var v DetailValue
		if err := dec.Decode(&v); err != nil {
			return err
		}
		*d = append(*d, Detail{Key: key, Value: v})
		return nil
	})
}

// DetailValue is a preprocessing detail value: either a scalar or a list of
// strings. Scalars render verbatim; lists join with ", ".
type DetailValue struct {
	List   []string
	Scalar string
}

// UnmarshalJSON accepts strings, numbers, booleans and string lists.
func (v *DetailValue) UnmarshalJSON(data []byte) error {
	v.List = nil
	v.Scalar = ""

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch val := raw.(type) {
	case nil:
		return nil
	case string:
		v.Scalar = val
	case json.Number:
		v.Scalar = val.String()
	case bool:
		v.Scalar = fmt.Sprintf("%t", val)
	case []any:
		list := make([]string, 0, len(val))
		for _, item := range val {
			switch it := item.(type) {
			case string:
				list = append(list, it)
			case json.Number:
				list = append(list, it.String())
			default:
				list = append(list, fmt.Sprintf("%v", it))
			}
		}
		v.List = list
	default:
		return fmt.Errorf("unsupported detail value %s", data)
	}
	return nil
}

// String renders the detail value for display.
func (v DetailValue) String() string {
	if v.List != nil {
		return strings.Join(v.List, ", ")
	}
	return v.Scalar
}

// Rating is a star rating that may be reported as the literal "N/A".
type Rating struct {
	Value float64
	Valid bool
}

// UnmarshalJSON accepts a number or the string "N/A".
func (r *Rating) UnmarshalJSON(data []byte) error {
	r.Value = 0
	r.Valid = false

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		// Any string rating means "not available".
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid rating %s", data)
	}
	r.Value = f
	r.Valid = true
	return nil
}
