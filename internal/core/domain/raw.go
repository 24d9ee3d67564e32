package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Record is a raw field mapping as supplied by a caller (form input,
// decoded JSON, parsed TOML) before any validation. Entity constructors
// consume a Record and coerce each field to its typed representation.
type Record map[string]any

// Date layouts accepted for raw date fields. Full timestamps are accepted
// wherever a date is expected so serialised entities re-validate cleanly.
var dateLayouts = []string{"2006-01-02", time.RFC3339Nano, time.RFC3339}

// has reports whether the field is present and non-nil.
func (r Record) has(field string) bool {
	v, ok := r[field]
	return ok && v != nil
}

// reqString coerces a required string field. maxLen 0 means unbounded.
func (r Record) reqString(field string, maxLen int, errs *ValidationErrors) string {
	if !r.has(field) {
		errs.Add(field, "is required")
		return ""
	}
	s, ok := r[field].(string)
	if !ok {
		errs.Add(field, "must be a string, got %T", r[field])
		return ""
	}
	if s == "" {
		errs.Add(field, "must not be empty")
		return ""
	}
	if maxLen > 0 && utf8.RuneCountInString(s) > maxLen {
		errs.Add(field, "must be at most %d characters, got %d", maxLen, utf8.RuneCountInString(s))
		return ""
	}
	return s
}

// optString coerces an optional string field. Absent or nil yields nil.
func (r Record) optString(field string, maxLen int, errs *ValidationErrors) *string {
	if !r.has(field) {
		return nil
	}
	s, ok := r[field].(string)
	if !ok {
		errs.Add(field, "must be a string, got %T", r[field])
		return nil
	}
	if maxLen > 0 && utf8.RuneCountInString(s) > maxLen {
		errs.Add(field, "must be at most %d characters, got %d", maxLen, utf8.RuneCountInString(s))
		return nil
	}
	return &s
}

// coerceDecimal converts a raw numeric value to an exact decimal.
// Strings and json.Number are parsed exactly; floats go through
// decimal.NewFromFloat, which picks the shortest exact representation.
func coerceDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case *decimal.Decimal:
		if n == nil {
			return decimal.Zero, fmt.Errorf("nil decimal")
		}
		return *n, nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(n))
	case json.Number:
		return decimal.NewFromString(n.String())
	case float64:
		return decimal.NewFromFloat(n), nil
	case float32:
		return decimal.NewFromFloat32(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int32:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	default:
		return decimal.Zero, fmt.Errorf("unsupported type %T", v)
	}
}

// reqDecimal coerces a required numeric field. The second return value is
// false when the field was absent or not coercible (an error is recorded).
func (r Record) reqDecimal(field string, errs *ValidationErrors) (decimal.Decimal, bool) {
	if !r.has(field) {
		errs.Add(field, "is required")
		return decimal.Zero, false
	}
	d, err := coerceDecimal(r[field])
	if err != nil {
		errs.Add(field, "must be a number: %v", err)
		return decimal.Zero, false
	}
	return d, true
}

// optDecimal coerces an optional numeric field. Absent or nil yields nil.
func (r Record) optDecimal(field string, errs *ValidationErrors) *decimal.Decimal {
	if !r.has(field) {
		return nil
	}
	d, err := coerceDecimal(r[field])
	if err != nil {
		errs.Add(field, "must be a number: %v", err)
		return nil
	}
	return &d
}

// coerceDate converts a raw value to a timestamp. Accepts time.Time and
// the layouts in dateLayouts.
func coerceDate(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t == nil {
			return time.Time{}, fmt.Errorf("nil time")
		}
		return *t, nil
	case string:
		for _, layout := range dateLayouts {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognised date %q, want YYYY-MM-DD or RFC 3339", t)
	default:
		return time.Time{}, fmt.Errorf("unsupported type %T", v)
	}
}

// reqDate coerces a required date field.
func (r Record) reqDate(field string, errs *ValidationErrors) time.Time {
	if !r.has(field) {
		errs.Add(field, "is required")
		return time.Time{}
	}
	t, err := coerceDate(r[field])
	if err != nil {
		errs.Add(field, "must be a date: %v", err)
		return time.Time{}
	}
	return t
}

// optDate coerces an optional date field. Absent or nil yields nil.
func (r Record) optDate(field string, errs *ValidationErrors) *time.Time {
	if !r.has(field) {
		return nil
	}
	t, err := coerceDate(r[field])
	if err != nil {
		errs.Add(field, "must be a date: %v", err)
		return nil
	}
	return &t
}

// stringSlice coerces an optional list-of-strings field. Entries are
// trimmed of surrounding whitespace and empty entries are dropped;
// order is preserved and duplicates are permitted. Absent yields an
// empty (non-nil) slice.
func (r Record) stringSlice(field string, errs *ValidationErrors) []string {
	out := []string{}
	if !r.has(field) {
		return out
	}
	var raw []any
	switch v := r[field].(type) {
	case []string:
		for _, s := range v {
			raw = append(raw, s)
		}
	case []any:
		raw = v
	default:
		errs.Add(field, "must be a list of strings, got %T", r[field])
		return out
	}
	for i, item := range raw {
		s, ok := item.(string)
		if !ok {
			errs.Add(fmt.Sprintf("%s[%d]", field, i), "must be a string, got %T", item)
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// dimensionMap coerces a required map keyed by dimension name with decimal
// values. Unrecognised keys fail naming the offending key; all seven
// dimensions must be present.
func (r Record) dimensionMap(field string, errs *ValidationErrors) map[DimensionName]decimal.Decimal {
	if !r.has(field) {
		errs.Add(field, "is required")
		return nil
	}

	raw := map[string]any{}
	switch m := r[field].(type) {
	case map[DimensionName]decimal.Decimal:
		for k, v := range m {
			raw[string(k)] = v
		}
	case map[string]decimal.Decimal:
		for k, v := range m {
			raw[k] = v
		}
	case map[string]float64:
		for k, v := range m {
			raw[k] = v
		}
	case map[string]any:
		raw = m
	default:
		errs.Add(field, "must be a map of dimension name to number, got %T", r[field])
		return nil
	}

	out := make(map[DimensionName]decimal.Decimal, len(raw))
	present := make(map[DimensionName]bool, len(raw))
	before := len(*errs)
	for k, v := range raw {
		dim := DimensionName(k)
		if !dim.IsValid() {
			errs.Add(field, "unrecognised dimension %q, allowed: %s", k, dimensionList())
			continue
		}
		present[dim] = true
		d, err := coerceDecimal(v)
		if err != nil {
			errs.Add(field+"."+k, "must be a number: %v", err)
			continue
		}
		out[dim] = d
	}
	for _, dim := range Dimensions() {
		if !present[dim] {
			errs.Add(field, "missing dimension %q", dim)
		}
	}
	if len(*errs) > before {
		return nil
	}
	return out
}

// dimensionList renders the allowed dimension names for error messages.
func dimensionList() string {
	dims := Dimensions()
	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}
