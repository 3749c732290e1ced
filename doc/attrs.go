package doc

// Attrs is a node's attribute bag. Values are whatever the host editor
// stores; the typed getters coerce the common cases and report absence
// instead of defaulting, because "not specified" and "zero" are distinct
// for layout (page margins in particular).
type Attrs map[string]any

// Has reports whether the key is present.
func (a Attrs) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// String returns the value as a string, or "" when absent or not a
// string.
func (a Attrs) String(key string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return ""
}

// Float returns the value as a float64 with an ok flag. Ints are
// accepted and widened.
func (a Attrs) Float(key string) (float64, bool) {
	switch v := a[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// Int returns the value as an int with an ok flag.
func (a Attrs) Int(key string) (int, bool) {
	switch v := a[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// Bool returns the value as a bool; absent or non-bool values are false.
func (a Attrs) Bool(key string) bool {
	v, _ := a[key].(bool)
	return v
}

// Sub returns a nested attribute bag, or nil when absent. Both Attrs and
// plain map values are accepted.
func (a Attrs) Sub(key string) Attrs {
	switch v := a[key].(type) {
	case Attrs:
		return v
	case map[string]any:
		return Attrs(v)
	}
	return nil
}
