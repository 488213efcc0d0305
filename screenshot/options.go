package screenshot

import (
	"errors"
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"

	go_json "github.com/goccy/go-json"
)

var ErrMissingTarget = errors.New("screenshot: either url or html must be set")

// Options is an immutable set of screenshot options keyed by option name.
// Every setter returns a new Options; the receiver is never modified, so an
// Options value is safe to share between goroutines.
//
// The zero value is an empty option set.
type Options struct {
	values map[string]any
}

// URL starts an option set that captures the page at u.
func URL(u string) Options {
	return Options{}.With(KeyURL, u)
}

// HTML starts an option set that renders the given markup.
func HTML(html string) Options {
	return Options{}.With(KeyHTML, html)
}

// FromMap builds an option set from a flat option map, such as one produced
// by ToConfig. Unknown keys are kept and sent as-is.
func FromMap(m map[string]any) Options {
	values := make(map[string]any, len(m))
	for k, v := range m {
		values[k] = cloneValue(v)
	}
	return Options{values: values}
}

// With returns a copy of o with key set to value.
func (o Options) With(key string, value any) Options {
	next := make(map[string]any, len(o.values)+1)
	maps.Copy(next, o.values)
	next[key] = cloneValue(value)
	return Options{values: next}
}

// Without returns a copy of o with key removed.
func (o Options) Without(key string) Options {
	if _, ok := o.values[key]; !ok {
		return o
	}
	next := maps.Clone(o.values)
	delete(next, key)
	return Options{values: next}
}

func (o Options) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o Options) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

func (o Options) Len() int { return len(o.values) }

// Keys returns the option names in lexicographic order.
func (o Options) Keys() []string {
	return slices.Sorted(maps.Keys(o.values))
}

// Validate checks that a render target is present.
func (o Options) Validate() error {
	if s, _ := o.values[KeyURL].(string); s != "" {
		return nil
	}
	if s, _ := o.values[KeyHTML].(string); s != "" {
		return nil
	}
	return ErrMissingTarget
}

// ToConfig returns the flat option map. The result is a copy.
func (o Options) ToConfig() map[string]any {
	out := make(map[string]any, len(o.values))
	for k, v := range o.values {
		out[k] = cloneValue(v)
	}
	return out
}

// ToParams returns the nested request body the API expects: viewport, pdf
// and storage options are grouped into sub-objects, everything else is flat.
// A pass-through key named like a group keeps its entries when it is a map,
// with grouped options taking precedence; any other value is replaced.
func (o Options) ToParams() map[string]any {
	keys := o.Keys()
	params := make(map[string]any, len(keys))
	for _, k := range keys {
		if s, ok := table[k]; !ok || s.group == "" {
			params[k] = cloneValue(o.values[k])
		}
	}
	for _, k := range keys {
		s, ok := table[k]
		if !ok || s.group == "" {
			continue
		}
		group, ok := params[s.group].(map[string]any)
		if !ok {
			group = make(map[string]any)
			params[s.group] = group
		}
		group[s.param] = cloneValue(o.values[k])
	}
	return params
}

// ToQueryString encodes the flat option map as a URL query string with keys
// in lexicographic order.
func (o Options) ToQueryString() string {
	q := make(url.Values, len(o.values))
	for k, v := range o.values {
		q.Set(k, Stringify(v))
	}
	return q.Encode()
}

func (o Options) MarshalJSON() ([]byte, error) {
	return go_json.Marshal(o.ToParams())
}

// Stringify renders an option value the way it appears in query strings and
// signed URLs: booleans as "true"/"false", numbers in decimal, strings
// unchanged, string lists comma-joined and anything else as JSON.
func Stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case go_json.Number:
		return v.String()
	case Format:
		return string(v)
	case WaitCondition:
		return string(v)
	case []string:
		return strings.Join(v, ",")
	default:
		b, err := go_json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// cloneValue copies the container types options are built from so that
// callers mutating their own slices or maps cannot reach into an Options.
func cloneValue(v any) any {
	switch v := v.(type) {
	case []string:
		return slices.Clone(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	case map[string]string:
		return maps.Clone(v)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = cloneValue(e)
		}
		return out
	case []Cookie:
		return slices.Clone(v)
	default:
		return v
	}
}
