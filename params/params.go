package params

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrMalformed indicates a spec string or value that cannot be parsed.
	ErrMalformed = errors.New("params: malformed parameter")
	// ErrUnknownKey indicates a key the target constructor does not accept.
	ErrUnknownKey = errors.New("params: unknown key")
)

// Params maps parameter keys to raw string values.
type Params map[string]string

// Parse splits "name:k=v,k=v" into its name and parameters.
// Whitespace around names, keys and values is trimmed.
func Parse(spec string) (string, Params, error) {
	name, rest, _ := strings.Cut(strings.TrimSpace(spec), ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, fmt.Errorf("%w: empty name in %q", ErrMalformed, spec)
	}
	p := Params{}
	if strings.TrimSpace(rest) == "" {
		return name, p, nil
	}
	for _, kv := range strings.Split(rest, ",") {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return "", nil, fmt.Errorf("%w: %q in %q", ErrMalformed, kv, spec)
		}
		p[k] = strings.TrimSpace(v)
	}
	return name, p, nil
}

// Int returns the integer at key, or def when absent.
func (p Params) Int(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrMalformed, key, v, err)
	}
	return n, nil
}

// Int64 returns the 64-bit integer at key, or def when absent.
func (p Params) Int64(key string, def int64) (int64, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrMalformed, key, v, err)
	}
	return n, nil
}

// Float returns the float at key, or def when absent.
func (p Params) Float(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrMalformed, key, v, err)
	}
	return f, nil
}

// Bool returns the boolean at key (strconv.ParseBool syntax), or def when absent.
func (p Params) Bool(key string, def bool) (bool, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q: %v", ErrMalformed, key, v, err)
	}
	return b, nil
}

// Str returns the raw value at key, or def when absent.
func (p Params) Str(key, def string) string {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// Unknown returns the keys of p not listed in known, sorted.
func (p Params) Unknown(known ...string) []string {
	var out []string
	for k := range p {
		found := false
		for _, kk := range known {
			if k == kk {
				found = true
				break
			}
		}
		if !found {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// String renders p as "k=v,k=v" in key order.
func (p Params) String() string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(p[k])
	}
	return sb.String()
}

// Reader reads typed values from Params and keeps the first error, so a
// constructor can read all of its keys and check once.
type Reader struct {
	p   Params
	err error
}

// NewReader returns a Reader over p. A nil p reads as empty.
func NewReader(p Params) *Reader { return &Reader{p: p} }

// Int reads key as an int, def when absent.
func (r *Reader) Int(key string, def int) int {
	v, err := r.p.Int(key, def)
	r.keep(err)
	return v
}

// Int64 reads key as an int64, def when absent.
func (r *Reader) Int64(key string, def int64) int64 {
	v, err := r.p.Int64(key, def)
	r.keep(err)
	return v
}

// Float reads key as a float64, def when absent.
func (r *Reader) Float(key string, def float64) float64 {
	v, err := r.p.Float(key, def)
	r.keep(err)
	return v
}

// Bool reads key as a bool, def when absent.
func (r *Reader) Bool(key string, def bool) bool {
	v, err := r.p.Bool(key, def)
	r.keep(err)
	return v
}

// Str reads key as a raw string, def when absent.
func (r *Reader) Str(key, def string) string { return r.p.Str(key, def) }

// Fail records err as if a lookup had failed, keeping the first error.
func (r *Reader) Fail(err error) { r.keep(err) }

func (r *Reader) keep(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

// Done returns the first parse error, or ErrUnknownKey when p holds a key
// outside known.
func (r *Reader) Done(known ...string) error {
	if r.err != nil {
		return r.err
	}
	if u := r.p.Unknown(known...); len(u) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(u, ", "))
	}
	return nil
}
