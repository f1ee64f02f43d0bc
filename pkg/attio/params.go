package attio

import (
	"net/url"
	"strconv"
)

// Optional query parameters are per-method structs with pointer fields. A nil
// field is never sent, so the API cannot observe a difference between an
// omitted parameter and one the caller left unset.

// Int returns a pointer to v, for use in params structs.
func Int(v int) *int { return &v }

// String returns a pointer to v, for use in params structs.
func String(v string) *string { return &v }

// Bool returns a pointer to v, for use in params structs.
func Bool(v bool) *bool { return &v }

func setInt(v url.Values, key string, p *int) {
	if p != nil {
		v.Set(key, strconv.Itoa(*p))
	}
}

func setString(v url.Values, key string, p *string) {
	if p != nil {
		v.Set(key, *p)
	}
}

func setBool(v url.Values, key string, p *bool) {
	if p != nil {
		v.Set(key, strconv.FormatBool(*p))
	}
}
