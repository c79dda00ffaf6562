package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// maxBodyBytes bounds how much of a JSON body is read for parameters.
const maxBodyBytes = 1 << 20

// params extracts request parameters, preferring the query string and
// falling back to a JSON object body. The body is decoded at most once.
type params struct {
	query url.Values
	body  map[string]any
}

func parseParams(r *http.Request) params {
	p := params{query: r.URL.Query()}

	ct := r.Header.Get("Content-Type")
	if r.Body != nil && strings.HasPrefix(ct, "application/json") {
		var body map[string]any
		dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
		if err := dec.Decode(&body); err == nil {
			p.body = body
		}
	}
	return p
}

// get returns the named parameter, or "" if absent. A parameter present
// in the query string wins even when its value is empty; the body is
// consulted only when the query string omits it entirely. Non-string
// JSON values are ignored.
func (p params) get(name string) string {
	if p.query.Has(name) {
		return p.query.Get(name)
	}
	if v, ok := p.body[name].(string); ok {
		return v
	}
	return ""
}

// getDefault returns the named parameter, or def if absent.
func (p params) getDefault(name, def string) string {
	if v := p.get(name); v != "" {
		return v
	}
	return def
}
