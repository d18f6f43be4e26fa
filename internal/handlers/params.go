package handlers

import (
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const paramsContextKey = "requestParams"

// ValidationError reports missing, malformed or unresolvable request
// parameters. Handlers map it to 412.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationError(msg string) error { return &ValidationError{msg: msg} }

// requestParams merges query-string and urlencoded-body parameters, query
// first so the first value wins across both sources. The body is parsed
// here rather than via Request.ParseForm because clients send urlencoded
// bodies on DELETE too, which net/http ignores.
func requestParams(c *gin.Context) url.Values {
	if v, ok := c.Get(paramsContextKey); ok {
		return v.(url.Values)
	}
	vals := url.Values{}
	for name, vs := range c.Request.URL.Query() {
		vals[name] = append(vals[name], vs...)
	}
	if c.ContentType() == "application/x-www-form-urlencoded" && c.Request.Body != nil {
		if body, err := io.ReadAll(c.Request.Body); err == nil {
			if form, err := url.ParseQuery(string(body)); err == nil {
				for name, vs := range form {
					vals[name] = append(vals[name], vs...)
				}
			}
		}
	}
	c.Set(paramsContextKey, vals)
	return vals
}

// lookupParam returns the first value of a parameter and whether it was
// supplied at all.
func lookupParam(c *gin.Context, name string) (string, bool) {
	vs := requestParams(c)[name]
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// parseID accepts non-negative integer literals only.
func parseID(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

// parseIDList splits a comma-separated id list, skipping empty segments
// the way a tokenizer would.
func parseIDList(s, badListMsg string) ([]uint, error) {
	parts := strings.Split(s, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := parseID(p)
		if err != nil {
			return nil, validationError(badListMsg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
