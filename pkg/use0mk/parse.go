package use0mk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// linkFields maps response keys onto Link attributes. Keys not listed are ignored.
var linkFields = []struct {
	key   string
	field func(*Link) **string
}{
	{keyLongURI, func(l *Link) **string { return &l.longURI }},
	{keyShortURI, func(l *Link) **string { return &l.shortURI }},
	{keyShortName, func(l *Link) **string { return &l.shortName }},
	{keyTitle, func(l *Link) **string { return &l.title }},
	{keyStatsURI, func(l *Link) **string { return &l.statsURI }},
	{keyDeleteURI, func(l *Link) **string { return &l.deleteURI }},
	{keyDeleteCode, func(l *Link) **string { return &l.deleteCode }},
}

// ParseResponse decodes a raw 0.mk response body, e.g. one stored earlier.
// The returned Link is not bound to a Client, so Link.Delete reports false;
// use Client.Delete with its delete URI and code instead.
func ParseResponse(origin Origin, body io.Reader) (*Link, error) {
	return parseResponse(origin, body, nil)
}

// parseResponse turns a 0.mk JSON body into a Link or a typed API error.
func parseResponse(origin Origin, body io.Reader, d deleter) (*Link, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode 0.mk response: %w", err)
	}

	if !isSuccess(raw[keyStatus]) {
		code, _ := rawInt(raw[keyErrorID])
		msg, _ := rawString(raw[keyErrorMessage])
		return nil, newAPIError(code, strings.TrimSpace(msg))
	}

	link := &Link{origin: origin, client: d}
	for _, f := range linkFields {
		v, ok := rawString(raw[f.key])
		if !ok {
			continue
		}
		*f.field(link) = &v
	}
	return link, nil
}

func isSuccess(status json.RawMessage) bool {
	var n json.Number
	if err := json.Unmarshal(status, &n); err != nil {
		return false
	}
	// a quoted "1" decodes into json.Number as well, only a bare number counts
	if bytes.HasPrefix(bytes.TrimSpace(status), []byte(`"`)) {
		return false
	}
	v, err := n.Int64()
	return err == nil && v == statusOK
}

// rawInt accepts both 4 and "4".
func rawInt(v json.RawMessage) (int, bool) {
	s, ok := rawString(v)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// rawString returns a JSON string value, or the literal text of any other
// scalar. Missing keys and null yield false.
func rawString(v json.RawMessage) (string, bool) {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s, true
	}
	return string(v), true
}
