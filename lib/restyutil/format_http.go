package restyutil

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

var redactedFields = []string{"password"}
var redactedHeaders = []string{"Cookie", "Set-Cookie"}

const redacted = "[REDACTED]"

// RedactForm masks credential fields of a form encoded body. bodies that do
// not parse as a form are returned unchanged.
func RedactForm(body string) string {
	values, err := url.ParseQuery(body)
	if err != nil {
		return body
	}
	found := false
	for _, f := range redactedFields {
		if values.Has(f) {
			found = true
		}
	}
	if !found {
		return body
	}

	fields := strings.Split(body, "&")
	for i, field := range fields {
		key, _, _ := strings.Cut(field, "=")
		key, err := url.QueryUnescape(key)
		if err != nil {
			continue
		}
		for _, f := range redactedFields {
			if key == f {
				fields[i] = url.QueryEscape(key) + "=" + redacted
			}
		}
	}
	return strings.Join(fields, "&")
}

func IsRedactedHeader(header string) bool {
	header = http.CanonicalHeaderKey(header)
	for _, h := range redactedHeaders {
		if header == h {
			return true
		}
	}
	return false
}

func formatHeaders(headers http.Header) string {
	var out strings.Builder
	for k, vals := range headers {
		for _, v := range vals {
			if IsRedactedHeader(k) {
				v = redacted
			}
			out.WriteString(fmt.Sprintf("%s: %s\n", k, v))
		}
	}
	return strings.TrimSuffix(out.String(), "\n")
}

func formatRequestBody(req *http.Request) string {
	if req.GetBody == nil {
		return ""
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Sprintf("failed to get request body: %s", err.Error())
	}
	if body == nil {
		return ""
	}
	readBody, err := io.ReadAll(body)
	if err != nil {
		return fmt.Sprintf("failed to read request body: %s", err.Error())
	}
	return RedactForm(string(readBody))
}

// 1: request method
// 2: request url
// 3: request headers in ("Key: Value" format)
// 4: request body
// 5: response status
// 6: response url
// 7: response headers in ("Key: Value" format)
// 8: response body
const messageInfoTemplate = `---- REQUEST ----

%s %s

%s

%s

---- RESPONSE ----

%s %s

%s

%s`

func formatHttpMessage(res *resty.Response) string {
	requestHeaders := formatHeaders(res.Request.RawRequest.Header)
	responseHeaders := formatHeaders(res.Header())

	responseUrl := res.Request.URL
	if res.RawResponse != nil && res.RawResponse.Request != nil {
		responseUrl = res.RawResponse.Request.URL.String()
	}

	return fmt.Sprintf(
		messageInfoTemplate,

		res.Request.Method, res.Request.URL,
		requestHeaders,
		formatRequestBody(res.Request.RawRequest),

		strconv.Itoa(res.StatusCode()), responseUrl,
		responseHeaders,
		res.String(),
	)
}
