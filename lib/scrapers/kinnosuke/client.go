package kinnosuke

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"kinnosuke/lib/restyutil"
	"kinnosuke/lib/telemetry"
	"log/slog"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html/charset"
)

const DefaultBaseUrl = "https://www.4628.jp"
const DefaultTimeout = time.Second * 3

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// Client owns one portal session. The cookie jar is private to the client,
// callers never touch cookies directly.
type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client

	companyId string
	loginId   string
	password  string

	// a csrf token is only valid for the render that produced it, so two
	// clock actions must never interleave
	clockLock sync.Mutex
}

type ClientOptions struct {
	CompanyId string
	LoginId   string
	Password  string

	// defaults to DefaultBaseUrl
	BaseUrl string
	// defaults to DefaultTimeout
	Timeout time.Duration

	CloudflareBypass bool
	// if set, request/response pairs are written to it while debug logging is enabled
	InstrumentOutput restyutil.InstrumentOutput
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.CompanyId == "" || opts.LoginId == "" || opts.Password == "" {
		return nil, fmt.Errorf("company id, login id and password are required")
	}
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(opts.BaseUrl, "/"))
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	if opts.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	client.SetHeader("user-agent", userAgent)
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(opts.Timeout)

	telemetry.InstrumentResty(client, "kinnosuke/http")
	restyutil.InstrumentClient(client, opts.InstrumentOutput)

	return &Client{
		BaseUrl:   baseUrl,
		Http:      client,
		companyId: opts.CompanyId,
		loginId:   opts.LoginId,
		password:  opts.Password,
	}, nil
}

type formField struct {
	key   string
	value string
}

// encodeForm keeps the field order, the portal's own forms are submitted
// in document order.
func encodeForm(fields []formField) string {
	var out strings.Builder
	for i, f := range fields {
		if i > 0 {
			out.WriteByte('&')
		}
		out.WriteString(url.QueryEscape(f.key))
		out.WriteByte('=')
		out.WriteString(url.QueryEscape(f.value))
	}
	return out.String()
}

func (c *Client) loginForm() string {
	return encodeForm([]formField{
		{"module", "login"},
		{"y_companycd", c.companyId},
		{"y_logincd", c.loginId},
		{"password", c.password},
	})
}

func clockForm(kind ClockKind, token CsrfToken) string {
	return encodeForm([]formField{
		{"module", "timerecorder"},
		{"action", "timerecorder"},
		{"scrollbody", "0"},
		{"timerecorder_stamping_type", kind.Code()},
		{token.Key, token.Value},
	})
}

// readBody rejects non-2xx responses and decodes the body to utf-8.
func readBody(res *resty.Response) ([]byte, error) {
	if !res.IsSuccess() {
		return nil, &StatusError{
			Method: res.Request.Method,
			Url:    res.Request.URL,
			Code:   res.StatusCode(),
		}
	}
	reader, err := charset.NewReader(
		bytes.NewReader(res.Body()),
		res.Header().Get("Content-Type"),
	)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(reader)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, err
	}
	return readBody(res)
}

func (c *Client) post(ctx context.Context, path, form string) ([]byte, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetBody(form).
		Post(path)
	if err != nil {
		return nil, err
	}
	return readBody(res)
}

// Login submits the credentials and returns the page rendered after login,
// which is also the page carrying the time recorder widget.
func (c *Client) Login(ctx context.Context) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "client:Login")
	defer span.End()

	body, err := c.post(ctx, "/", c.loginForm())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to make login request")
		return nil, err
	}
	if HasLoginPrompt(body) {
		span.SetStatus(codes.Error, InvalidCredentials.Error())
		return nil, InvalidCredentials
	}

	slog.DebugContext(ctx, "logged in", "company_id", c.companyId, "login_id", c.loginId)
	return body, nil
}

// GetWithLogin fetches a page, logging in and fetching once more if the
// session has expired. The retry is returned as is, even if it still shows
// the login prompt.
func (c *Client) GetWithLogin(ctx context.Context, path string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "client:GetWithLogin")
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	body, err := c.get(ctx, path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch (1)")
		return nil, err
	}
	if !HasLoginPrompt(body) {
		return body, nil
	}

	slog.DebugContext(ctx, "session expired, logging in again", "path", path)
	span.AddEvent("session expired")

	_, err = c.Login(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to login")
		return nil, err
	}

	body, err = c.get(ctx, path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch (2)")
		return nil, err
	}
	return body, nil
}
