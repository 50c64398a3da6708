package kinnosuke

import (
	"io"
	"kinnosuke/lib/telemetry"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

const (
	loginPage      = `<input type="submit" id="id_passlogin" name="Submit" value="ログイン">`
	topPage        = `<div id="main_header_top">トップページ</div>`
	csrfPage       = `<input type="hidden" name="__sectag_123456" value="abcdef">`
	restrictedPage = `<div class="txt_12_red">IPアドレス制限により<br>タイムレコーダーは使用できません。</div>`
	clockedInPage  = `<td align="center" nowrap=""><div id="timerecorder_txt">出社<br>(10:00)</div></td>`
	clockedOutPage = `<td align="center" nowrap=""><div id="timerecorder_txt">出社<br>(10:00)</div></td><td align="center" nowrap=""><div id="timerecorder_txt">退社<br>(19:00)</div></td>`
	timeSheetPage  = `<form name="submit_form0" id="submit_form0" action="./" method="post"></form><table border="0" cellpadding="3" cellspacing="1" class="txt_12" id="total_list0"></table>`
	totalOnlyPage  = `<table border="0" cellpadding="3" cellspacing="1" class="txt_12" id="total_list0"></table>`
)

type reply struct {
	status int
	body   string
}

// fakePortal replays queued replies per method, the last reply of a queue
// is repeated once the queue is drained.
type fakePortal struct {
	lock sync.Mutex

	gets  []reply
	posts []reply

	getRequests  []string
	postRequests []string
}

func (p *fakePortal) OnGet(body string) *fakePortal {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.gets = append(p.gets, reply{status: http.StatusOK, body: body})
	return p
}

func (p *fakePortal) OnPost(body string) *fakePortal {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.posts = append(p.posts, reply{status: http.StatusOK, body: body})
	return p
}

func (p *fakePortal) OnPostStatus(status int, body string) *fakePortal {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.posts = append(p.posts, reply{status: status, body: body})
	return p
}

func (p *fakePortal) Gets() []string {
	p.lock.Lock()
	defer p.lock.Unlock()
	return append([]string(nil), p.getRequests...)
}

func (p *fakePortal) Posts() []string {
	p.lock.Lock()
	defer p.lock.Unlock()
	return append([]string(nil), p.postRequests...)
}

func next(queue *[]reply) reply {
	if len(*queue) == 0 {
		return reply{status: http.StatusNotFound}
	}
	r := (*queue)[0]
	if len(*queue) > 1 {
		*queue = (*queue)[1:]
	}
	return r
}

func (p *fakePortal) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.lock.Lock()
	var res reply
	switch r.Method {
	case http.MethodGet:
		p.getRequests = append(p.getRequests, r.URL.RequestURI())
		res = next(&p.gets)
	case http.MethodPost:
		body, _ := io.ReadAll(r.Body)
		p.postRequests = append(p.postRequests, string(body))
		res = next(&p.posts)
	default:
		res = reply{status: http.StatusMethodNotAllowed}
	}
	p.lock.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(res.status)
	io.WriteString(w, res.body)
}

func newTestClient(t testing.TB, handler http.Handler) *Client {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/kinnosuke")
	t.Cleanup(cleanup)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientOptions{
		CompanyId: "foo",
		LoginId:   "bar",
		Password:  "p@ssw0rd",
		BaseUrl:   server.URL,
	})
	if err != nil {
		t.Fatal(err)
	}
	return client
}
