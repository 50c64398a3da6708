// Package kinnosuke is a client for the kinnosuke attendance portal, which
// only serves html forms behind a session cookie.
//
// every read is stateless except for the login state, which is an implied
// input of each method. the session is never observed directly, a page that
// still renders the login button means it has expired.
//
// clock actions are the only mutating methods, each one scrapes a fresh csrf
// token from the page rendered after login and submits it exactly once.
//
// each scraping method generally has this structure:
// 1. make the request (logging in first if required).
// 2. make assertions on the response (status, markers of restriction or expiry).
// 3. transform the body into the output with goquery selectors or a regex.
// extraction never fails on unknown markup, missing elements are left empty
// and the caller decides whether that is an error.
package kinnosuke
