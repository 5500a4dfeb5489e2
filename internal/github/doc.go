// Package github fetches repository language statistics from the GitHub REST API.
//
// A Client issues exactly one request per call:
//
//	GET {base}/repos/{owner}/{repo}/languages
//
// and decodes the JSON object of language name to byte count into a
// model.Tally, keeping the key order of the response. Non-2xx responses are
// reported as *FetchError carrying the status code and response body.
//
// The client never retries, paginates, or waits out rate limits.
// A failed call is terminal for the run.
package github
