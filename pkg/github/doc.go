// Package github fetches an account's public repositories from the GitHub
// REST API.
//
// [Client.ListUserRepos] issues a single GET to /users/{user}/repos with a
// fixed page size and the v3 JSON media type. Responses are classified into
// the repocards error taxonomy:
//
//   - X-RateLimit-Remaining present and <= 0: [errors.RateLimitedError],
//     carrying the reset time from X-RateLimit-Reset when it parses
//   - any other non-200 status: a TRANSPORT_ERROR with the status code and
//     the body's "message" field when present
//   - network or decode failures: a TRANSPORT_ERROR with the cause
//
// Nothing is retried. With [WithCache], successful listings are reused for
// the cache TTL.
//
// [Fetcher] adapts a Client to [showcase.Fetcher].
package github
