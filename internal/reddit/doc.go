// Package reddit provides an HTTP client for a Reddit-compatible
// content-aggregation API.
//
// # Overview
//
// This package defines the API client perch uses to fetch submissions,
// comment trees, subscriptions, and inbox messages, and to perform the
// authenticated write actions (voting, saving, replying, and so on). It
// handles HTTP communication, the tagged-envelope JSON wire format, and
// type-safe representation of every entity the UI renders.
//
// # Architecture
//
// The package is split by concern:
//
//   - client.go: HTTP plumbing (rate limiting, retries, auth headers)
//   - types.go: wire envelopes and entities (thing/Listing decoding)
//   - listings.go: paginated read endpoints and listing queries
//   - comments.go: comment-tree fetch and more-children expansion
//   - actions.go: write endpoints (vote, save, reply, submit, ...)
//
// # Wire Format
//
// Every API object arrives wrapped in a tagged envelope:
//
//	{"kind": "t3", "data": {...}}
//
// Kinds: t1 comment, t2 account, t3 submission, t4 message, t5
// subreddit, LabeledMulti multireddit, "more" unloaded-children stub,
// and "Listing" for paginated containers. Comment replies nest listings
// recursively; an empty replies field is the literal empty string
// rather than an empty object, which decodeReplies accepts.
//
// # Pagination
//
// Listing endpoints return an opaque "after" cursor. Passing it back
// resumes the listing; an empty cursor means the listing is exhausted.
// ListingQuery values built by FrontpageQuery, SubredditQuery and
// friends capture the path and fixed parameters so callers can pull
// page after page through Client.Listing.
//
// # Authentication
//
// The client attaches a pre-provisioned bearer token to every request
// when one is configured. Obtaining the token is outside perch's scope;
// unauthenticated clients can still read public listings. Authenticated
// reports whether write actions are worth attempting.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Pass through a shared rate limiter (default 1 req/s, burst 5)
//   - Set Accept, User-Agent, and Authorization headers
//   - Return wrapped errors with context about what failed
//
// Reads retry on transport failures and 5xx responses with jittered
// exponential backoff. Writes are never retried.
//
// # Error Handling
//
// Non-2xx responses become *APIError carrying the status code; 401/403,
// 404, and 429 unwrap to ErrForbidden, ErrNotFound, and ErrRateLimited
// for errors.Is checks. Write endpoints that answer 200 with an error
// list in the {"json": ...} envelope surface those as ordinary errors.
package reddit
