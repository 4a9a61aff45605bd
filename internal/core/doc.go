// Package core provides the business logic for influencer evaluation.
//
// This package contains all domain logic independent of any UI or
// transport layer. It is used by the web handlers and the CLI alike.
//
// # Scoring
//
// [Evaluate] turns six 1-5 ratings and four counters into an engagement
// rate, a qualitative score and a [Tier]:
//
//	eval, err := core.Evaluate(ratings, core.Metrics{Reach: 5000, Likes: 200, Comments: 50, Shares: 10})
//	// eval.EngagementRate == 5.2, eval.Tier depends on the ratings
//
// # Records and Sessions
//
// Every saved submission becomes an immutable [Record] appended to the
// [Store] of its [Session]. Sessions are held by a [SessionRegistry] and are
// dropped after an idle timeout; nothing is written to disk.
//
// # Export
//
// [RenderReport] serializes records to BOM-prefixed UTF-8 CSV named
// IRM_Report_YYYYMMDD.csv. An empty store produces [ErrNoRecords] and no file.
//
// # Error Handling
//
// Errors are mapped to user-facing messages with support codes by
// [MapError]: VAL (input), EXP (export), SES (session), REQ, RATE.
package core
