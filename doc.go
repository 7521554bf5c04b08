// Package partyreport renders the party affiliation analysis into a Markdown
// report and an HTML page.
//
// The pipeline lives in pkg/pipeline; this package re-exports the common entry
// points and ships the default templates used by `partyreport init`.
package partyreport
