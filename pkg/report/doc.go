// Package report projects analysis results into the Markdown fragments that
// make up the published page: a summary table of the larger parties and a
// collapsible per-party breakdown listing every member.
package report
