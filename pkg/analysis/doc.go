// Package analysis exposes the read-only input model produced by the upstream
// affiliation analysis: legislators grouped by party and split by whether
// their social profile mentions that party. Loader implementations live under
// internal/analysis but satisfy the contracts declared here.
package analysis
