// Package pipeline runs the report generation end to end: load the analysis,
// build the Markdown fragments, splice them into the Markdown template,
// convert the document to HTML and write the page.
//
// A conversion request that never reaches the server is logged and leaves the
// previous page untouched without failing the run, unless the pipeline is
// configured as strict. A response with any status other than 200 is logged
// and its body is still written.
package pipeline
