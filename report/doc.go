// Package report defines the diagnostic output of an analysis run: the
// [Issue] value type, the closed defect taxonomy ([Kind]), and the
// [Aggregate] function that deduplicates, orders and summarizes the issues
// every detector produced into a final [Report].
//
// Ordering is page ascending, then severity (errors before warnings before
// informational issues), then vertical position on the page. The verdict
// fails when any error-severity issue exists.
package report
