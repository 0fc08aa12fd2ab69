// Package collector assembles node inventory reports. A Collector fans out
// one probe per report section, tolerates individual probe failures, and
// always produces a complete report.
package collector
