// Package model defines the value types shared by the passmeter packages.
//
// The main types are:
//   - Assessment: the result of analyzing one password
//   - PatternMatch: a single weakness signal found by a detector
//   - DictionaryResult: weak-password and common-word lookups
//   - Strength: the bounded score together with its Tier
//   - FeedbackItem: an advisory message with a Severity
//   - AuditSummary and AuditDiff: aggregates produced by batch audits
//
// Every value is built once per analysis and never mutated afterwards, so
// the types can be passed between goroutines without synchronization.
// All of them serialize to JSON for reports, the HTTP API and the history
// database.
package model
