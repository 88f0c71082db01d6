// Package audit analyzes whole password lists concurrently and folds the
// results into an AuditSummary.
//
// Individual assessments are discarded as soon as they are counted, so a
// summary can be stored or shared without exposing any password. The list
// itself is only identified by its SHA3-256 digest.
package audit
