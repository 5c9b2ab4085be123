// Package output formats operation results for display or machine consumption.
//
// Four formats are supported:
//   - text     human-readable terminal output (default)
//   - json     full structured result
//   - yaml     full structured result as YAML
//   - markdown summary with the prime list in a collapsible section
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and an [*engine.Result]. [WriteResult]
// handles destination selection.
package output
