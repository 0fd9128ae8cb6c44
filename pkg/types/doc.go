// Package types defines the core types and interfaces shared by the sorter.
// This includes the FS abstraction, the Rule and FileTask data model, the
// SortRequest run input and the per-file outcomes a run reports.
package types
