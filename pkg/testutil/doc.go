// Package testutil provides helpers for filesort tests.
//
// Helpers take *testing.T and fail the test on setup errors so test
// bodies stay focused on behaviour. Real-filesystem helpers work under
// t.TempDir(); in-memory runs use filesystem.NewMemory() with
// CreateMemFile.
package testutil
