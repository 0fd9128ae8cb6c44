//go:build !unix && !windows

package filesystem

var errCrossDevice error

// IsCrossDevice always reports false where renames cannot cross devices
func IsCrossDevice(err error) bool {
	return false
}
