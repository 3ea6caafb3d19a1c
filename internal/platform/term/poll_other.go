//go:build !unix

package term

import "errors"

var errPollUnsupported = errors.New("term: non-blocking input is not supported on this platform")

// pollByte has no non-blocking read outside unix.
func pollByte(int) (byte, bool, error) {
	return 0, false, errPollUnsupported
}
