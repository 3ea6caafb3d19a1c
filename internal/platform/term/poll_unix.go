//go:build unix

package term

import (
	"golang.org/x/sys/unix"
)

// pollByte reads one byte from fd if one is ready right now.
func pollByte(fd int) (byte, bool, error) {
	fds := []unix.PollFd{
		{Fd: int32(fd), Events: unix.POLLIN},
	}

	for {
		n, err := unix.Poll(fds, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, false, err
		}
		if n == 0 || fds[0].Revents&(unix.POLLIN|unix.POLLHUP) == 0 {
			return 0, false, nil
		}
		break
	}

	var buf [1]byte
	rn, err := unix.Read(fd, buf[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, false, nil
		}
		return 0, false, err
	}
	if rn == 0 {
		// EOF
		return 0, false, nil
	}
	return buf[0], true, nil
}
