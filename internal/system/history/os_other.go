// Released under an MIT license. See LICENSE.

//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd)

package history

import "os"

func lock(*os.File, bool) error {
	return nil
}

func unlock(*os.File) error {
	return nil
}
