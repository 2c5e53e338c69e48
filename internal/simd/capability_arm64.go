//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func detectArch(info *Info) {
	info.Vendor = "ARM"
	info.HasNEON = cpu.ARM64.HasASIMD
}
