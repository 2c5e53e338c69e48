//go:build amd64

package simd

import "github.com/klauspost/cpuid/v2"

func detectArch(info *Info) {
	c := cpuid.CPU
	info.Vendor = c.VendorString
	info.Brand = c.BrandName
	if c.CacheLine > 0 {
		info.CacheLine = c.CacheLine
	}
	info.L2Cache = c.Cache.L2
	info.L3Cache = c.Cache.L3

	info.HasSSE2 = c.Supports(cpuid.SSE2)
	info.HasSSE41 = c.Supports(cpuid.SSE4)
	info.HasAVX2 = c.Supports(cpuid.AVX2)
	info.HasAVX512 = c.Supports(cpuid.AVX512F, cpuid.AVX512VL)
}
