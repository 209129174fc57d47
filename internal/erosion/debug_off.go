//go:build !erosiondebug

package erosion

const debugAsserts = false
