//go:build erosiondebug

package erosion

// Built with -tags erosiondebug, brush lookup misses panic instead of
// silently skipping the erosion step.
const debugAsserts = true
