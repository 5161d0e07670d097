//go:build !vkerndebug

package hwy

// DebugChecks is true in builds tagged vkerndebug. Kernels assert their
// length preconditions when it is set.
const DebugChecks = false
