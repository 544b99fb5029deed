// Package shrink implements the greedy variance-reduction preconditioner
// used as an alternative to the constructive search when a trivial valid
// placement isn't available: it nudges vertices toward each other under a
// relaxed ("no hole") containment rule, periodically checking whether the
// rigid placer can now fit the shrunk figure into the real hole.
package shrink
