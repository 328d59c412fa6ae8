// Package naming provides consistent naming functions for platform resources.
//
// Meter identifiers follow the pattern MTR-{prefix}-{seq}, where prefix is a
// sanitized slice of the site name and seq is a 1-based, zero-padded sequence
// number. The scheme is deterministic so a re-run over the same drafts
// produces the same identifiers; uniqueness is enforced server-side, not here.
package naming
