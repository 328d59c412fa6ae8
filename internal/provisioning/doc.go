// Package provisioning turns staged wizard drafts into an ordered sequence
// of create calls against the platform API.
//
// The sequence is strictly sequential: site first, then assets in draft
// order, then meters, then the optional bill. Later calls depend on
// identifiers returned by earlier ones (the site id, the per-asset ids),
// which is why there is no parallel fan-out. Failures stop the sequence
// where it stands; records created before the failing call stay persisted
// server-side and are never rolled back or retried.
package provisioning
