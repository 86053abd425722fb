// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Snapshot images, projection cache, Prometheus textfile metrics
// 0.2.0 - Terminal viewer with orbit/pan/zoom camera, adjustable cutoff
// 0.1.0 - Initial release: HYG loader, galactic frame, headless projection
