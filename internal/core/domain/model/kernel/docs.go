// Package kernel provides the shared value objects of the roadside domain:
// UUID identifiers and geographic Locations. Both are immutable, validated at
// construction, and invalid as zero values.
package kernel
