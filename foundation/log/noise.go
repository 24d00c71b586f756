// File: noise.go
// Title: Noise Suppression
// Description: Fixed policy table forcing the namespaces of verbose
//              third-party dependencies to a minimum level, so they never
//              inherit a more verbose root level.
// Author: voyager-mc
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation

package log

// noiseFloor is the minimum level forced onto noisy namespaces.
const noiseFloor = LevelWarning

// noisyNamespaces lists the dependency namespaces whose chatter drowns
// out application records at DEBUG and INFO. Suppression goes through the
// ordinary explicit-level mechanism; it is not a separate filter.
var noisyNamespaces = []string{
	"urllib3",
	"requests",
	"httpx",
	"httpcore",
	"openai",
	"langchain",
	"chromadb",
	"posthog",
}
