// Package widgets provides the concrete telemetry widgets built on the
// shared lifecycle runtime: wallet orb, capsule card, energy gauge, UTID
// badge, AmI pulse, shadow twin and proof ticker. Each widget is a stateless
// spec; per-instance state lives in the runtime driver. Importing this
// package registers every tag in the default registry.
package widgets
