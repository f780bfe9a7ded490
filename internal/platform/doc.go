// Package platform models the capability levels of the host server platform.
//
// A Level is resolved once at startup from the identifier the host supplies
// (typically the server implementation's package name, e.g.
// "org.bukkit.craftbukkit.v1_16_R3") and is then passed by value to the
// components that gate behaviour on it. Levels are totally ordered by
// declaration; unknown identifiers resolve to the lowest level.
package platform
