// Package mca reads and writes Minecraft's Anvil region-file container: a
// fixed 1024-chunk, sector-aligned file wrapping per-chunk compressed NBT.
package mca
