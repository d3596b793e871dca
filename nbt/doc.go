// Package nbt implements Minecraft's Named Binary Tag format: a typed,
// recursively nested binary tree with a big-endian wire encoding and a
// Modified UTF-8 string form.
//
// A Node is the in-memory representation of one tag. Trees are built
// either by decoding bytes with Decode, or in memory with the typed
// constructors (NewByte, NewCompound, ...) and the mutation API (Append,
// Prepend, InsertBefore, InsertAfter, RemoveAt, RemoveByKey). Encode
// serializes a tree back to bytes.
//
// The package is not safe for concurrent use on a single tree: readers
// and the mutation API assume exclusive access, matching the single-
// threaded, non-suspending model the format itself assumes.
package nbt
