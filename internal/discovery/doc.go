// Package discovery enumerates the extension units of a namespace.
//
// Two strategies exist, chosen by an explicit deployment Mode rather than a
// process-wide flag:
//
//   - ModeStandard walks the namespace's search path. Every entry is the
//     directory of the namespace package; each `<name>.hcl` file directly
//     inside it is one leaf unit. Sub-directories are sub-packages and are
//     skipped, together with everything below them.
//   - ModeBundled is used when the binary carries its units in an embedded
//     tree that cannot be listed like a directory of the namespace. Every
//     Finder registered for the application's top-level package that also
//     implements TableOfContents contributes its listing; the union is
//     filtered to the namespace.
//
// Discover returns an iter.Seq2 that is lazy, finite and meant to be ranged
// over once. Standard results come in directory order, bundled results sorted
// by name; callers must not depend on either.
package discovery
