// Package catalog holds the read-only set of contexts a document can attach,
// together with the field table of every context type.
//
// A catalog is supplied once at startup, from a file ([Load]), a reader
// ([Decode]) or the embedded demo data ([Demo]), and is never modified
// afterwards. Session edits to individual records are kept apart in
// [Overrides] and layered over copies of the catalog items.
package catalog
