// Package scope tracks which contexts are attached at each scope of a
// document and resolves the settings that apply to a repeater.
//
// A document has one page, a fixed ordered list of sections, and any number
// of repeaters inside each section. The page and every section carry an
// ordered set of attachments, each pairing a context id with its own
// [models.Settings]. A repeater is assigned at most one context, either
// inherited from an enclosing attachment ([models.SourceParent]) or owned by
// the repeater itself ([models.SourceAdd]).
//
// Derived values such as instance labels are recomputed from the current
// state on every call and never cached.
package scope
