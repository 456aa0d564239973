// The [repeater] package is the editing core of a page builder's repeater
// element: a list or grid whose items come from a named data source called
// a context.
//
// # Contexts and scopes
//
// Contexts come from a read-only [catalog.Catalog]. A context can be
// attached at three nested scopes: the page, a section, or a single
// repeater. Each attachment carries its own pagination, filter and sort
// settings ([models.Settings]).
//
// A repeater is assigned a context in one of two ways. With
// [models.SourceParent] it shares the settings of the nearest enclosing
// attachment (its section first, then the page). With [models.SourceAdd]
// it owns a settings record nobody else sees.
//
// # Editor
//
// [Editor] owns a whole editing session. It validates ids against the
// catalog and the document, applies settings changes, tracks the canvas
// selection and renders what each repeater shows:
//
//	ed, _ := repeater.New(catalog.Demo())
//	_ = ed.AttachContext(models.SectionScope("section1"), "team")
//	id, _ := ed.AddRepeater("section1")
//	ref := models.RepeaterRef{SectionID: "section1", ComponentID: id}
//	_ = ed.AssignRepeaterContext(ref, "team", models.SourceParent)
//	page, _ := ed.Render(ref, 1)
//
// The pure building blocks live in their own packages: filter and sort
// evaluation in [github.com/surrealdb/repeater.go/pkg/rules], attachment
// state in [github.com/surrealdb/repeater.go/pkg/scope] and selection
// routing in [github.com/surrealdb/repeater.go/pkg/selection]. None of them
// return errors; only the Editor does, for ids it does not know.
//
// # Personalities
//
// [selection.Studio] connects contexts at every scope. [selection.Classic]
// only lets a repeater add its own context.
package repeater
