package main

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/surrealdb/repeater.go"
	"github.com/surrealdb/repeater.go/internal/codec"
	"github.com/surrealdb/repeater.go/pkg/models"
	"github.com/surrealdb/repeater.go/pkg/rules"
	"github.com/surrealdb/repeater.go/pkg/scope"
)

func newContextsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contexts",
		Short: "List the contexts of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			t := newTable("ID", "LABEL", "TYPE", "ITEMS", "SOURCE")
			for _, c := range cat.Contexts() {
				t.Row(c.ID, c.Label, c.Type, strconv.Itoa(len(c.Items)), c.Source)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
}

func newFieldsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields <context>",
		Short: "List the fields, filter conditions and sort options of a context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := a.editor()
			if err != nil {
				return err
			}
			sortable, err := ed.SortableFields(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			t := newTable("FIELD", "LABEL", "TYPE", "SORTABLE")
			for _, f := range ed.Catalog().FieldsFor(args[0]) {
				ok := slices.ContainsFunc(sortable, func(s models.FieldDef) bool { return s.ID == f.ID })
				t.Row(f.ID, f.Label, string(f.Type), strconv.FormatBool(ok))
			}
			fmt.Fprintln(w, t.String())

			conditions := newTable("CONDITION", "LABEL", "NEEDS VALUE")
			for _, c := range rules.Conditions() {
				conditions.Row(string(c.Kind), c.Label, strconv.FormatBool(c.Kind.NeedsValue()))
			}
			fmt.Fprintln(w, conditions.String())
			return nil
		},
	}
}

// renderOptions are the flags of the render command.
type renderOptions struct {
	section    string
	contextID  string
	source     string
	attach     []string
	filters    []string
	sorts      []string
	pageSize   int
	pages      int
	noLoadMore bool
	query      bool
}

func newRenderCmd(a *app) *cobra.Command {
	o := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one repeater",
		Long: `Render places a repeater in a section, connects it to a context and prints
the records it shows.

With --source parent the repeater shares the settings of the nearest
--attach of the same context (its section first, then the page), and the
rule flags edit those shared settings. With --source add it owns its
settings.

Examples:
  repeaterctl render --context recipes --filter course:equals:breakfast --sort title
  repeaterctl render --attach section1=team --context team --source parent --pages 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.section, "section", "section1", "section to place the repeater in")
	f.StringVar(&o.contextID, "context", "", "context the repeater shows (required)")
	f.StringVar(&o.source, "source", string(models.SourceAdd), "assignment source: add or parent")
	f.StringArrayVar(&o.attach, "attach", nil, "attach a context first, as scope=context (scope is page or a section id)")
	f.StringArrayVar(&o.filters, "filter", nil, "filter rule field:condition[:value], repeatable")
	f.StringArrayVar(&o.sorts, "sort", nil, "sort rule field[:asc|desc], repeatable; first is primary")
	f.IntVar(&o.pageSize, "page-size", 0, "items per page, clamped to 1..100")
	f.IntVar(&o.pages, "pages", 1, "pages shown, as if load more was pressed pages-1 times")
	f.BoolVar(&o.noLoadMore, "no-load-more", false, "disable the load more button")
	f.BoolVar(&o.query, "query", false, "print the SurrealQL preview")
	_ = cmd.MarkFlagRequired("context")
	return cmd
}

func (a *app) render(cmd *cobra.Command, o *renderOptions) error {
	ed, err := a.editor()
	if err != nil {
		return err
	}
	if err := attachAll(ed, o.attach); err != nil {
		return err
	}

	id, err := ed.AddRepeater(o.section)
	if err != nil {
		return err
	}
	ref := models.RepeaterRef{SectionID: o.section, ComponentID: id}
	if err := ed.AssignRepeaterContext(ref, o.contextID, models.AssignSource(o.source)); err != nil {
		return err
	}
	if err := configure(cmd, ed, ref.Scope(), o); err != nil {
		return err
	}

	page, err := ed.Render(ref, o.pages)
	if err != nil {
		return err
	}
	summary, err := ed.SortSummary(ref)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	title := page.Label
	if title == "" {
		title = ed.Catalog().Label(o.contextID)
	}
	printTitle(w, title)
	printMuted(w, "Sort: %s", summary)

	columns := []string{"id"}
	for _, f := range ed.Catalog().FieldsFor(o.contextID) {
		if f.ID == "dateCreated" || f.Type == models.FieldRichText {
			continue
		}
		columns = append(columns, f.ID)
	}
	t := newTable(columns...)
	for _, item := range page.Items {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = cell(item, c)
		}
		t.Row(row...)
	}
	fmt.Fprintln(w, t.String())

	status := fmt.Sprintf("Showing %d of %d", page.Visible, page.Total)
	if page.HasMore {
		status += " (load more)"
	}
	printMuted(w, "%s", status)

	if o.query {
		sql, vars, err := ed.QueryPreview(ref, o.pages)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, sql)
		keys := make([]string, 0, len(vars))
		for k := range vars {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			printMuted(w, "$%s = %q", k, vars[k])
		}
	}
	return nil
}

func attachAll(ed *repeater.Editor, attach []string) error {
	for _, s := range attach {
		sc, contextID, err := parseAttach(s)
		if err != nil {
			return err
		}
		if err := ed.AttachContext(sc, contextID); err != nil {
			return err
		}
	}
	return nil
}

// configure applies the rule flags that were given to the settings in
// effect at sc.
func configure(cmd *cobra.Command, ed *repeater.Editor, sc models.Scope, o *renderOptions) error {
	f := cmd.Flags()
	if f.Changed("page-size") {
		if err := ed.SetPageSize(sc, "", o.pageSize); err != nil {
			return err
		}
	}
	if f.Changed("no-load-more") {
		if err := ed.SetLoadMore(sc, "", !o.noLoadMore); err != nil {
			return err
		}
	}
	if f.Changed("filter") {
		filters := make([]models.FilterRule, 0, len(o.filters))
		for _, s := range o.filters {
			rule, err := parseFilter(s)
			if err != nil {
				return err
			}
			filters = append(filters, rule)
		}
		if err := ed.SetFilterRules(sc, "", filters); err != nil {
			return err
		}
	}
	if f.Changed("sort") {
		sorts := make([]models.SortRule, 0, len(o.sorts))
		for _, s := range o.sorts {
			rule, err := parseSort(s)
			if err != nil {
				return err
			}
			sorts = append(sorts, rule)
		}
		if err := ed.SetSortRules(sc, "", sorts); err != nil {
			return err
		}
	}
	return nil
}

func newLabelsCmd(a *app) *cobra.Command {
	var attach, add []string

	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Show the instance label of every attachment",
		Long: `Labels attaches contexts and adds repeaters owning their own context, then
prints the "<label> <n>" instance label of each attachment.

Example:
  repeaterctl labels --attach page=recipes --attach section1=recipes --add section2=recipes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := a.editor()
			if err != nil {
				return err
			}
			if err := attachAll(ed, attach); err != nil {
				return err
			}
			for _, s := range add {
				sc, contextID, err := parseAttach(s)
				if err != nil {
					return err
				}
				id, err := ed.AddRepeater(sc.SectionID)
				if err != nil {
					return err
				}
				if err := ed.AttachContext(models.RepeaterScope(sc.SectionID, id), contextID); err != nil {
					return err
				}
			}

			labels := ed.InstanceLabels()
			keys := make([]scope.Key, 0, len(labels))
			for k := range labels {
				keys = append(keys, k)
			}
			slices.SortFunc(keys, func(x, y scope.Key) int {
				if c := cmpLabel(labels[x], labels[y]); c != 0 {
					return c
				}
				return cmpLabel(x.Scope.String(), y.Scope.String())
			})

			t := newTable("LABEL", "SCOPE", "CONTEXT")
			for _, k := range keys {
				t.Row(labels[k], k.Scope.String(), k.ContextID)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&attach, "attach", nil, "attach a context, as scope=context")
	cmd.Flags().StringArrayVar(&add, "add", nil, "add a repeater owning a context, as section=context")
	return cmd
}

// cmpLabel orders labels naturally, so "Recipes 2" comes before "Recipes 10".
func cmpLabel(a, b string) int {
	return rules.CompareNatural(a, b)
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <out>",
		Short: "Write the catalog in another format",
		Long: `Convert writes the loaded catalog to a file whose extension picks the
format: .yaml, .yml, .json or .cbor.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			format, err := codec.FormatFromPath(args[0])
			if err != nil {
				return err
			}
			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			if err := cat.Encode(f, format); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			a.log.Info("catalog written", "path", args[0], "format", string(format))
			printMuted(cmd.OutOrStdout(), "wrote %s (%s)", args[0], format)
			return nil
		},
	}
}
