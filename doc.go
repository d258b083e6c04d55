// Package tabular converts rows of heterogeneous records into
// presentation-ready tables in multiple output formats from a single
// declarative description of columns and style hints.
//
// A report is described once with [Column] and [NewRowSpec]; the RowSpec
// then projects any record source into [TableRow] values, and pluggable
// renderers turn the resulting [Table] into PDF, XLSX, HTML, text, CSV,
// TSV, Markdown, or JSON bytes through one contract:
//
//	spec, err := tabular.NewRowSpec(
//		tabular.Column("customer", "Customer"),
//		tabular.Column("invamt", "Invoice Amount", tabular.Money()),
//	)
//	if err != nil { ... }
//
//	table := tabular.NewTable("Invoices by Customer", spec)
//	if err := table.AppendAll(spec.MakeAll(records...)); err != nil { ... }
//
//	pdf, err := tabular.Marshal(tabular.PDF, table)   // print-ready document
//	xlsx, err := tabular.Marshal(tabular.XLSX, table) // same table, spreadsheet
//
// # Records
//
// A record needs no particular type. Each column's source key is resolved
// against the record through an ordered fallback: the [Fielder] interface,
// then a struct field or niladic method (case-insensitively), then a map
// key, then a decimal slice index. Dotted keys ("customer.name") resolve
// segment by segment. Records are projected independently, so mixed record
// shapes in one MakeAll call are fine as long as every record can satisfy
// every column.
//
// # Style hints
//
// Hints are a small fixed set — [Bold], [Money], [Number], [Align],
// [Width] — attached per column and copied onto every cell the column
// produces. Each backend maps hints to its native primitives (bold fonts,
// Excel number formats, CSS classes, alignment) and silently ignores hints
// it cannot express; CSV, for instance, carries none of them.
//
// # Renderers
//
// Every backend implements [Renderer]: a one-shot pure transformation of a
// [Table] into a self-contained byte buffer. Callers pick a backend by
// [Format] via [NewRenderer] or [Marshal], or construct a concrete
// renderer directly for backend options ([TextRenderer] borders,
// [PDFRenderer] paper size, [XLSXRenderer] sheet name, ...). Rendering
// never mutates the Table, so one Table can feed several backends, and
// separate renders may run concurrently without coordination.
//
// # Declarative definitions
//
// [LoadSpec] and [ParseSpec] read a YAML report definition (title,
// explanation, columns with their hints) into a validated RowSpec and a
// seeded Table. Unknown hint names are rejected at load time.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidSpec] — malformed column, row spec, definition file, or
//     render request, caught at construction
//   - [ErrMissingField] — a record lacks the field a column names
//   - [ErrFormatMismatch] — a value's type contradicts its format hint
//   - [ErrRender] — a backend-level formatting failure
//   - [ErrUnsupportedFormat] — unknown format name
//
// Nothing is retried and no partial output is ever returned: every
// operation is a deterministic pure function of its inputs.
package tabular
