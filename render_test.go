package tabular_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/bjaus/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoiceTable(t *testing.T) *tabular.Table {
	t.Helper()
	spec := invoiceSpec(t)
	table := tabular.NewTable("Invoices by Customer", spec)
	require.NoError(t, table.AppendAll(spec.MakeAll(invoiceRecords()...)))
	return table
}

// ============================================================
// Text
// ============================================================

func TestTextRendererBorderRounded(t *testing.T) {
	t.Parallel()
	out, err := tabular.Marshal(tabular.Text, invoiceTable(t))
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "╭")
	assert.Contains(t, s, "╰")
	assert.Contains(t, s, "│")
	assert.Contains(t, s, "Invoices by Customer")
	assert.Contains(t, s, "Customer")
	assert.Contains(t, s, "Acme")
	assert.Contains(t, s, "250.50")
}

func TestTextRendererBorderStyles(t *testing.T) {
	t.Parallel()
	table := invoiceTable(t)
	tests := map[string]struct {
		border   tabular.BorderStyle
		contains string
	}{
		"ascii":  {border: tabular.BorderASCII, contains: "+"},
		"heavy":  {border: tabular.BorderHeavy, contains: "┏"},
		"double": {border: tabular.BorderDouble, contains: "╔"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := &tabular.TextRenderer{Border: tt.border}
			out, err := r.Render(table)
			require.NoError(t, err)
			assert.Contains(t, string(out), tt.contains)
		})
	}
}

func TestTextRendererBorderNone(t *testing.T) {
	t.Parallel()
	r := &tabular.TextRenderer{Border: tabular.BorderNone}
	out, err := r.Render(invoiceTable(t))
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "Invoices by Customer")
	assert.Contains(t, s, "-----")
	assert.NotContains(t, s, "│")
}

func TestTextRendererNumericRightAligned(t *testing.T) {
	t.Parallel()
	spec, err := tabular.NewRowSpec(
		tabular.Column("name", "Name"),
		tabular.Column("amount", "Amount", tabular.Money()),
	)
	require.NoError(t, err)
	table := tabular.NewTable("", spec)
	require.NoError(t, table.AppendAll(spec.MakeAll(
		map[string]any{"name": "Acme", "amount": 5.0},
		map[string]any{"name": "Globex", "amount": 1234.5},
	)))
	out, err := tabular.Marshal(tabular.Text, table)
	require.NoError(t, err)
	// The shorter amount is padded on the left to line up with the longer.
	assert.Contains(t, string(out), "    $5.00")
	assert.Contains(t, string(out), "$1,234.50")
}

func TestTextRendererTruncation(t *testing.T) {
	t.Parallel()
	r := &tabular.TextRenderer{MaxWidths: []int{6}}
	out, err := r.Render(invoiceTable(t))
	require.NoError(t, err)
	assert.Contains(t, string(out), "...")
}

func TestTextRendererWrap(t *testing.T) {
	t.Parallel()
	r := &tabular.TextRenderer{WrapWidths: []int{4}}
	out, err := r.Render(invoiceTable(t))
	require.NoError(t, err)
	assert.Contains(t, string(out), "Glob")
	assert.Contains(t, string(out), "ex")
}

func TestTextRendererRowNumbers(t *testing.T) {
	t.Parallel()
	r := &tabular.TextRenderer{NumberHeader: "#"}
	out, err := r.Render(invoiceTable(t))
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "#")
	assert.Contains(t, s, "1")
	assert.Contains(t, s, "2")
}

func TestTextRendererPaging(t *testing.T) {
	t.Parallel()
	r := &tabular.TextRenderer{PageSize: 1}
	out, err := r.Render(invoiceTable(t))
	require.NoError(t, err)
	// Header repeats before the second body row.
	assert.Equal(t, 2, strings.Count(string(out), "Customer")-strings.Count(string(out), "Invoices by Customer"))
}

func TestTextRendererStyles(t *testing.T) {
	t.Parallel()
	r := &tabular.TextRenderer{Styles: []func(string) string{
		func(s string) string { return ">" + s + "<" },
	}}
	out, err := r.Render(invoiceTable(t))
	require.NoError(t, err)
	assert.Contains(t, string(out), ">Acme")
}

func TestTextRendererExplanationCaption(t *testing.T) {
	t.Parallel()
	table := invoiceTable(t)
	table.Explanation = "two customers"
	out, err := tabular.Marshal(tabular.Text, table)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(out), "two customers\n"))
}

// ============================================================
// HTML
// ============================================================

func TestHTMLRenderer(t *testing.T) {
	t.Parallel()
	table := invoiceTable(t)
	table.Explanation = "Amounts per customer"
	out, err := tabular.Marshal(tabular.HTML, table)
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "<h2>Invoices by Customer</h2>")
	assert.Contains(t, s, "<p>Amounts per customer</p>")
	assert.Contains(t, s, `<table class="reporttable">`)
	assert.Contains(t, s, "<th>Customer</th>")
	assert.Contains(t, s, `<tr class="tr_odd">`)
	assert.Contains(t, s, `<tr class="tr_even">`)
	assert.Contains(t, s, `class="cell_bold"`)
	assert.Contains(t, s, "<td>Acme</td>")
	assert.Contains(t, s, "</table>")
}

func TestHTMLRendererEscapes(t *testing.T) {
	t.Parallel()
	spec, err := tabular.NewRowSpec(tabular.Column("name", "Name <b>"))
	require.NoError(t, err)
	table := tabular.NewTable("Q&A", spec)
	require.NoError(t, table.AppendAll(spec.MakeAll(map[string]any{"name": "<script>"})))
	out, err := tabular.Marshal(tabular.HTML, table)
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "Q&amp;A")
	assert.Contains(t, s, "Name &lt;b&gt;")
	assert.Contains(t, s, "&lt;script&gt;")
	assert.NotContains(t, s, "<script>")
}

func TestHTMLRendererMoneyClass(t *testing.T) {
	t.Parallel()
	spec, err := tabular.NewRowSpec(tabular.Column("amount", "Total", tabular.Money()))
	require.NoError(t, err)
	table := tabular.NewTable("", spec)
	require.NoError(t, table.AppendAll(spec.MakeAll(map[string]any{"amount": 1234.5})))
	out, err := tabular.Marshal(tabular.HTML, table)
	require.NoError(t, err)
	assert.Contains(t, string(out), `class="cell_money"`)
	assert.Contains(t, string(out), "$1,234.50")
}

// ============================================================
// CSV / TSV
// ============================================================

func TestCSVRenderer(t *testing.T) {
	t.Parallel()
	out, err := tabular.Marshal(tabular.CSV, invoiceTable(t))
	require.NoError(t, err)
	assert.Equal(t, "Customer,Invoice Amount\nAcme,100.00\nGlobex,250.50\n", string(out))
}

func TestCSVRendererQuoting(t *testing.T) {
	t.Parallel()
	spec, err := tabular.NewRowSpec(tabular.Column("name", "Name"))
	require.NoError(t, err)
	table := tabular.NewTable("", spec)
	require.NoError(t, table.AppendAll(spec.MakeAll(map[string]any{"name": "hello, world"})))
	out, err := tabular.Marshal(tabular.CSV, table)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"hello, world"`)
}

func TestTSVRenderer(t *testing.T) {
	t.Parallel()
	out, err := tabular.Marshal(tabular.TSV, invoiceTable(t))
	require.NoError(t, err)
	assert.Equal(t, "Customer\tInvoice Amount\nAcme\t100.00\nGlobex\t250.50\n", string(out))
}

// ============================================================
// Markdown
// ============================================================

func TestMarkdownRenderer(t *testing.T) {
	t.Parallel()
	out, err := tabular.Marshal(tabular.Markdown, invoiceTable(t))
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "## Invoices by Customer")
	assert.Contains(t, s, "| Customer")
	assert.Contains(t, s, "**100.00**")
	lines := strings.Split(strings.TrimSpace(s), "\n")
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, "| "))
}

func TestMarkdownRendererAlignmentMarkers(t *testing.T) {
	t.Parallel()
	spec, err := tabular.NewRowSpec(
		tabular.Column("name", "Name", tabular.Align(tabular.AlignCenter)),
		tabular.Column("amount", "Amt", tabular.Money()),
	)
	require.NoError(t, err)
	table := tabular.NewTable("", spec)
	require.NoError(t, table.AppendAll(spec.MakeAll(map[string]any{"name": "Acme", "amount": 1.0})))
	out, err := tabular.Marshal(tabular.Markdown, table)
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, ":-")
	assert.Contains(t, s, "-:")
}

// ============================================================
// JSON
// ============================================================

func TestJSONRenderer(t *testing.T) {
	t.Parallel()
	out, err := tabular.Marshal(tabular.JSON, invoiceTable(t))
	require.NoError(t, err)
	var doc struct {
		Title   string     `json:"title"`
		Headers []string   `json:"headers"`
		Rows    [][]string `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))
	assert.Equal(t, "Invoices by Customer", doc.Title)
	assert.Equal(t, []string{"Customer", "Invoice Amount"}, doc.Headers)
	assert.Equal(t, [][]string{{"Acme", "100.00"}, {"Globex", "250.50"}}, doc.Rows)
}

func TestJSONRendererIndent(t *testing.T) {
	t.Parallel()
	r := &tabular.JSONRenderer{Indent: "  "}
	out, err := r.Render(invoiceTable(t))
	require.NoError(t, err)
	assert.Contains(t, string(out), "  \"headers\"")
}

// ============================================================
// Contract properties
// ============================================================

func TestRenderIdempotent(t *testing.T) {
	t.Parallel()
	table := invoiceTable(t)
	for _, f := range []tabular.Format{
		tabular.Text, tabular.HTML, tabular.CSV, tabular.TSV,
		tabular.Markdown, tabular.JSON, tabular.PDF,
	} {
		first, err := tabular.Marshal(f, table)
		require.NoError(t, err, f)
		second, err := tabular.Marshal(f, table)
		require.NoError(t, err, f)
		assert.Equal(t, first, second, f)
	}
}

func TestRenderDoesNotMutateTable(t *testing.T) {
	t.Parallel()
	table := invoiceTable(t)
	before := append([]tabular.TableRow(nil), table.Body...)
	header := table.Header
	for _, f := range tabular.Formats() {
		_, err := tabular.Marshal(f, table)
		require.NoError(t, err, f)
	}
	assert.Equal(t, header, table.Header)
	assert.Equal(t, before, table.Body)
}

func TestBackendsAgreeOnCellContents(t *testing.T) {
	t.Parallel()
	table := invoiceTable(t)
	for _, f := range []tabular.Format{tabular.Text, tabular.HTML, tabular.CSV, tabular.Markdown, tabular.JSON} {
		out, err := tabular.Marshal(f, table)
		require.NoError(t, err, f)
		for _, want := range []string{"Customer", "Invoice Amount", "Acme", "100.00", "Globex", "250.50"} {
			assert.Contains(t, string(out), want, f)
		}
	}
}
