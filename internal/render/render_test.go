package render

import (
	"reflect"
	"strings"
	"testing"
)

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     []string
		absent   []string
	}{
		{
			name:     "heading ids",
			markdown: "# Store hours\n",
			want:     []string{`<h1 id="store-hours">Store hours</h1>`},
		},
		{
			name:     "relative links stay in tab",
			markdown: "[Orders](/ViewCustomerOrders)\n",
			want:     []string{`<a href="/ViewCustomerOrders">Orders</a>`},
			absent:   []string{`target="_blank"`},
		},
		{
			name:     "external links open new tab",
			markdown: "[Supplier](https://example.com)\n",
			want:     []string{`target="_blank"`},
		},
		{
			name:     "tables",
			markdown: "| Day | Open |\n|-----|------|\n| Mon | 8am |\n",
			want:     []string{"<table>", "<td>Mon</td>"},
		},
		{
			name:     "raw html kept",
			markdown: "<form id=\"order\">\n<button>Go</button>\n</form>\n",
			want:     []string{`<form id="order">`},
		},
		{
			name:     "windows newlines",
			markdown: "# Aisle\r\n\r\nFresh *fruit*\r\n",
			want:     []string{`<h1 id="aisle">Aisle</h1>`, "<em>fruit</em>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(Markdown([]byte(tt.markdown)))
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Expected %q in %s", w, got)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(got, a) {
					t.Errorf("Did not expect %q in %s", a, got)
				}
			}
		})
	}
}

func TestHeadings(t *testing.T) {
	md := "# Menu\n\n## Produce\n\n# Checkout *now*\n"
	want := []string{"Menu", "Checkout now"}

	if got := Headings([]byte(md)); !reflect.DeepEqual(got, want) {
		t.Errorf("Headings() = %v, want %v", got, want)
	}

	if got := Headings([]byte("no headings here\n")); len(got) != 0 {
		t.Errorf("Expected no headings, got %v", got)
	}
}
