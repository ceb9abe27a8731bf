package normalize

import "testing"

func TestFileName_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "identity", in: "report.pdf", out: "report.pdf"},
		{name: "empty", in: "", out: ""},
		{name: "case fold", in: "Q3 REPORT.PDF", out: "q3 report.pdf"},
		{name: "unix path", in: "/tmp/uploads/scan.png", out: "scan.png"},
		{name: "windows path", in: `C:\Users\me\Desktop\Invoice.docx`, out: "invoice.docx"},
		{name: "trailing slash", in: "dir/notes.txt/", out: "notes.txt"},
		{name: "utf8 repair", in: string([]byte{0xff, 'a', '.', 't', 'x', 't'}), out: "a.txt"},
		{name: "zero width", in: "in\u200Bvoice.pdf", out: "invoice.pdf"},
		{name: "combining marks", in: "cafe\u0301 menu.pdf", out: "cafe menu.pdf"},
		{name: "fullwidth", in: "ＤＡＴＡ.csv", out: "data.csv"},
		{name: "ligature", in: "oﬃce.txt", out: "office.txt"},
		{name: "whitespace runs", in: "  my \t\n  file .pdf  ", out: "my file .pdf"},
		{name: "control runes", in: "a\x00b\x7fc\u0085.txt", out: "abc.txt"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FileName(tc.in); got != tc.out {
				t.Fatalf("FileName(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestFileName_Idempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"Ｒｅｐｏｒｔ  Final.PDF", `a\b/c d.txt`, "x\u0301y.md"} {
		once := FileName(in)
		if twice := FileName(once); twice != once {
			t.Fatalf("FileName not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestExtension(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"report.pdf":     "pdf",
		"archive.tar.GZ": "gz",
		".env":           "",
		"noext":          "",
		"trailing.":      "",
		"":               "",
	}
	for in, want := range cases {
		if got := Extension(in); got != want {
			t.Fatalf("Extension(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"form_scan":   "Form Scan",
		"spreadsheet": "Spreadsheet",
		"slide-deck":  "Slide Deck",
		"":            "",
	}
	for in, want := range cases {
		if got := Title(in); got != want {
			t.Fatalf("Title(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitize_FastPathKeepsString(t *testing.T) {
	t.Parallel()

	in := "plain name.txt"
	if got := Sanitize(in); got != in {
		t.Fatalf("Sanitize changed clean input: %q", got)
	}
}
