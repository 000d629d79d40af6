package report

import "testing"

func TestSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Widget X", "Widget_X"},
		{"Aparelho de Pressão", "Aparelho_de_Pressao"},
		{"  café & açúcar  ", "cafe_acucar"},
		{"self-cleaning_filter", "self-cleaning_filter"},
		{"a   b!!c", "a_b_c"},
		{"", "produto"},
		{"!!!", "produto"},
		{"日本語", "produto"},
	}
	for _, c := range cases {
		if got := Slug(c.in); got != c.want {
			t.Fatalf("Slug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
