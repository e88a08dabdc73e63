package normalize

import "testing"

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercases", in: "Leones FC", want: "leones fc"},
		{name: "trims", in: "  garcía ", want: "garcía"},
		{name: "keeps diacritics", in: "García", want: "garcía"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Query(tt.in); got != tt.want {
				t.Errorf("Query() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Ana Rodriguez", want: "ana.rodriguez"},
		{name: "diacritics", in: "Sofía García Pérez", want: "sofia.garcia.perez"},
		{name: "extra spaces", in: "  María   Fernández ", want: "maria.fernandez"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Email(tt.in); got != tt.want {
				t.Errorf("Email() = %q, want %q", got, tt.want)
			}
		})
	}
}
