package options

import (
	"testing"
	"time"
)

func TestGetOn(t *testing.T) {
	now := time.Date(2023, time.March, 10, 12, 0, 0, 0, time.UTC)
	tests := map[string]struct {
		in      string
		want    string
		wantErr bool
	}{
		"unset":          {in: "", want: ""},
		"full date":      {in: "2023-1-28", want: "2023-01-28"},
		"short past":     {in: "3/1", want: "2023-03-01"},
		"short upcoming": {in: "12/25", want: "2022-12-25"},
		"garbage":        {in: "tomorrow", wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			o := &OnOptions{OnString: tc.in}
			got, err := o.GetOn(now)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("GetOn(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
