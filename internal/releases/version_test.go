package releases

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr bool
	}{
		{in: "0.83.51", want: Version{Major: 0, Minor: 83, Patch: 51}},
		{in: "v1.2.3", want: Version{Major: 1, Minor: 2, Patch: 3}},
		{in: "0.112.7-rc.1", want: Version{Major: 0, Minor: 112, Patch: 7, Pre: "rc.1"}},
		{in: "10.0.0-alpha", want: Version{Major: 10, Pre: "alpha"}},
		{in: "1.2", wantErr: true},
		{in: "1", wantErr: true},
		{in: "1.2.3+build.5", wantErr: true},
		{in: "01.2.3", wantErr: true},
		{in: "", wantErr: true},
		{in: "latest", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVersion(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVersion) {
					t.Fatalf("ParseVersion(%q) error = %v, want ErrInvalidVersion", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVersionStringRoundTrip(t *testing.T) {
	for _, s := range []string{"0.83.51", "0.1.6-rc.1", "2.0.0", "0.11.4-beta.2"} {
		v, err := ParseVersion(s)
		if err != nil {
			t.Fatalf("ParseVersion(%q): %v", s, err)
		}
		if v.String() != s {
			t.Errorf("round trip %q -> %q", s, v.String())
		}
	}
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.1", -1},
		{"1.10.0", "1.9.0", 1},
		{"0.83.51", "0.83.51", 0},
		{"1.0.0-rc.1", "1.0.0", -1},
		{"1.0.0-rc.2", "1.0.0-rc.10", -1},
	}
	for _, tt := range tests {
		got := MustParseVersion(tt.a).Compare(MustParseVersion(tt.b))
		if got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVersionJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Version{"version": MustParseVersion("0.98.2")})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"version":"0.98.2"}` {
		t.Errorf("unexpected JSON: %s", data)
	}

	var out struct {
		Version Version `json:"version"`
	}
	if err := json.Unmarshal([]byte(`{"version":"v1.2.3-rc.1"}`), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Version.Equal(MustParseVersion("1.2.3-rc.1")) {
		t.Errorf("unmarshalled %v", out.Version)
	}
}
