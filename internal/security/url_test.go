package security

import "testing"

func TestNormalizePageURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "https", input: "https://example.com/a", want: "https://example.com/a"},
		{name: "http", input: "http://example.com", want: "http://example.com"},
		{name: "bare host", input: "example.com", want: "https://example.com"},
		{name: "whitespace", input: "  https://example.com  ", want: "https://example.com"},
		{name: "empty", input: "", wantErr: true},
		{name: "ftp", input: "ftp://example.com", wantErr: true},
		{name: "file", input: "file:///etc/passwd", wantErr: true},
		{name: "no host", input: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePageURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizePageURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizePageURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsLocalOrPrivateHost(t *testing.T) {
	tests := []struct {
		host string
		want bool
	}{
		{"localhost", true},
		{"app.localhost", true},
		{"127.0.0.1", true},
		{"::1", true},
		{"[::1]", true},
		{"10.1.2.3", true},
		{"172.16.0.1", true},
		{"172.32.0.1", false},
		{"192.168.1.1", true},
		{"169.254.0.1", true},
		{"fe80::1", true},
		{"fd00::1", true},
		{"0.0.0.0", true},
		{"8.8.8.8", false},
		{"example.com", false},
	}

	for _, tt := range tests {
		if got := IsLocalOrPrivateHost(tt.host); got != tt.want {
			t.Errorf("IsLocalOrPrivateHost(%q) = %v, want %v", tt.host, got, tt.want)
		}
	}

	if got := PageHost("http://127.0.0.1:8080/x"); got != "127.0.0.1" {
		t.Errorf("PageHost() = %q", got)
	}
}
