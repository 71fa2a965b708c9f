package netcfg

import "testing"

func TestServerURL(t *testing.T) {
	cases := []struct {
		location, fallback, want string
	}{
		{"http://host/index.html?ip=10.0.0.7", "1.2.3.4", "ws://10.0.0.7:2794"},
		{"http://host/?lang=en&ip=10.0.0.8&x=1", "", "ws://10.0.0.8:2794"},
		{"http://host/index.html", "1.2.3.4", "ws://1.2.3.4:2794"},
		{"", "", "ws://192.168.1.55:2794"},
		{"http://host/?ip=", "", "ws://192.168.1.55:2794"},
	}
	for _, c := range cases {
		if got := ServerURL(c.location, c.fallback); got != c.want {
			t.Fatalf("ServerURL(%q, %q): want %q, got %q", c.location, c.fallback, c.want, got)
		}
	}
}
