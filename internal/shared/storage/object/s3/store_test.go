package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "workbooks/file.xlsx", want: "workbooks/file.xlsx"},
		{name: "simple prefix", prefix: "root", key: "workbooks/file.xlsx", want: "root/workbooks/file.xlsx"},
		{name: "prefix trailing slash", prefix: "root/", key: "workbooks/file.xlsx", want: "root/workbooks/file.xlsx"},
		{name: "prefix and key slashes", prefix: "/root/", key: "/workbooks/file.xlsx", want: "root/workbooks/file.xlsx"},
		{name: "nested prefix", prefix: "root/sub", key: "workbooks/file.xlsx", want: "root/sub/workbooks/file.xlsx"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}
