package pathsafe_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/servedir/core/pathsafe"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "empty_input_yields_root",
			raw:      "",
			expected: "/",
		},
		{
			name:     "root_stays_root",
			raw:      "/",
			expected: "/",
		},
		{
			name:     "plain_file",
			raw:      "/index.html",
			expected: "/index.html",
		},
		{
			name:     "missing_leading_slash_added",
			raw:      "a/b/c",
			expected: "/a/b/c",
		},
		{
			name:     "dot_segments_dropped",
			raw:      "/a/./b/./c",
			expected: "/a/b/c",
		},
		{
			name:     "empty_segments_collapsed",
			raw:      "//a///b//",
			expected: "/a/b",
		},
		{
			name:     "dotdot_pops_previous_segment",
			raw:      "/a/b/../c",
			expected: "/a/c",
		},
		{
			name:     "dotdot_at_root_ignored",
			raw:      "/../../etc/passwd",
			expected: "/etc/passwd",
		},
		{
			name:     "all_dotdot_yields_root",
			raw:      "/../../../..",
			expected: "/",
		},
		{
			name:     "whitespace_trimmed_per_segment",
			raw:      "/ a / .. /b",
			expected: "/b",
		},
		{
			name:     "whitespace_only_segment_dropped",
			raw:      "/a/   /b",
			expected: "/a/b",
		},
		{
			name:     "trailing_slash_removed",
			raw:      "/a/b/",
			expected: "/a/b",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := pathsafe.Sanitize(tt.raw)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeProperties(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"", "/", "..", "../", "/..", "/../", "a/../../b", "/a/b/c",
		"//..//..//", "/.././.././etc/shadow", "....//....//",
		"/a/..\t/b", " / / / ", "/%2e%2e/x", "/a/b/../../../../../root",
		"a", ".", "./.", "/with space/file.txt", "/\x00weird",
	}

	for _, in := range inputs {
		sanitized := pathsafe.Sanitize(in)

		// Idempotent under re-sanitization.
		assert.Equal(t, sanitized, pathsafe.Sanitize(sanitized), "input %q", in)

		// Always absolute, never contains traversal or empty segments.
		require.True(t, strings.HasPrefix(sanitized, "/"), "input %q", in)
		if sanitized != "/" {
			for _, seg := range strings.Split(sanitized[1:], "/") {
				assert.NotEmpty(t, seg, "input %q", in)
				assert.NotEqual(t, "..", seg, "input %q", in)
				assert.NotEqual(t, ".", seg, "input %q", in)
			}
		}
	}
}

func TestIsSafe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate string
		root      string
		expected  bool
	}{
		{
			name:      "path_inside_root",
			candidate: "/var/www/html/index.html",
			root:      "/var/www/html",
			expected:  true,
		},
		{
			name:      "path_equals_root",
			candidate: "/var/www/html",
			root:      "/var/www/html",
			expected:  true,
		},
		{
			name:      "root_with_trailing_slash",
			candidate: "/var/www/html/a",
			root:      "/var/www/html/",
			expected:  true,
		},
		{
			name:      "sibling_with_common_prefix_rejected",
			candidate: "/var/www/html-evil/a",
			root:      "/var/www/html",
			expected:  false,
		},
		{
			name:      "parent_rejected",
			candidate: "/var/www",
			root:      "/var/www/html",
			expected:  false,
		},
		{
			name:      "unclean_candidate_escaping_root",
			candidate: "/var/www/html/../../../etc/passwd",
			root:      "/var/www/html",
			expected:  false,
		},
		{
			name:      "unclean_candidate_staying_inside",
			candidate: "/var/www/html/a/../b",
			root:      "/var/www/html",
			expected:  true,
		},
		{
			name:      "filesystem_root_admits_everything",
			candidate: "/anything/at/all",
			root:      "/",
			expected:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, pathsafe.IsSafe(tt.candidate, tt.root))
		})
	}
}

func TestValidateAndResolve(t *testing.T) {
	t.Parallel()

	t.Run("traversal_resolved_inside_root", func(t *testing.T) {
		t.Parallel()

		sanitized, resolved, err := pathsafe.ValidateAndResolve("/../../etc/passwd", "/var/www/html")
		require.NoError(t, err)
		assert.Equal(t, "/etc/passwd", sanitized)
		assert.Equal(t, "/var/www/html/etc/passwd", resolved)
	})

	t.Run("plain_request", func(t *testing.T) {
		t.Parallel()

		sanitized, resolved, err := pathsafe.ValidateAndResolve("/css/app.css", "/srv/site")
		require.NoError(t, err)
		assert.Equal(t, "/css/app.css", sanitized)
		assert.Equal(t, "/srv/site/css/app.css", resolved)
	})

	t.Run("root_request_resolves_to_root", func(t *testing.T) {
		t.Parallel()

		sanitized, resolved, err := pathsafe.ValidateAndResolve("/", "/srv/site/")
		require.NoError(t, err)
		assert.Equal(t, "/", sanitized)
		assert.Equal(t, "/srv/site", resolved)
	})
}
