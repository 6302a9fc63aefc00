package widgets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBalance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{1234.5, "1,234.50"},
		{0, "0.00"},
		{999.999, "1,000.00"},
		{1000000, "1,000,000.00"},
		{42, "42.00"},
		{-1234.5, "-1,234.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBalance(tt.in), "input %v", tt.in)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "hell…", truncate("hello world", 5))
	assert.Equal(t, "hello", truncate("hello", 1))
}

func TestShortHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc123", shortHash("abc123"))
	assert.Equal(t, "0xab…beef", shortHash("0xab1234567890beef"))
}

func TestTimeAgo(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "never", timeAgo(time.Time{}, now))
	assert.Equal(t, "just now", timeAgo(now, now))
	assert.Equal(t, "30s ago", timeAgo(now.Add(-30*time.Second), now))
	assert.Equal(t, "5m ago", timeAgo(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", timeAgo(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2d ago", timeAgo(now.Add(-48*time.Hour), now))
}

func TestMeter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "███░░", meter(3, 5))
	assert.Equal(t, "░░░░░", meter(-1, 5))
	assert.Equal(t, "█████", meter(9, 5))
}
