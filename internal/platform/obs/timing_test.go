package obs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeLogsRequestIDAndError(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx := WithRequestID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", RequestID(ctx))

	err := errors.New("boom")
	Time(ctx, "test.op")(&err)

	out := buf.String()
	assert.Contains(t, out, "req_id=abc-123")
	assert.Contains(t, out, "op=test.op")
	assert.Contains(t, out, "err=boom")

	buf.Reset()
	var ok error
	Time(context.Background(), "test.ok")(&ok)
	assert.Contains(t, buf.String(), "op=test.ok")
	assert.NotContains(t, buf.String(), "err=")
}
