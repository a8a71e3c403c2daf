package time

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider(t *testing.T) {
	p := NewRealTimeProvider()

	now := p.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.GreaterOrEqual(t, p.Since(now.Add(-time.Second)), core.Second)

	ctx, cancel := p.WithTimeout(context.Background(), core.Millisecond)
	defer cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}
