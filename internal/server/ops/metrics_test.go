package ops

import (
	"testing"

	"github.com/dmitrijs2005/minichat/internal/server/chat"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

var _ chat.Recorder = (*Metrics)(nil)

func TestMetrics_Records(t *testing.T) {
	m := NewMetrics()

	m.Joined(true)
	m.Joined(true)
	m.Joined(false)
	m.Posted()
	m.Rejected("post", chat.ReasonTooLong)
	m.Rejected("post", chat.ReasonTooLong)
	m.Rejected("read", chat.ReasonUnauthorized)
	m.Size(2, 1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.joins.WithLabelValues("accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.joins.WithLabelValues("denied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.posts))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.rejected.WithLabelValues("post", "too_long")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejected.WithLabelValues("read", "unauthorized")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.members))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.messages))
}

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	a, b := NewMetrics(), NewMetrics()
	a.Posted()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.posts))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.posts))
}
