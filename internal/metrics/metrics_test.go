package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveStore(t *testing.T) {
	counter := StoreOperations.WithLabelValues("menu", "insert", "ok")
	before := testutil.ToFloat64(counter)

	ObserveStore("menu", "insert", "ok", time.Now().Add(-10*time.Millisecond))
	ObserveStore("menu", "insert", "ok", time.Now())

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, 0.0, testutil.ToFloat64(StoreOperations.WithLabelValues("menu", "insert", "unavailable")))
}
