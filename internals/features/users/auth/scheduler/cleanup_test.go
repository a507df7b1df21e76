package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPurgeCutoff(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.AddDate(0, 0, -7), purgeCutoff(now, 7))
	assert.Equal(t, now, purgeCutoff(now, 0))

	// TTL negatif tidak boleh menggeser cutoff ke masa depan
	assert.Equal(t, now, purgeCutoff(now, -3))
}
