// file: internals/features/cbt/tests/model/cbt_test_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func tp(t time.Time) *time.Time { return &t }

func TestWindowOpen(t *testing.T) {
	now := time.Now()
	m := CBTTestModel{
		TestStartsAt: tp(now.Add(-time.Hour)),
		TestEndsAt:   tp(now.Add(time.Hour)),
	}

	assert.True(t, m.WindowOpen(now))
	assert.False(t, m.WindowOpen(now.Add(-2*time.Hour))) // belum dibuka
	assert.False(t, m.WindowOpen(now.Add(2*time.Hour)))  // sudah berakhir
	assert.False(t, m.WindowOpen(*m.TestEndsAt))         // batas akhir eksklusif
	assert.True(t, m.WindowOpen(*m.TestStartsAt))        // batas awal inklusif
}

func TestWindowOpen_NilSidesAlwaysOpen(t *testing.T) {
	now := time.Now()

	// tanpa jadwal: selalu terbuka
	none := CBTTestModel{}
	assert.True(t, none.WindowOpen(now))

	// hanya batas akhir
	endOnly := CBTTestModel{TestEndsAt: tp(now.Add(time.Hour))}
	assert.True(t, endOnly.WindowOpen(now))
	assert.False(t, endOnly.WindowOpen(now.Add(2*time.Hour)))

	// hanya batas awal
	startOnly := CBTTestModel{TestStartsAt: tp(now)}
	assert.True(t, startOnly.WindowOpen(now.Add(time.Hour)))
	assert.False(t, startOnly.WindowOpen(now.Add(-time.Hour)))
}

func TestWindowOrdered(t *testing.T) {
	now := time.Now()

	assert.True(t, (&CBTTestModel{}).WindowOrdered())
	assert.True(t, (&CBTTestModel{TestStartsAt: tp(now)}).WindowOrdered())
	assert.True(t, (&CBTTestModel{
		TestStartsAt: tp(now), TestEndsAt: tp(now.Add(time.Minute)),
	}).WindowOrdered())

	assert.False(t, (&CBTTestModel{
		TestStartsAt: tp(now), TestEndsAt: tp(now),
	}).WindowOrdered())
	assert.False(t, (&CBTTestModel{
		TestStartsAt: tp(now), TestEndsAt: tp(now.Add(-time.Minute)),
	}).WindowOrdered())
}
