package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "sman-1-jakarta", Slugify("SMAN 1 Jakarta", 0))
	assert.Equal(t, "matematika-kelas-7a", Slugify("  Matematika — Kelas 7A!  ", 0))
	assert.Equal(t, "cafe-melange", Slugify("Café Mélange", 0)) // diakritik hilang
	assert.Equal(t, "a-b-c", Slugify("a---b___c", 0))
}

func TestSlugify_EmptyFallback(t *testing.T) {
	assert.Equal(t, "item", Slugify("", 0))
	assert.Equal(t, "item", Slugify("???!!!", 0))
	assert.Equal(t, "item", Slugify("---", 0))
}

func TestSlugify_MaxLen(t *testing.T) {
	got := Slugify("pengumuman penerimaan siswa baru tahun ajaran", 20)
	assert.LessOrEqual(t, len(got), 20)
	assert.NotEqual(t, "-", got[len(got)-1:]) // ujung tidak boleh '-'
}

func TestTrimForSuffix(t *testing.T) {
	assert.Equal(t, "abc", trimForSuffix("abc", "-2", 10))

	got := trimForSuffix("pengumuman-sekolah", "-12", 12)
	assert.LessOrEqual(t, len(got)+3, 12)

	// suffix lebih panjang dari budget → fallback pendek
	assert.Equal(t, "x", trimForSuffix("abc", "-123456", 5))
}
