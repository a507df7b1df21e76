// file: internals/features/school/teachers/service/assignment_resolver_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeClassRefs_DedupeAndSort(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	fromSubjects := []ClassRef{
		{ClassID: b, ClassName: "VIII B"},
		{ClassID: a, ClassName: "VII A"},
	}
	fromHomeroom := []ClassRef{
		{ClassID: a, ClassName: "VII A"}, // duplikat dari grant mapel
		{ClassID: c, ClassName: "IX C"},
	}

	got := MergeClassRefs(fromSubjects, fromHomeroom)

	require.Len(t, got, 3)
	assert.Equal(t, "IX C", got[0].ClassName)
	assert.Equal(t, "VII A", got[1].ClassName)
	assert.Equal(t, "VIII B", got[2].ClassName)
	assert.Equal(t, a, got[1].ClassID)
}

func TestMergeClassRefs_Empty(t *testing.T) {
	got := MergeClassRefs(nil, nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMergeClassRefs_SingleSource(t *testing.T) {
	a := uuid.New()
	got := MergeClassRefs([]ClassRef{{ClassID: a, ClassName: "X IPA 1"}})
	require.Len(t, got, 1)
	assert.Equal(t, a, got[0].ClassID)
}

func TestClassIDsOf(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	ids := ClassIDsOf([]ClassRef{{ClassID: a}, {ClassID: b}})
	assert.Equal(t, []uuid.UUID{a, b}, ids)
}
