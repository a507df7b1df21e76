// file: internals/features/school/teachers/service/assignment_resolver.go
package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassRef: kelas hasil resolve grant (untuk dropdown & pengecekan akses).
type ClassRef struct {
	ClassID   uuid.UUID `json:"class_id"`
	ClassName string    `json:"class_name"`
}

// ResolveAssignedClasses: union kelas dari grant mapel + wali kelas,
// dedupe, urut nama. Kelas nonaktif tidak ikut.
func ResolveAssignedClasses(ctx context.Context, db *gorm.DB, teacherID, schoolID uuid.UUID) ([]ClassRef, error) {
	var fromSubjects []ClassRef
	if err := db.WithContext(ctx).
		Table("subject_assignments AS sa").
		Select("c.class_id AS class_id, c.class_name AS class_name").
		Joins("JOIN classes c ON c.class_id = sa.subject_assignment_class_id AND c.class_deleted_at IS NULL").
		Where("sa.subject_assignment_teacher_id = ? AND sa.subject_assignment_school_id = ?", teacherID, schoolID).
		Where("c.class_is_active = true").
		Scan(&fromSubjects).Error; err != nil {
		return nil, err
	}

	var fromHomeroom []ClassRef
	if err := db.WithContext(ctx).
		Table("homeroom_assignments AS ha").
		Select("c.class_id AS class_id, c.class_name AS class_name").
		Joins("JOIN classes c ON c.class_id = ha.homeroom_assignment_class_id AND c.class_deleted_at IS NULL").
		Where("ha.homeroom_assignment_teacher_id = ? AND ha.homeroom_assignment_school_id = ?", teacherID, schoolID).
		Where("c.class_is_active = true").
		Scan(&fromHomeroom).Error; err != nil {
		return nil, err
	}

	return MergeClassRefs(fromSubjects, fromHomeroom), nil
}

// MergeClassRefs: gabung dua sumber grant, buang duplikat, urut nama
// (tie-break pakai id biar deterministik).
func MergeClassRefs(lists ...[]ClassRef) []ClassRef {
	seen := make(map[uuid.UUID]struct{})
	out := make([]ClassRef, 0)
	for _, list := range lists {
		for _, ref := range list {
			if _, ok := seen[ref.ClassID]; ok {
				continue
			}
			seen[ref.ClassID] = struct{}{}
			out = append(out, ref)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ClassName != out[j].ClassName {
			return out[i].ClassName < out[j].ClassName
		}
		return out[i].ClassID.String() < out[j].ClassID.String()
	})
	return out
}

// ClassIDsOf: ambil id saja, untuk EnsureClassAllowed.
func ClassIDsOf(refs []ClassRef) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(refs))
	for _, r := range refs {
		ids = append(ids, r.ClassID)
	}
	return ids
}
