package scheduler

import (
	"strings"

	"github.com/acadgrid/timetable/pkg/model"
)

// FindPartner resolves the cross-listed counterpart of course within
// pool, or nil. A candidate qualifies only if the declaration is
// mutual: course's Shared_With tokens must resolve to the candidate AND
// the candidate's tokens must resolve back to course. Unilateral
// cross-listing never pairs. The first mutual match in pool order wins.
func FindPartner(course *model.Course, pool []*model.Course, st *State) *model.Course {
	if strings.TrimSpace(course.SharedWith) == "" {
		return nil
	}
	for _, cand := range pool {
		if cand == course || st.Assigned(cand) {
			continue
		}
		if cand.Code != course.Code || cand.Year != course.Year {
			continue
		}
		if cand.Branch == course.Branch && cand.Section == course.Section {
			continue
		}
		if sharedWithMatches(course.SharedWith, cand) && sharedWithMatches(cand.SharedWith, course) {
			return cand
		}
	}
	return nil
}

// sharedWithMatches reports whether any token of the comma/semicolon
// separated list resolves to target's branch, section, branch-section
// composite, or course code. Matching is case-insensitive.
func sharedWithMatches(list string, target *model.Course) bool {
	composite := strings.ToLower(target.Branch + "-" + target.Section)
	for _, tok := range splitShareTokens(list) {
		switch tok {
		case strings.ToLower(target.Branch),
			strings.ToLower(target.Section),
			composite,
			strings.ToLower(target.Code):
			return true
		}
	}
	return false
}

func splitShareTokens(list string) []string {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ';'
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
