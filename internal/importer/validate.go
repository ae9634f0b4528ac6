package importer

import (
	"fmt"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/domain"
)

// ValidateDocument reports questionable data in doc. Every finding is a
// warning: the dashboard still renders a document with problems, degrading
// unknown values to their raw strings.
func ValidateDocument(doc *Document) []error {
	if doc == nil {
		return nil
	}
	var errs []error

	seen := make(map[FlexString]int, len(doc.Projects))
	for i := range doc.Projects {
		p := &doc.Projects[i]
		prefix := fmt.Sprintf("projects[%d]", i)

		if p.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is missing", prefix))
		} else if first, dup := seen[p.ID]; dup {
			errs = append(errs, fmt.Errorf("%s.id %q duplicates projects[%d]", prefix, p.ID, first))
		} else {
			seen[p.ID] = i
		}

		if p.Status != "" && !domain.Status(p.Status).Known() {
			errs = append(errs, fmt.Errorf("%s.status: unknown value %q", prefix, p.Status))
		}
		if p.LifecycleStage != "" && !domain.Stage(p.LifecycleStage).Known() {
			errs = append(errs, fmt.Errorf("%s.lifecycleStage: unknown value %q", prefix, p.LifecycleStage))
		}

		errs = append(errs, validateProgress(prefix+".plannedProgress", p.PlannedProgress)...)
		errs = append(errs, validateProgress(prefix+".actualProgress", p.ActualProgress)...)
	}

	return errs
}

func validateProgress(field string, v FlexFloat) []error {
	if v.Value == nil {
		return nil
	}
	if *v.Value < 0 || *v.Value > 100 {
		return []error{fmt.Errorf("%s: %g is outside 0-100", field, *v.Value)}
	}
	return nil
}

// Warnings flattens validation findings into log-friendly strings.
func Warnings(errs []error) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = err.Error()
	}
	return out
}
