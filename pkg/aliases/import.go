package aliases

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/web/pkg/errors"
	"github.com/arthur-debert/web/pkg/logging"
)

// Conflict is an imported alias whose URL differs from the stored one
type Conflict struct {
	Name     string
	Existing string
	Imported string
}

// Decision resolves one conflict. The "all" variants also settle every
// conflict that follows.
type Decision int

const (
	KeepExisting Decision = iota
	UseImported
	KeepAllExisting
	UseAllImported
)

// Resolver decides a conflict; remaining counts this conflict and the ones after it
type Resolver func(c Conflict, remaining int) (Decision, error)

// ImportPlan classifies imported aliases against the current table
type ImportPlan struct {
	New       []Alias
	Conflicts []Conflict
	Unchanged int
}

// ImportSummary reports what an import did
type ImportSummary struct {
	Added       int
	Overwritten int
	Skipped     int
	Unchanged   int
}

// String renders the summary line printed after an import
func (s ImportSummary) String() string {
	var parts []string
	if s.Added > 0 {
		parts = append(parts, fmt.Sprintf("%d added", s.Added))
	}
	if s.Overwritten > 0 {
		parts = append(parts, fmt.Sprintf("%d overwritten", s.Overwritten))
	}
	if s.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", s.Skipped))
	}
	if s.Unchanged > 0 {
		parts = append(parts, fmt.Sprintf("%d unchanged", s.Unchanged))
	}
	if len(parts) == 0 {
		return "Nothing to import."
	}
	return "Import complete: " + strings.Join(parts, ", ") + "."
}

// PlanImport compares imported against current, in imported's order
func PlanImport(current, imported *Document) ImportPlan {
	var plan ImportPlan
	for _, entry := range imported.Entries() {
		existing, ok := current.Get(entry.Name)
		switch {
		case !ok:
			plan.New = append(plan.New, entry)
		case existing == entry.URL:
			plan.Unchanged++
		default:
			plan.Conflicts = append(plan.Conflicts, Conflict{
				Name:     entry.Name,
				Existing: existing,
				Imported: entry.URL,
			})
		}
	}
	return plan
}

// Import merges the aliases of imported into the store. New aliases are
// added directly; conflicts go through resolve until it answers with one of
// the "all" decisions.
func (s *Store) Import(imported *Document, resolve Resolver) (ImportSummary, error) {
	done := logging.LogOperationStart(logging.GetLogger("aliases"), "import")
	defer done()

	for _, name := range imported.Names() {
		if err := ValidateName(name); err != nil {
			return ImportSummary{}, errors.Wrap(err, errors.ErrImport, "Invalid alias in input")
		}
	}

	doc, err := s.Load()
	if err != nil {
		return ImportSummary{}, err
	}

	plan := PlanImport(doc, imported)
	summary := ImportSummary{Added: len(plan.New), Unchanged: plan.Unchanged}

	for _, entry := range plan.New {
		doc.Set(entry.Name, entry.URL)
	}

	var bulk *Decision
	for i, conflict := range plan.Conflicts {
		decision := KeepExisting
		if bulk != nil {
			decision = *bulk
		} else {
			decision, err = resolve(conflict, len(plan.Conflicts)-i)
			if err != nil {
				return ImportSummary{}, errors.Wrap(err, errors.ErrImport, "Import cancelled")
			}
			if decision == KeepAllExisting || decision == UseAllImported {
				d := decision
				bulk = &d
			}
		}

		switch decision {
		case UseImported, UseAllImported:
			doc.Set(conflict.Name, conflict.Imported)
			summary.Overwritten++
		default:
			summary.Skipped++
		}
	}

	if summary.Added == 0 && summary.Overwritten == 0 {
		return summary, nil
	}
	return summary, s.Save(doc)
}

// Always returns a Resolver that answers every conflict with d
func Always(d Decision) Resolver {
	return func(Conflict, int) (Decision, error) {
		return d, nil
	}
}
