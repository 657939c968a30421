package storage

import (
	"context"
	"fmt"
)

// Ref is a (id, label) pair used to populate a selection prompt.
type Ref struct {
	ID    int64
	Label string
}

// Departments returns every department labelled by name.
func (s *Store) Departments(ctx context.Context) ([]Ref, error) {
	return s.singleLabelRefs(ctx, "list departments", `SELECT id, name FROM departments ORDER BY id`)
}

// Roles returns every role labelled by title.
func (s *Store) Roles(ctx context.Context) ([]Ref, error) {
	return s.singleLabelRefs(ctx, "list roles", `SELECT id, title FROM roles ORDER BY id`)
}

// Employees returns every employee labelled "first last".
func (s *Store) Employees(ctx context.Context) ([]Ref, error) {
	return s.personRefs(ctx, "list employees")
}

// Managers returns the employees that can be picked as a manager, labelled
// "first last". Any employee may manage another.
func (s *Store) Managers(ctx context.Context) ([]Ref, error) {
	return s.personRefs(ctx, "list managers")
}

func (s *Store) singleLabelRefs(ctx context.Context, op, query string) ([]Ref, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.query(ctx, query)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	var refs []Ref
	for rows.Next() {
		var ref Ref
		if err := rows.Scan(&ref.ID, &ref.Label); err != nil {
			return nil, wrap(op, fmt.Errorf("scan: %w", err))
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return refs, nil
}

func (s *Store) personRefs(ctx context.Context, op string) ([]Ref, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.query(ctx, `SELECT id, first_name, last_name FROM employees ORDER BY id`)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	var refs []Ref
	for rows.Next() {
		var (
			id          int64
			first, last string
		)
		if err := rows.Scan(&id, &first, &last); err != nil {
			return nil, wrap(op, fmt.Errorf("scan: %w", err))
		}
		refs = append(refs, Ref{ID: id, Label: first + " " + last})
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return refs, nil
}
