package pipeline

import (
	"context"
	"fmt"

	"roster/internal/prompt"
	"roster/internal/storage"
	"roster/internal/table"
)

// Store is the storage capability the actions need. *storage.Store implements it.
type Store interface {
	Departments(ctx context.Context) ([]storage.Ref, error)
	Roles(ctx context.Context) ([]storage.Ref, error)
	Employees(ctx context.Context) ([]storage.Ref, error)
	Managers(ctx context.Context) ([]storage.Ref, error)

	ViewDepartments(ctx context.Context) ([]table.Record, error)
	ViewRoles(ctx context.Context) ([]table.Record, error)
	ViewEmployees(ctx context.Context) ([]table.Record, error)

	AddDepartment(ctx context.Context, name string) error
	AddRole(ctx context.Context, title, salary string, departmentID int64) error
	AddEmployee(ctx context.Context, firstName, lastName string, roleID int64, managerID *int64) error
	UpdateRoleDepartment(ctx context.Context, roleID, departmentID int64) error
	UpdateEmployee(ctx context.Context, employeeID, roleID int64, managerID *int64) error
	DeleteDepartment(ctx context.Context, departmentID int64) error
	DeleteRole(ctx context.Context, roleID int64) error
	DeleteEmployee(ctx context.Context, employeeID int64) error
}

// Fetch loads one reference list and turns it into options for a Select question.
type Fetch struct {
	// Key names the option list; Select questions refer to it.
	Key string
	// Noun is used in the "no <noun> available" report when the list is empty.
	Noun string
	// Load reads the reference rows.
	Load func(ctx context.Context, store Store) ([]storage.Ref, error)
	// Build converts the rows into options. OptionsFromRefs when nil.
	Build func(refs []storage.Ref) []prompt.Option
}

// QuestionKind selects the prompt used for a question.
type QuestionKind int

const (
	// QuestionInput asks for free text.
	QuestionInput QuestionKind = iota
	// QuestionSelect asks for one option of a fetched list.
	QuestionSelect
)

// Question is one entry of an action's prompt schema.
type Question struct {
	Key     string
	Kind    QuestionKind
	Message string
	// Options is the Fetch key providing the choices of a Select question.
	Options string
}

// Input builds a free-text question.
func Input(key, message string) Question {
	return Question{Key: key, Kind: QuestionInput, Message: message}
}

// Select builds a single-choice question over the options fetched under fetchKey.
func Select(key, message, fetchKey string) Question {
	return Question{Key: key, Kind: QuestionSelect, Message: message, Options: fetchKey}
}

// Action describes one menu action. Either View or Mutate is set.
type Action struct {
	// Name is the menu label.
	Name string

	Fetches   []Fetch
	Questions []Question
	// Confirm, when set, is asked after the questions with a default of No.
	Confirm string

	Mutate func(ctx context.Context, store Store, answers Answers) error
	View   func(ctx context.Context, store Store) ([]table.Record, error)

	// Success is printed after Mutate succeeds.
	Success string
	// Cancelled is printed when the confirmation is declined.
	Cancelled string
	// Failure describes the action in error reports, e.g. "adding role".
	Failure string
}

// Answers holds the user's answers keyed by question key.
type Answers struct {
	text    map[string]string
	choices map[string]prompt.Option
}

func newAnswers() Answers {
	return Answers{
		text:    make(map[string]string),
		choices: make(map[string]prompt.Option),
	}
}

// SetText records a free-text answer.
func (a Answers) SetText(key, value string) { a.text[key] = value }

// SetChoice records a Select answer.
func (a Answers) SetChoice(key string, opt prompt.Option) { a.choices[key] = opt }

// Text returns the free-text answer for key.
func (a Answers) Text(key string) string { return a.text[key] }

// Choice returns the option chosen for key.
func (a Answers) Choice(key string) (prompt.Option, bool) {
	opt, ok := a.choices[key]
	return opt, ok
}

// ID returns the non-null identifier chosen for key.
func (a Answers) ID(key string) (int64, error) {
	opt, ok := a.choices[key]
	if !ok {
		return 0, fmt.Errorf("missing answer %q", key)
	}
	if opt.ID == nil {
		return 0, fmt.Errorf("answer %q has no identifier", key)
	}
	return *opt.ID, nil
}

// OptionalID returns the identifier chosen for key, nil for the null option.
func (a Answers) OptionalID(key string) *int64 {
	opt, ok := a.choices[key]
	if !ok || opt.ID == nil {
		return nil
	}
	id := *opt.ID
	return &id
}

// validate checks that every question has an answer of its kind.
func (a Answers) validate(questions []Question) error {
	for _, q := range questions {
		switch q.Kind {
		case QuestionInput:
			if _, ok := a.text[q.Key]; !ok {
				return fmt.Errorf("missing answer %q", q.Key)
			}
		case QuestionSelect:
			if _, ok := a.choices[q.Key]; !ok {
				return fmt.Errorf("missing choice %q", q.Key)
			}
		default:
			return fmt.Errorf("question %q has unknown kind %d", q.Key, q.Kind)
		}
	}
	return nil
}
