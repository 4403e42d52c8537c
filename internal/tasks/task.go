package tasks

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/born-ml/numtasks/backend/cpu"
	"github.com/born-ml/numtasks/tensor"
)

// Category groups exercises by the kind of array operation they show.
type Category string

// Exercise categories.
const (
	Construction  Category = "construction"
	Reshaping     Category = "reshaping"
	DType         Category = "dtype"
	Padding       Category = "padding"
	Concatenation Category = "concatenation"
	Memory        Category = "memory"
	Set           Category = "set"
	Arithmetic    Category = "arithmetic"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{Construction, Reshaping, DType, Padding, Concatenation, Memory, Set, Arithmetic}
}

// ParseCategory validates a category name.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(Categories(), c) {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return c, nil
}

var (
	// ErrUnknownTask is returned when an ID or name matches no exercise.
	ErrUnknownTask = errors.New("unknown task")
	// ErrUnknownCategory is returned for category names outside Categories.
	ErrUnknownCategory = errors.New("unknown category")
)

// Step is one logged line of an exercise run: the input it was given or a
// result it produced.
type Step struct {
	Label string            `json:"label" yaml:"label"`
	Value string            `json:"value" yaml:"value"`
	Shape string            `json:"shape,omitempty" yaml:"shape,omitempty"`
	DType string            `json:"dtype,omitempty" yaml:"dtype,omitempty"`
	// Array holds the array behind Value for steps that produced one.
	Array *tensor.RawTensor `json:"-" yaml:"-"`
}

// Task is a catalogue entry.
type Task struct {
	ID       int
	Name     string
	Category Category
	Summary  string
	// Run executes the exercise on its sample input.
	Run func(b *cpu.Backend) ([]Step, error)
}

// String returns "ID name".
func (t Task) String() string {
	return fmt.Sprintf("%d %s", t.ID, t.Name)
}

// Catalog returns all exercises ordered by ID.
func Catalog() []Task {
	out := slices.Clone(registry)
	slices.SortFunc(out, func(a, b Task) int { return a.ID - b.ID })
	return out
}

// Lookup finds an exercise by numeric ID or by name. Names match
// case-insensitively and accept either snake_case or kebab-case.
func Lookup(idOrName string) (Task, error) {
	key := strings.TrimSpace(idOrName)
	if id, err := strconv.Atoi(key); err == nil {
		for _, t := range registry {
			if t.ID == id {
				return t, nil
			}
		}
		return Task{}, fmt.Errorf("%w: id %d", ErrUnknownTask, id)
	}

	name := strings.ReplaceAll(strings.ToLower(key), "-", "_")
	for _, t := range registry {
		if t.Name == name {
			return t, nil
		}
	}
	return Task{}, fmt.Errorf("%w: %q", ErrUnknownTask, idOrName)
}

// Filter returns the exercises whose ID is in ids and whose category is in
// categories, ordered by ID. An empty filter matches everything.
func Filter(ids []int, categories []Category) ([]Task, error) {
	for _, id := range ids {
		if _, err := Lookup(strconv.Itoa(id)); err != nil {
			return nil, err
		}
	}
	wanted := make([]Category, 0, len(categories))
	for _, c := range categories {
		parsed, err := ParseCategory(string(c))
		if err != nil {
			return nil, err
		}
		wanted = append(wanted, parsed)
	}

	var out []Task
	for _, t := range Catalog() {
		if len(ids) > 0 && !slices.Contains(ids, t.ID) {
			continue
		}
		if len(wanted) > 0 && !slices.Contains(wanted, t.Category) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func arrayStep[T tensor.DType](label string, t *tensor.Tensor[T, *cpu.Backend]) Step {
	return Step{
		Label: label,
		Value: t.String(),
		Shape: t.Shape().String(),
		DType: t.DType().String(),
		Array: t.Raw(),
	}
}

func textStep(label string, value any) Step {
	return Step{Label: label, Value: fmt.Sprint(value)}
}
