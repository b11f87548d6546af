package cli

import (
	"fmt"

	"github.com/ogurasousui/employee-tracker/internal/core/department"
	"github.com/ogurasousui/employee-tracker/internal/core/employee"
	"github.com/ogurasousui/employee-tracker/internal/core/role"
)

const noneLabel = "None"

// option は選択肢です。id が nil の選択肢は「なし」を表します。
type option struct {
	label string
	id    *int64
}

func departmentOptions(departments []*department.Department) []option {
	opts := make([]option, 0, len(departments))
	for _, d := range departments {
		opts = append(opts, option{label: d.Name, id: ptr(d.ID)})
	}
	return opts
}

func roleOptions(roles []*role.Role) []option {
	opts := make([]option, 0, len(roles))
	for _, r := range roles {
		opts = append(opts, option{label: r.Title, id: ptr(r.ID)})
	}
	return opts
}

func employeeOptions(employees []*employee.Employee) []option {
	opts := make([]option, 0, len(employees)+1)
	for _, e := range employees {
		opts = append(opts, option{label: e.FullName(), id: ptr(e.ID)})
	}
	return opts
}

func withNone(opts []option) []option {
	return append(opts[:len(opts):len(opts)], option{label: noneLabel})
}

// choose は選択肢を提示し、選ばれた ID を返します。「なし」が選ばれた場合は nil です。
func (a *App) choose(message string, opts []option) (*int64, error) {
	if len(opts) == 0 {
		return nil, errNoChoices
	}

	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.label
	}

	idx, err := a.prompt.Select(message, labels)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(opts) {
		return nil, fmt.Errorf("cli: selection %d out of range", idx)
	}

	return opts[idx].id, nil
}

// chooseID は「なし」を含まない選択肢から ID を選ばせます。
func (a *App) chooseID(message string, opts []option) (int64, error) {
	picked, err := a.choose(message, opts)
	if err != nil {
		return 0, err
	}
	if picked == nil {
		return 0, fmt.Errorf("cli: %q requires a value", message)
	}
	return *picked, nil
}

func ptr(v int64) *int64 {
	return &v
}
