package valueobjects

import "fmt"

// Department is the fixed set of departments a visit can target.
type Department string

const (
	DepartmentHR         Department = "HR"
	DepartmentIT         Department = "IT"
	DepartmentFinance    Department = "Finance"
	DepartmentOperations Department = "Operations"
	DepartmentMarketing  Department = "Marketing"
)

var validDepartments = map[Department]bool{
	DepartmentHR:         true,
	DepartmentIT:         true,
	DepartmentFinance:    true,
	DepartmentOperations: true,
	DepartmentMarketing:  true,
}

func (d Department) String() string {
	return string(d)
}

func (d Department) IsValid() bool {
	return validDepartments[d]
}

func NewDepartment(s string) (Department, error) {
	d := Department(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid department: %s", s)
	}
	return d, nil
}

// AllDepartments returns the enumerated department set in display order.
func AllDepartments() []Department {
	return []Department{
		DepartmentHR,
		DepartmentIT,
		DepartmentFinance,
		DepartmentOperations,
		DepartmentMarketing,
	}
}
