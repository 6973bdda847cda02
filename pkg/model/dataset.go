// pkg/model/dataset.go
package model

// Required columns for the salary dataset schema.
const (
	ColExperienceLevel   = "experience_level"
	ColEmploymentType    = "employment_type"
	ColCompanySize       = "company_size"
	ColRemoteRatio       = "remote_ratio"
	ColSalaryUSD         = "salary_in_usd"
	ColEmployeeResidence = "employee_residence"
	ColCompanyLocation   = "company_location"
	ColWorkYear          = "work_year"
)

// RequiredColumns lists every column the quality check expects to find.
func RequiredColumns() []string {
	return []string{
		ColExperienceLevel,
		ColEmploymentType,
		ColCompanySize,
		ColRemoteRatio,
		ColSalaryUSD,
		ColEmployeeResidence,
		ColCompanyLocation,
		ColWorkYear,
	}
}

// CategoricalColumns lists the columns whose distinct values are inventoried
// in the quality report.
func CategoricalColumns() []string {
	return []string{
		ColExperienceLevel,
		ColEmploymentType,
		ColCompanySize,
		ColRemoteRatio,
	}
}

// Row maps a column name to a cell value. After loading, cell values are
// nil (missing), string, int64 or float64.
type Row map[string]any

// Dataset is an ordered sequence of rows over a fixed column list. Row order
// is insertion order; column order matches the source header.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// NewDataset creates an empty dataset over the given columns.
func NewDataset(columns []string) *Dataset {
	return &Dataset{
		Columns: columns,
		Rows:    make([]Row, 0),
	}
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// HasColumn reports whether the dataset declares the named column.
func (d *Dataset) HasColumn(name string) bool {
	for _, col := range d.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Append adds a row to the dataset.
func (d *Dataset) Append(row Row) {
	d.Rows = append(d.Rows, row)
}
