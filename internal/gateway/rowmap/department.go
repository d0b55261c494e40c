package rowmap

import "nexhr/internal/domain/directory"

type DepartmentRow struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Color     string  `json:"color"`
	HeadCount int     `json:"head_count"`
	Budget    int64   `json:"budget"`
	ManagerID *string `json:"manager_id"`
	Icon      string  `json:"icon"`
}

func ToDepartment(row DepartmentRow) directory.Department {
	return directory.Department{
		ID:        row.ID,
		Name:      row.Name,
		Color:     row.Color,
		HeadCount: row.HeadCount,
		Budget:    row.Budget,
		ManagerID: row.ManagerID,
		Icon:      row.Icon,
	}
}

func FromDepartment(dep directory.Department) DepartmentRow {
	return DepartmentRow{
		ID:        dep.ID,
		Name:      dep.Name,
		Color:     dep.Color,
		HeadCount: dep.HeadCount,
		Budget:    dep.Budget,
		ManagerID: dep.ManagerID,
		Icon:      dep.Icon,
	}
}
