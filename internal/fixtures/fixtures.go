// Package fixtures holds the static seed dataset loaded into an empty
// backend on first boot.
package fixtures

import "nexhr/internal/domain/directory"

func strptr(s string) *string { return &s }

func Departments() []directory.Department {
	return []directory.Department{
		{ID: "eng", Name: "Engineering", Color: "#6366f1", HeadCount: 24, Budget: 1200000, Icon: "⚡"},
		{ID: "design", Name: "Design", Color: "#a855f7", HeadCount: 8, Budget: 480000, Icon: "🎨"},
		{ID: "sales", Name: "Sales", Color: "#06b6d4", HeadCount: 15, Budget: 750000, Icon: "📈"},
		{ID: "hr", Name: "Human Resources", Color: "#10b981", HeadCount: 6, Budget: 360000, Icon: "👥"},
		{ID: "finance", Name: "Finance", Color: "#f59e0b", HeadCount: 9, Budget: 540000, Icon: "💰"},
		{ID: "marketing", Name: "Marketing", Color: "#ec4899", HeadCount: 11, Budget: 660000, Icon: "📣"},
		{ID: "ops", Name: "Operations", Color: "#14b8a6", HeadCount: 7, Budget: 420000, Icon: "⚙️"},
	}
}

func Employees() []directory.Employee {
	return []directory.Employee{
		{
			ID: "1", FirstName: "Sarah", LastName: "Chen", Email: "sarah.chen@nexhr.com",
			Phone: "+1 (555) 234-5678", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah",
			Position: "Senior Software Engineer", Department: "eng", DepartmentName: "Engineering",
			Salary: 145000, StartDate: "2021-03-15", Status: directory.EmployeeStatusActive, Location: "San Francisco, CA",
			Manager: strptr("Alex Johnson"), Skills: []string{"React", "TypeScript", "Node.js", "AWS"},
			Performance: 96, AttendanceRate: 98,
		},
		{
			ID: "2", FirstName: "Marcus", LastName: "Rodriguez", Email: "marcus.r@nexhr.com",
			Phone: "+1 (555) 345-6789", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Marcus",
			Position: "UX Design Lead", Department: "design", DepartmentName: "Design",
			Salary: 125000, StartDate: "2020-07-01", Status: directory.EmployeeStatusActive, Location: "New York, NY",
			Manager: strptr("Emma Walsh"), Skills: []string{"Figma", "Prototyping", "User Research", "Motion Design"},
			Performance: 92, AttendanceRate: 97,
		},
		{
			ID: "3", FirstName: "Aisha", LastName: "Patel", Email: "aisha.patel@nexhr.com",
			Phone: "+1 (555) 456-7890", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Aisha",
			Position: "Sales Director", Department: "sales", DepartmentName: "Sales",
			Salary: 165000, StartDate: "2019-11-20", Status: directory.EmployeeStatusRemote, Location: "Chicago, IL",
			Manager: strptr("CEO"), Skills: []string{"Negotiation", "CRM", "Leadership", "Analytics"},
			Performance: 98, AttendanceRate: 95,
		},
		{
			ID: "4", FirstName: "James", LastName: "Kim", Email: "james.kim@nexhr.com",
			Phone: "+1 (555) 567-8901", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=James",
			Position: "DevOps Engineer", Department: "eng", DepartmentName: "Engineering",
			Salary: 138000, StartDate: "2022-01-10", Status: directory.EmployeeStatusActive, Location: "Austin, TX",
			Manager: strptr("Sarah Chen"), Skills: []string{"Kubernetes", "Terraform", "CI/CD", "Docker"},
			Performance: 89, AttendanceRate: 99,
		},
		{
			ID: "5", FirstName: "Emily", LastName: "Walsh", Email: "emily.walsh@nexhr.com",
			Phone: "+1 (555) 678-9012", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Emily",
			Position: "Head of Design", Department: "design", DepartmentName: "Design",
			Salary: 150000, StartDate: "2018-05-14", Status: directory.EmployeeStatusActive, Location: "Seattle, WA",
			Manager: strptr("CEO"), Skills: []string{"Brand Strategy", "Figma", "Team Leadership", "3D Design"},
			Performance: 94, AttendanceRate: 96,
		},
		{
			ID: "6", FirstName: "David", LastName: "Thompson", Email: "david.t@nexhr.com",
			Phone: "+1 (555) 789-0123", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=David",
			Position: "Financial Analyst", Department: "finance", DepartmentName: "Finance",
			Salary: 110000, StartDate: "2021-09-01", Status: directory.EmployeeStatusActive, Location: "Boston, MA",
			Manager: strptr("CFO"), Skills: []string{"Excel", "Financial Modeling", "Python", "Tableau"},
			Performance: 87, AttendanceRate: 98,
		},
		{
			ID: "7", FirstName: "Luna", LastName: "Park", Email: "luna.park@nexhr.com",
			Phone: "+1 (555) 890-1234", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Luna",
			Position: "Marketing Manager", Department: "marketing", DepartmentName: "Marketing",
			Salary: 105000, StartDate: "2022-04-18", Status: directory.EmployeeStatusOnLeave, Location: "Los Angeles, CA",
			Manager: strptr("CMO"), Skills: []string{"Content Strategy", "SEO", "Analytics", "Social Media"},
			Performance: 91, AttendanceRate: 94,
		},
		{
			ID: "8", FirstName: "Omar", LastName: "Hassan", Email: "omar.h@nexhr.com",
			Phone: "+1 (555) 901-2345", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Omar",
			Position: "HR Business Partner", Department: "hr", DepartmentName: "Human Resources",
			Salary: 95000, StartDate: "2020-12-07", Status: directory.EmployeeStatusActive, Location: "Denver, CO",
			Manager: strptr("CHRO"), Skills: []string{"Talent Acquisition", "HRIS", "Labor Law", "Coaching"},
			Performance: 93, AttendanceRate: 97,
		},
		{
			ID: "9", FirstName: "Sofia", LastName: "Martinez", Email: "sofia.m@nexhr.com",
			Phone: "+1 (555) 012-3456", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Sofia",
			Position: "Full Stack Engineer", Department: "eng", DepartmentName: "Engineering",
			Salary: 130000, StartDate: "2023-02-28", Status: directory.EmployeeStatusActive, Location: "Miami, FL",
			Manager: strptr("Sarah Chen"), Skills: []string{"Vue.js", "Python", "PostgreSQL", "GraphQL"},
			Performance: 88, AttendanceRate: 96,
		},
		{
			ID: "10", FirstName: "Ryan", LastName: "Cooper", Email: "ryan.c@nexhr.com",
			Phone: "+1 (555) 123-4567", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Ryan",
			Position: "Account Executive", Department: "sales", DepartmentName: "Sales",
			Salary: 90000, StartDate: "2022-08-15", Status: directory.EmployeeStatusActive, Location: "Phoenix, AZ",
			Manager: strptr("Aisha Patel"), Skills: []string{"Salesforce", "Prospecting", "Negotiation", "Demo"},
			Performance: 85, AttendanceRate: 93,
		},
		{
			ID: "11", FirstName: "Nadia", LastName: "Kovacs", Email: "nadia.k@nexhr.com",
			Phone: "+1 (555) 234-5670", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Nadia",
			Position: "Operations Manager", Department: "ops", DepartmentName: "Operations",
			Salary: 115000, StartDate: "2019-06-10", Status: directory.EmployeeStatusActive, Location: "Portland, OR",
			Manager: strptr("COO"), Skills: []string{"Process Optimization", "Supply Chain", "Six Sigma", "ERP"},
			Performance: 95, AttendanceRate: 99,
		},
		{
			ID: "12", FirstName: "Liam", LastName: "Foster", Email: "liam.f@nexhr.com",
			Phone: "+1 (555) 345-6780", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Liam",
			Position: "Data Engineer", Department: "eng", DepartmentName: "Engineering",
			Salary: 135000, StartDate: "2021-11-30", Status: directory.EmployeeStatusInactive, Location: "Atlanta, GA",
			Manager: strptr("Sarah Chen"), Skills: []string{"Spark", "Kafka", "Airflow", "Snowflake"},
			Performance: 79, AttendanceRate: 88,
		},
	}
}

func Attendance() []directory.AttendanceRecord {
	return []directory.AttendanceRecord{
		{ID: "a1", EmployeeID: "1", EmployeeName: "Sarah Chen", Date: "2026-02-19", CheckIn: "09:02", CheckOut: "18:15", Status: directory.AttendanceStatusPresent, HoursWorked: 9.2},
		{ID: "a2", EmployeeID: "2", EmployeeName: "Marcus Rodriguez", Date: "2026-02-19", CheckIn: "08:45", CheckOut: "17:30", Status: directory.AttendanceStatusPresent, HoursWorked: 8.75},
		{ID: "a3", EmployeeID: "3", EmployeeName: "Aisha Patel", Date: "2026-02-19", CheckIn: "10:00", CheckOut: "18:00", Status: directory.AttendanceStatusRemote, HoursWorked: 8},
		{ID: "a4", EmployeeID: "4", EmployeeName: "James Kim", Date: "2026-02-19", CheckIn: "09:30", CheckOut: "19:00", Status: directory.AttendanceStatusPresent, HoursWorked: 9.5},
		{ID: "a5", EmployeeID: "5", EmployeeName: "Emily Walsh", Date: "2026-02-19", CheckIn: "08:55", CheckOut: "17:45", Status: directory.AttendanceStatusPresent, HoursWorked: 8.83},
		{ID: "a6", EmployeeID: "6", EmployeeName: "David Thompson", Date: "2026-02-19", CheckIn: "09:15", CheckOut: "18:30", Status: directory.AttendanceStatusPresent, HoursWorked: 9.25},
		{ID: "a7", EmployeeID: "7", EmployeeName: "Luna Park", Date: "2026-02-19", CheckIn: "", CheckOut: "", Status: directory.AttendanceStatusAbsent, HoursWorked: 0},
		{ID: "a8", EmployeeID: "8", EmployeeName: "Omar Hassan", Date: "2026-02-19", CheckIn: "09:45", CheckOut: "18:00", Status: directory.AttendanceStatusLate, HoursWorked: 8.25},
		{ID: "a9", EmployeeID: "9", EmployeeName: "Sofia Martinez", Date: "2026-02-19", CheckIn: "09:00", CheckOut: "17:30", Status: directory.AttendanceStatusPresent, HoursWorked: 8.5},
		{ID: "a10", EmployeeID: "10", EmployeeName: "Ryan Cooper", Date: "2026-02-19", CheckIn: "09:00", CheckOut: "13:00", Status: directory.AttendanceStatusHalfDay, HoursWorked: 4},
	}
}
