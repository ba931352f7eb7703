package domain

type CreateDepartmentCommand struct {
	Name        string
	Description string
}

type CreateEventCommand struct {
	DepartmentID DepartmentID
	EventDate    string
	Title        string
	Description  string
	Time         string
	URL          string
}
