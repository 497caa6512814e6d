package repository

// CreateProjectOptions holds the parameters for creating a project.
type CreateProjectOptions struct {
	ShortName   string
	LongName    string
	Description string
	Theme       string
	Type        string
	License     string
	Public      bool
	GroupID     string
	CreatorID   int64
}
