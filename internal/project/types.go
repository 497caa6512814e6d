package project

import "fmt"

// Project is a collaboration project as exposed by the remote API.
type Project struct {
	ID             int64
	ShortName      string
	LongName       string
	Description    string
	Theme          string
	Type           string
	License        string
	Public         *bool // nil when the remote did not say
	GroupID        string
	Status         string
	CompletionRate *int
	MemberCount    *int
	TaskCount      *int
}

// Label is the text shown in selectors: long name, short name, then a generic label.
func (p Project) Label() string {
	if p.LongName != "" {
		return p.LongName
	}
	if p.ShortName != "" {
		return p.ShortName
	}
	return fmt.Sprintf("Projet %d", p.ID)
}

// Group owns projects.
type Group struct {
	ID        string
	Name      string
	ShortName string
}

// --- UseCase Inputs ---

type CreateInput struct {
	ShortName   string
	LongName    string
	Description string
	Theme       string
	Type        string
	License     string
	Public      bool
	GroupID     string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Projects []Project
}

type DetailOutput struct {
	Project Project
}

type CreateOutput struct {
	Project Project
}
