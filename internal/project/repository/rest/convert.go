package rest

import (
	"strconv"

	"collab-dashboard/internal/project"
	"collab-dashboard/internal/project/repository"
	"collab-dashboard/pkg/apigateway"
)

// toProject maps a remote project record. Optional counters stay nil when absent.
func toProject(rec apigateway.RawRecord) project.Project {
	p := project.Project{}
	p.ID, _ = rec.Int64("id", "idProjet")
	p.ShortName, _ = rec.String("nomCourt")
	p.LongName, _ = rec.String("nomLong")
	p.Description, _ = rec.String("description")
	p.Theme, _ = rec.String("theme")
	p.Type, _ = rec.String("type")
	p.License, _ = rec.String("license")
	p.Status, _ = rec.String("statut")
	p.GroupID = idString(rec, "groupeId")

	if b, ok := rec.Bool("estPublic"); ok {
		p.Public = &b
	}
	p.CompletionRate = optionalInt(rec, "tauxCompletion")
	p.MemberCount = optionalInt(rec, "nombreMembres")
	p.TaskCount = optionalInt(rec, "nombreTaches")
	return p
}

func toGroup(rec apigateway.RawRecord) project.Group {
	g := project.Group{ID: idString(rec, "id")}
	g.Name, _ = rec.String("nom")
	g.ShortName, _ = rec.String("nomCourt")
	return g
}

func buildCreatePayload(opt repository.CreateProjectOptions) map[string]any {
	return map[string]any{
		"nomCourt":    opt.ShortName,
		"nomLong":     opt.LongName,
		"description": opt.Description,
		"theme":       opt.Theme,
		"type":        opt.Type,
		"license":     opt.License,
		"estPublic":   opt.Public,
		"groupeId":    opt.GroupID,
		"creatorId":   opt.CreatorID,
	}
}

func optionalInt(rec apigateway.RawRecord, key string) *int {
	n, ok := rec.Int64(key)
	if !ok {
		return nil
	}
	v := int(n)
	return &v
}

// idString reads an identifier that the remote sends either as a number or a string.
func idString(rec apigateway.RawRecord, key string) string {
	if s, ok := rec.String(key); ok {
		return s
	}
	if n, ok := rec.Int64(key); ok {
		return strconv.FormatInt(n, 10)
	}
	return ""
}
