package rest

import (
	"collab-dashboard/internal/mailinglist"
	"collab-dashboard/internal/mailinglist/repository"
)

// buildCreatePayload is the only place that knows the remote create shape.
//
// Empty optional fields are omitted rather than sent as null. The access type
// goes out under both "type" and the older "typeAcces". The creator is attached
// three ways (idCreateur, createurId, nested createur) because the remote
// contract does not say which one it reads; drop the extras once it does.
func buildCreatePayload(opt repository.CreateOptions) map[string]any {
	payload := map[string]any{
		"nom":    opt.Name,
		"active": opt.Status == mailinglist.StatusActive,
	}
	putString(payload, "email", opt.ContactAddress)
	putString(payload, "description", opt.Description)
	putString(payload, "type", string(opt.AccessType))
	putString(payload, "typeAcces", string(opt.AccessType))
	putString(payload, "autorisationEnvoi", string(opt.SendPermission))
	if opt.ProjectID != 0 {
		payload["projetId"] = opt.ProjectID
	}

	creatorID := opt.Creator.ID
	payload["idCreateur"] = creatorID
	payload["createurId"] = creatorID

	creator := map[string]any{"id": creatorID}
	putString(creator, "nom", opt.Creator.Surname)
	putString(creator, "prenom", opt.Creator.Name)
	putString(creator, "email", opt.Creator.Email)
	payload["createur"] = creator

	return payload
}

func putString(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}
