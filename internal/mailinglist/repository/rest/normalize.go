package rest

import (
	"time"

	"collab-dashboard/internal/mailinglist"
	"collab-dashboard/pkg/apigateway"
)

// The remote API has two generations of field names. Each canonical field is
// read from the current name first and the legacy name second; a key holding
// null counts as absent.
//
//	ID              id            -> idListeDiffusion -> 0
//	SubscriberCount nombreMembres -> nombreAbonnes    -> 0 (negatives clamp to 0)
//	Status          statut (non-empty string) -> from boolean active -> INACTIF
//	Active          active (boolean)          -> Status == ACTIF
//	Name            nom -> name
//	ContactAddress  email
//	Description     description
//	CreatedAt       dateCreation (RFC3339, local datetime or date)
//
// When both statut and active are present and disagree, active wins and
// Status is re-derived from it, so Active == (Status == ACTIF) always holds.
var (
	idKeys          = []string{"id", "idListeDiffusion"}
	subscriberKeys  = []string{"nombreMembres", "nombreAbonnes"}
	nameKeys        = []string{"nom", "name"}
	createdAtLayout = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}
)

func normalize(rec apigateway.RawRecord) mailinglist.ListItem {
	item := mailinglist.ListItem{}
	item.ID, _ = rec.Int64(idKeys...)
	item.Name, _ = rec.String(nameKeys...)
	item.ContactAddress, _ = rec.String("email")
	item.Description, _ = rec.String("description")

	if n, ok := rec.Int64(subscriberKeys...); ok && n > 0 {
		item.SubscriberCount = int(n)
	}

	status, hasStatus := rec.String("statut")
	active, hasActive := rec.Bool("active")

	switch {
	case hasActive:
		item = item.WithActive(active)
	case hasStatus && status != "":
		item = item.WithActive(mailinglist.Status(status) == mailinglist.StatusActive)
	default:
		item = item.WithActive(false)
	}

	if raw, ok := rec.String("dateCreation"); ok {
		item.CreatedAt = parseCreatedAt(raw)
	}
	return item
}

func parseCreatedAt(raw string) *time.Time {
	for _, layout := range createdAtLayout {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
