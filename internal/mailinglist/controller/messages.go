package controller

import (
	"errors"

	"collab-dashboard/internal/mailinglist"
	"collab-dashboard/pkg/apigateway"
)

const (
	msgLoadFailed   = "Échec du chargement des listes de diffusion"
	msgCreateFailed = "Impossible de créer la liste."
	msgToggleFailed = "Impossible de mettre à jour le statut."
	msgDeleteFailed = "Impossible de supprimer la liste."

	titleError   = "Erreur"
	titleCreated = "Liste créée"
	titleUpdated = "Mis à jour"
	titleDeleted = "Supprimé"

	promptDelete = "Confirmer la suppression de cette liste ?"
)

// remoteMessage returns the remote's own message, or fallback for transport failures.
func remoteMessage(err error, fallback string) string {
	var apiErr *apigateway.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// createFailureMessage prefers the remote body, which usually names the offending field.
func createFailureMessage(err error) string {
	var apiErr *apigateway.APIError
	if errors.As(err, &apiErr) {
		if body := apiErr.BodyText(); body != "" {
			return body
		}
	}
	return remoteMessage(err, msgCreateFailed)
}

func errorNotice(message string) *mailinglist.Notice {
	return &mailinglist.Notice{Kind: mailinglist.NoticeError, Title: titleError, Message: message}
}

func successNotice(title, message string) *mailinglist.Notice {
	return &mailinglist.Notice{Kind: mailinglist.NoticeSuccess, Title: title, Message: message}
}
