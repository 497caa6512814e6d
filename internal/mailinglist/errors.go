package mailinglist

import "errors"

var (
	ErrNameRequired     = errors.New("veuillez saisir un nom pour la liste")
	ErrNotAuthenticated = errors.New("impossible de créer la liste sans un utilisateur connecté")
	ErrItemNotFound     = errors.New("liste introuvable")
	ErrNotConfirmed     = errors.New("suppression non confirmée")
	ErrInvalidStatus    = errors.New("statut invalide")
)
