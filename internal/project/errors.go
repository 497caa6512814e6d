package project

import "errors"

var (
	ErrProjectNotFound   = errors.New("projet introuvable")
	ErrShortNameRequired = errors.New("le nom court est obligatoire")
	ErrGroupRequired     = errors.New("veuillez sélectionner un groupe")
	ErrNotAuthenticated  = errors.New("utilisateur non authentifié")
)
