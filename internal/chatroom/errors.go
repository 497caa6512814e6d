package chatroom

import "errors"

var ErrInvalidScope = errors.New("portée invalide: all ou mine attendu")
