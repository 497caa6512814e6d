package repository

import "errors"

var ErrNoRecordEchoed = errors.New("remote accepted the mailing list but returned no record")
