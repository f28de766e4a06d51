package domain

import "errors"

var ErrDefinitionNotFound = errors.New("definition not found")
