package custom_errors

import "errors"

var (
	ErrPostNotFound      = errors.New("post not found")
	ErrPostValidation    = errors.New("post validation failed")
	ErrInvalidLikeAction = errors.New("invalid like action")
	ErrInvalidPostID     = errors.New("invalid post id")

	ErrDatabaseQuery = errors.New("database query failed")
	ErrDatabaseScan  = errors.New("database scan failed")
	ErrBuildingQuery = errors.New("error building sql query")
)
