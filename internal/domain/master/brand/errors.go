package brand

import "errors"

var (
	ErrBrandNotFound   = errors.New("brand not found")
	ErrBrandNameExists = errors.New("brand with this name already exists for this client")
)
