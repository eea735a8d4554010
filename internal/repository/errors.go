package repository

import "errors"

// 見つからないを統一
var ErrNotFound = errors.New("not found")
