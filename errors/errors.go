package errors

import "fmt"

var (
	ErrEmptyContent = fmt.Errorf("content is empty")
	ErrNotFound     = fmt.Errorf("message not found")
	ErrNotEditable  = fmt.Errorf("assistant messages cannot be edited")
)
