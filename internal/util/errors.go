package util

import "errors"

var (
	ErrCourseNotFound  = errors.New("课程不存在")
	ErrClientIDMissing = errors.New("missing client id")
)
