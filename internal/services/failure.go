package services

import (
	"context"
	"errors"
)

// Op names an access-layer operation in failure reports.
type Op string

const (
	OpList   Op = "list"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpRemove Op = "remove"
)

// FailureHook is told about every failure the access layer swallows, except
// cancellations from a released subscription.
type FailureHook func(op Op, err error)

func report(h FailureHook, op Op, err error) {
	if h == nil || errors.Is(err, context.Canceled) {
		return
	}
	h(op, err)
}
