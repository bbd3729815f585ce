package controllers

import "errors"

var (
	ErrSettledReserved = errors.New("settled status is set by checkout only")
	ErrOrderSettled    = errors.New("order is settled and cannot change status")
)
