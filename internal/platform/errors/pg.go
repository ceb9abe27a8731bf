package errors

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the analysis history store can hit
const (
	pgUniqueViolation     = "23505"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgStringTruncation    = "22001"
	pgInvalidText         = "22P02"
	pgSerializationFail   = "40001"
	pgDeadlock            = "40P01"
	pgLockNotAvailable    = "55P03"
	pgReadOnlyTransaction = "25006"
	pgCannotConnectNow    = "57P03"
	pgUndefinedTable      = "42P01"
)

// pgState returns the SQLSTATE of the root *pgconn.PgError, if any
func pgState(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}

// IsDuplicateKey reports whether err is a unique constraint violation
func IsDuplicateKey(err error) bool {
	s, ok := pgState(err)
	return ok && s == pgUniqueViolation
}

// DBErrorCode maps a postgres error to an ErrorCode, ok is false for non postgres errors
func DBErrorCode(err error) (ErrorCode, bool) {
	s, ok := pgState(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch s {
	case pgUniqueViolation:
		return ErrorCodeDuplicateKey, true
	case pgNotNullViolation, pgCheckViolation:
		return ErrorCodeValidation, true
	case pgStringTruncation, pgInvalidText:
		return ErrorCodeInvalidArgument, true
	case pgReadOnlyTransaction, pgCannotConnectNow:
		return ErrorCodeUnavailable, true
	default:
		return ErrorCodeDB, true
	}
}

// FromPostgres wraps err with the mapped code, nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// IsRetryable reports whether a database error is transient contention
// local cancellation is never retryable, the caller owns that decision
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if s, ok := pgState(err); ok {
		return s == pgSerializationFail || s == pgDeadlock || s == pgLockNotAvailable
	}

	// pgx reports some aborts as plain text on commit
	msg := strings.ToLower(Root(err).Error())
	for _, p := range []string{
		"commit unexpectedly resulted in rollback",
		"deadlock detected",
		"could not serialize access",
		"canceling statement due to lock timeout",
	} {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// IsUndefinedTable reports whether err says the target relation does not exist
func IsUndefinedTable(err error) bool {
	s, ok := pgState(err)
	return ok && s == pgUndefinedTable
}
