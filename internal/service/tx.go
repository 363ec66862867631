package service

import (
	"context"
	"errors"

	"github.com/Luberth08/Proyecto-Panaderia-sub000/internal/apierror"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// mapError passes typed errors through and collapses everything else into one
// generic message per operation; the cause only reaches the server log.
func mapError(err error, generic string) error {
	var typed *apierror.Error
	if errors.As(err, &typed) {
		return typed
	}
	log.Error().Err(err).Msg(generic)
	return apierror.Internal(generic)
}
