package main

import (
	"fmt"

	"bizdir/config"
	"bizdir/internal/domain/entity"
	"bizdir/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func runToken(subject, rolesFlag string) error {
	subjectID := uuid.New()
	if subject != "" {
		parsed, err := uuid.Parse(subject)
		if err != nil {
			return errors.Wrap(err, "--sub must be a UUID")
		}
		subjectID = parsed
	}

	roles, err := entity.ParseRoles(rolesFlag)
	if err != nil {
		return errors.Wrap(err, "invalid --roles")
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := tokenSvc.GenerateAccessToken(subjectID, roles.Strings())
	if err != nil {
		return err
	}

	fmt.Println(token)

	return nil
}
