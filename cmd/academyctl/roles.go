package main

import (
	"fmt"

	"academy/internal/domain/entity"
	"academy/internal/infra/persistence/postgres"
	"academy/internal/usecase"
	"academy/internal/usecase/impl"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// rolesKey is the top-level key of a role file:
//
//	roles:
//	  - email: lead@example.com
//	    role: admin
const rolesKey = "roles"

func newRolesCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Manage the staff role directory",
	}

	cmd.AddCommand(
		newRolesImportCmd(app),
		newRolesListCmd(app),
	)

	return cmd
}

func newRolesImportCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace every role assignment with the contents of a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, err := loadRoleFile(args[0])
			if err != nil {
				return err
			}

			roleUC, closeFn, err := app.roleUsecase()
			if err != nil {
				return err
			}
			defer closeFn()

			if err := roleUC.Import(cmd.Context(), assignments); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d role assignments.\n", len(assignments))

			return nil
		},
	}
}

func newRolesListCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list <email>",
		Short: "Print the roles held by an email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roleUC, closeFn, err := app.roleUsecase()
			if err != nil {
				return err
			}
			defer closeFn()

			roles, err := roleUC.RolesOf(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			for _, role := range roles {
				fmt.Fprintln(cmd.OutOrStdout(), role)
			}

			return nil
		},
	}
}

func (c *cli) roleUsecase() (usecase.RoleUsecase, func(), error) {
	db, err := c.openStore()
	if err != nil {
		return nil, nil, err
	}

	roleUC := impl.NewRoleService(
		postgres.NewRoleAssignmentRepository(db),
		postgres.NewTransactionManager(db),
		c.logger,
	)

	return roleUC, func() { closeStore(db) }, nil
}

// loadRoleFile parses a YAML role file. Validation of emails and roles is left to the role service.
func loadRoleFile(path string) ([]entity.RoleAssignment, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read role file %s", path)
	}

	if !k.Exists(rolesKey) {
		return nil, errors.Errorf("role file %s has no %q key", path, rolesKey)
	}

	var assignments []entity.RoleAssignment
	if err := k.UnmarshalWithConf(rolesKey, &assignments, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, errors.Wrapf(err, "decode role file %s", path)
	}

	return assignments, nil
}
