// Command create-admin bootstraps a dashboard account straight into the database.
//
//	go run ./cmd/create-admin -email hr@ucentric.id -name "HR Admin" -password secret123
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"ucentric_backend/internals/configs"
	"ucentric_backend/internals/constants"
	database "ucentric_backend/internals/databases"
	"ucentric_backend/internals/features/users/users/dto"
	"ucentric_backend/internals/features/users/users/repository"
	"ucentric_backend/internals/features/users/users/service"
	helper "ucentric_backend/internals/helpers"
	"ucentric_backend/internals/helpers/applog"
)

func main() {
	name := flag.String("name", "Administrator", "display name")
	email := flag.String("email", "", "login email (required)")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "password, defaults to $ADMIN_PASSWORD")
	role := flag.String("role", constants.RoleSuperadmin, "user|admin|superadmin")
	flag.Parse()

	cfg, err := configs.LoadEnv()
	if err != nil {
		applog.Log.WithError(err).Fatal("load config")
	}
	applog.Setup(cfg.LogLevel, false)

	r := constants.NormalizeRole(*role)
	if !constants.IsValidRole(r) {
		fmt.Fprintf(os.Stderr, "role: must be one of %s\n", strings.Join(constants.AllRoles, ", "))
		os.Exit(2)
	}

	req := dto.CreateUserRequest{Name: *name, Email: *email, Password: *password, Role: r}
	if err := helper.NewValidator().Struct(req); err != nil {
		for _, fe := range helper.ValidationErrors(err, dto.Messages) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", fe.Path, fe.Message)
		}
		os.Exit(2)
	}

	db, err := database.ConnectDB(cfg)
	if err != nil {
		applog.Log.WithError(err).Fatal("database")
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	u, err := service.NewUserService(repository.NewUserRepository(db)).Create(ctx, req)
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		fmt.Fprintf(os.Stderr, "user %s already exists\n", req.Email)
		os.Exit(1)
	case err != nil:
		applog.Log.WithError(err).Fatal("create user")
	}
	fmt.Printf("created %s (%s) role=%s\n", u.Email, u.ID, u.Role)
}
