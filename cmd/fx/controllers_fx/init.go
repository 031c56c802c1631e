package controllers_fx

import (
	"go.uber.org/fx"

	"theralert/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewGroupController),
	fx.Provide(controllers.NewActivityController))
