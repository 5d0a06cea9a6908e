package main

import (
	"context"

	"go.viam.com/rdk/components/servo"
	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/module"
	"go.viam.com/utils"

	"github.com/chuckb/SpartanLib/gpioservo"
)

func main() {
	utils.ContextualMain(mainWithArgs, module.NewLoggerFromArgs("spartanlib"))
}

func mainWithArgs(ctx context.Context, args []string, logger logging.Logger) error {
	mod, err := module.NewModuleFromArgs(ctx)

	if err != nil {
		return err
	}

	err = mod.AddModelFromRegistry(ctx, servo.API, gpioservo.Model)
	if err != nil {
		return err
	}

	err = mod.Start(ctx)
	defer mod.Close(ctx)
	if err != nil {
		return err
	}

	<-ctx.Done()
	return nil
}
