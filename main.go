/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/vengine/engine"
	"github.com/spaghettifunk/vengine/engine/color"
	"github.com/spaghettifunk/vengine/engine/core"
	"github.com/spaghettifunk/vengine/engine/math"
)

var (
	configPath = flag.String("config", "", "Path to a .toml or .yaml engine configuration")
	watch      = flag.Bool("watch", false, "Keep running and reload the configuration when it changes")
)

func main() {
	flag.Parse()

	opts := []engine.Option{engine.WithHotReload(*watch)}
	if *configPath != "" {
		opts = append(opts, engine.WithConfigFile(*configPath))
	}
	e := engine.New(opts...)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer cancel()

	if err := e.Initialize(ctx); err != nil {
		panic(err)
	}

	demo()

	if *watch {
		core.LogInfo("watching %s, press Ctrl+C to quit", *configPath)
		<-ctx.Done()
	}

	if err := e.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err)
		os.Exit(1)
	}
}

// demo composes a model transform, inverts it and checks the round trip.
func demo() {
	model := math.NewMatrix4Scale(math.NewVector3(2, 2, 2))
	model.Multiply(math.NewMatrix4EulerXYZ(math.DegToRad(30), math.DegToRad(45), 0))
	model.Multiply(math.NewMatrix4Translation(math.NewVector3(1, 2, -5)))
	core.LogInfo("model matrix:\n%s", model)
	core.LogInfo("determinant: %g", model.Determinant())

	inverse, err := model.Inverse()
	if err != nil {
		core.LogError("model matrix is not invertible: %s", err)
		return
	}
	roundTrip := model.Mul(inverse)
	core.LogInfo("M x M^-1 is identity: %t", roundTrip.Compare(math.NewMatrix4Identity(), math.K_COMPARE_TOLERANCE))

	var flat math.Matrix4
	if !flat.InvertFrom(math.NewMatrix4Scale(math.NewVector3(1, 0, 1))) {
		core.LogWarn("flattening scale has no inverse, matrix left as %s", flat.String())
	}

	forward := math.NewVector3Forward()
	right := math.NewVector3Right()
	core.LogInfo("forward x right = %s", forward.Cross(right))

	clearColor, _ := color.FromName("cornflowerblue")
	core.LogInfo("clear color %s (%s), fading to %s", clearColor.AsHexString(), clearColor, color.Lerp(clearColor, color.Black(), 0.5))
}
