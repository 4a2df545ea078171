package main

import (
	"arcade_backend/internal/app"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
