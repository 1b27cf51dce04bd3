package pkg

import (
	"fmt"

	"seeds-backend/internal/app/config"
	"seeds-backend/internal/app/handler"
	"seeds-backend/internal/app/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.Handler) *Application {
	return &Application{
		Config:  c,
		Router:  r,
		Handler: h,
	}
}

// Setup installs the middleware chain and the routes.
func (a *Application) Setup() {
	a.Router.MaxMultipartMemory = a.Config.MaxUploadMemory
	a.Router.Use(gin.Recovery())
	a.Router.Use(middleware.RequestLogger())
	a.Router.Use(middleware.CORS())

	a.Handler.RegisterRoutes(a.Router)
}

func (a *Application) Address() string {
	return fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	a.Setup()

	serverAddress := a.Address()
	logrus.Infof("Starting server on %s", serverAddress)

	if err := a.Router.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Server down")
}
