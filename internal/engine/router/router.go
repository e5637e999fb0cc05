// Copyright 2025 TeamLedger Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/authz"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/service"
	"github.com/sunny-dhyana/teamledger-new/pkg/ctx"
	httpx "github.com/sunny-dhyana/teamledger-new/pkg/http"
	"github.com/sunny-dhyana/teamledger-new/pkg/http/middleware"
	"github.com/sunny-dhyana/teamledger-new/pkg/metrics"
	"github.com/sunny-dhyana/teamledger-new/pkg/version"
)

type Router struct {
	Http     httpx.Http
	Ctx      *ctx.Context
	services *service.Services

	// authCtx accepts session tokens and API keys and requires an active
	// organization; sessionCtx accepts session tokens only.
	authCtx    fiber.Handler
	sessionCtx fiber.Handler
}

func NewRouter(httpConf httpx.Http, appCtx *ctx.Context, services *service.Services, resolver *authz.Resolver) *Router {
	authCfg := middleware.AuthConfig{
		Resolver:      resolver,
		Memberships:   services.Organization,
		Sessions:      services.Auth,
		Usage:         services.Usage,
		APICallMetric: model.MetricAPICalls,
	}
	return &Router{
		Http:       httpConf,
		Ctx:        appCtx,
		services:   services,
		authCtx:    middleware.AuthContext(authCfg),
		sessionCtx: middleware.SessionContext(authCfg),
	}
}

func (rt *Router) Router() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "teamledger",
		BodyLimit:             rt.Http.BodyLimit,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: rt.corsOrigins(),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + middleware.APIKeyHeader,
	}))
	if rt.Http.AccessLog {
		app.Use(httpx.AccessLogFormat(rt.Ctx.Log.Desugar()))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/version", func(c *fiber.Ctx) error {
		return c.JSON(version.GetVersion())
	})
	if rt.Http.ExposeMetrics {
		app.Use(metrics.HTTPMiddleware())
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	// public share surface, token is the sole authority
	rt.sharedRouter(app.Group("/shared"))

	api := app.Group(rt.Http.ContextPath)
	rt.authRouter(api.Group("/auth"))
	rt.organizationRouter(api.Group("/organizations"))
	rt.projectRouter(api.Group("/projects"))
	rt.noteRouter(api.Group("/projects/:projectId/notes"))
	rt.apiKeyRouter(api.Group("/api-keys"))
	rt.jobRouter(api.Group("/jobs"))

	return app
}

func (rt *Router) corsOrigins() string {
	if rt.Http.FrontendURL != "" {
		return rt.Http.FrontendURL
	}
	return "*"
}
