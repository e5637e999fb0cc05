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

	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
	"github.com/sunny-dhyana/teamledger-new/pkg/http"
)

// Project routes accept both session tokens and API keys. The organization
// comes from the resolved RequestContext, never from the client.
func (rt *Router) projectRouter(r fiber.Router) {
	r.Post("/", rt.authCtx, rt.createProject)
	r.Get("/", rt.authCtx, rt.listProjects)
	r.Post("/import", rt.authCtx, rt.importProject)
	r.Get("/:projectId", rt.authCtx, rt.getProject)
	r.Put("/:projectId", rt.authCtx, rt.updateProject)
	r.Delete("/:projectId", rt.authCtx, rt.deleteProject)
	r.Post("/:projectId/export", rt.authCtx, rt.exportProject)
}

func (rt *Router) createProject(c *fiber.Ctx) error {
	rc := requestContext(c)
	if err := rc.RequireWrite(); err != nil {
		return replyErr(c, err)
	}

	var req model.CreateProjectReq
	if err := c.BodyParser(&req); err != nil {
		return replyBadBody(c, err)
	}

	p, err := rt.services.Project.CreateProject(c.UserContext(), rc.OrgId, &req)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, p)
}

func (rt *Router) listProjects(c *fiber.Ctx) error {
	rc := requestContext(c)
	if err := rc.RequireRead(); err != nil {
		return replyErr(c, err)
	}

	projects, err := rt.services.Project.ListProjects(c.UserContext(), rc.OrgId)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, projects)
}

func (rt *Router) getProject(c *fiber.Ctx) error {
	rc := requestContext(c)
	if err := rc.RequireRead(); err != nil {
		return replyErr(c, err)
	}

	p, err := rt.services.Project.GetProject(c.UserContext(), c.Params("projectId"), rc.OrgId)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, p)
}

func (rt *Router) updateProject(c *fiber.Ctx) error {
	rc := requestContext(c)
	if err := rc.RequireWrite(); err != nil {
		return replyErr(c, err)
	}

	var req model.UpdateProjectReq
	if err := c.BodyParser(&req); err != nil {
		return replyBadBody(c, err)
	}

	p, err := rt.services.Project.UpdateProject(c.UserContext(), c.Params("projectId"), rc.OrgId, &req)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, p)
}

func (rt *Router) deleteProject(c *fiber.Ctx) error {
	rc := requestContext(c)
	if err := rc.RequireWrite(); err != nil {
		return replyErr(c, err)
	}

	if err := rt.services.Project.DeleteProject(c.UserContext(), c.Params("projectId"), rc.OrgId); err != nil {
		return replyErr(c, err)
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) importProject(c *fiber.Ctx) error {
	rc := requestContext(c)
	if err := rc.RequireWrite(); err != nil {
		return replyErr(c, err)
	}

	var req model.ImportProjectReq
	if err := c.BodyParser(&req); err != nil {
		return replyBadBody(c, err)
	}

	p, err := rt.services.Project.ImportProject(c.UserContext(), rc.OrgId, rc.UserId, &req)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, p)
}

func (rt *Router) exportProject(c *fiber.Ctx) error {
	rc := requestContext(c)
	if err := rc.RequireRead(); err != nil {
		return replyErr(c, err)
	}

	j, err := rt.services.Job.CreateExportJob(c.UserContext(), rc.OrgId, c.Params("projectId"))
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, j)
}
