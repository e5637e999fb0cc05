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

// Membership management is session-only: API keys are bound to one
// organization and must never mint invites or reshape memberships.
func (rt *Router) organizationRouter(r fiber.Router) {
	r.Post("/", rt.sessionCtx, rt.createOrganization)
	r.Get("/", rt.sessionCtx, rt.listOrganizations)
	r.Post("/join", rt.sessionCtx, rt.joinOrganization)
	r.Post("/:orgId/switch", rt.sessionCtx, rt.switchOrganization)
	r.Post("/:orgId/invite", rt.sessionCtx, rt.inviteToOrganization)
	r.Get("/:orgId/members", rt.sessionCtx, rt.listMembers)
	r.Delete("/:orgId/members/:userId", rt.sessionCtx, rt.removeMember)
	r.Put("/:orgId/members/:userId/role", rt.sessionCtx, rt.changeMemberRole)
	r.Post("/:orgId/leave", rt.sessionCtx, rt.leaveOrganization)
	r.Get("/:orgId/usage", rt.sessionCtx, rt.organizationUsage)
}

func (rt *Router) createOrganization(c *fiber.Ctx) error {
	var req model.CreateOrgReq
	if err := c.BodyParser(&req); err != nil {
		return replyBadBody(c, err)
	}

	rc := requestContext(c)
	org, err := rt.services.Organization.CreateOrganization(c.UserContext(), rc.UserId, &req)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, model.ToOrgResp(org))
}

func (rt *Router) listOrganizations(c *fiber.Ctx) error {
	rc := requestContext(c)
	orgs, err := rt.services.Organization.ListUserOrganizations(c.UserContext(), rc.UserId)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, orgs)
}

func (rt *Router) joinOrganization(c *fiber.Ctx) error {
	var req model.JoinOrgReq
	if err := c.BodyParser(&req); err != nil {
		return replyBadBody(c, err)
	}

	rc := requestContext(c)
	m, err := rt.services.Organization.JoinViaToken(c.UserContext(), rc.UserId, req.InviteToken)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, m)
}

func (rt *Router) switchOrganization(c *fiber.Ctx) error {
	rc := requestContext(c)
	resp, err := rt.services.Auth.SwitchOrganization(c.UserContext(), rc.UserId, c.Params("orgId"))
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, resp)
}

func (rt *Router) inviteToOrganization(c *fiber.Ctx) error {
	orgId := c.Params("orgId")
	if err := rt.requireOrgAdmin(c, orgId); err != nil {
		return replyErr(c, err)
	}

	token, err := rt.services.Organization.GenerateInviteToken(c.UserContext(), orgId)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, fiber.Map{"inviteToken": token})
}

func (rt *Router) listMembers(c *fiber.Ctx) error {
	orgId := c.Params("orgId")
	if err := rt.requireOrgMember(c, orgId); err != nil {
		return replyErr(c, err)
	}

	members, err := rt.services.Organization.ListMembers(c.UserContext(), orgId)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, members)
}

func (rt *Router) removeMember(c *fiber.Ctx) error {
	rc := requestContext(c)
	err := rt.services.Organization.RemoveMember(c.UserContext(), c.Params("orgId"), c.Params("userId"), rc.UserId)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) changeMemberRole(c *fiber.Ctx) error {
	var req model.ChangeRoleReq
	if err := c.BodyParser(&req); err != nil {
		return replyBadBody(c, err)
	}

	rc := requestContext(c)
	m, err := rt.services.Organization.ChangeRole(c.UserContext(), c.Params("orgId"), c.Params("userId"), req.Role, rc.UserId)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, m)
}

func (rt *Router) leaveOrganization(c *fiber.Ctx) error {
	rc := requestContext(c)
	if err := rt.services.Organization.LeaveOrganization(c.UserContext(), c.Params("orgId"), rc.UserId); err != nil {
		return replyErr(c, err)
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) organizationUsage(c *fiber.Ctx) error {
	orgId := c.Params("orgId")
	if err := rt.requireOrgAdmin(c, orgId); err != nil {
		return replyErr(c, err)
	}

	metrics, err := rt.services.Usage.ListMetrics(c.UserContext(), orgId)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, metrics)
}
