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

// API keys are managed with a session credential only; a key cannot mint or
// revoke keys. Creation and revocation additionally require admin, listing
// requires membership.
func (rt *Router) apiKeyRouter(r fiber.Router) {
	r.Post("/", rt.authCtx, rt.createAPIKey)
	r.Get("/", rt.authCtx, rt.listAPIKeys)
	r.Delete("/:keyId", rt.authCtx, rt.revokeAPIKey)
}

func (rt *Router) createAPIKey(c *fiber.Ctx) error {
	rc := requestContext(c)
	if rc.IsAPIKey {
		return http.WithRepErrMsg(c, http.Forbidden.Code, "session authentication required", c.Path())
	}
	if err := rc.RequireAdmin(); err != nil {
		return replyErr(c, err)
	}

	var req model.CreateAPIKeyReq
	if err := c.BodyParser(&req); err != nil {
		return replyBadBody(c, err)
	}

	resp, err := rt.services.APIKey.CreateAPIKey(c.UserContext(), rc.OrgId, &req)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, resp)
}

func (rt *Router) listAPIKeys(c *fiber.Ctx) error {
	rc := requestContext(c)
	if rc.IsAPIKey {
		return http.WithRepErrMsg(c, http.Forbidden.Code, "session authentication required", c.Path())
	}
	if err := rc.RequireRead(); err != nil {
		return replyErr(c, err)
	}

	keys, err := rt.services.APIKey.ListAPIKeys(c.UserContext(), rc.OrgId)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, keys)
}

func (rt *Router) revokeAPIKey(c *fiber.Ctx) error {
	rc := requestContext(c)
	if rc.IsAPIKey {
		return http.WithRepErrMsg(c, http.Forbidden.Code, "session authentication required", c.Path())
	}
	if err := rc.RequireAdmin(); err != nil {
		return replyErr(c, err)
	}

	if err := rt.services.APIKey.RevokeAPIKey(c.UserContext(), c.Params("keyId"), rc.OrgId); err != nil {
		return replyErr(c, err)
	}
	return http.WithRepNotDetail(c)
}
