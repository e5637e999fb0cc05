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

func (rt *Router) authRouter(r fiber.Router) {
	r.Post("/register", rt.register)
	r.Post("/login", rt.login)
	r.Post("/logout", rt.sessionCtx, rt.logout)
}

func (rt *Router) register(c *fiber.Ctx) error {
	var req model.RegisterReq
	if err := c.BodyParser(&req); err != nil {
		return replyBadBody(c, err)
	}

	info, err := rt.services.Auth.Register(c.UserContext(), &req)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, info)
}

func (rt *Router) login(c *fiber.Ctx) error {
	var req model.LoginReq
	if err := c.BodyParser(&req); err != nil {
		return replyBadBody(c, err)
	}

	resp, err := rt.services.Auth.Login(c.UserContext(), &req)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, resp)
}

func (rt *Router) logout(c *fiber.Ctx) error {
	rc := requestContext(c)
	if err := rt.services.Auth.Logout(c.UserContext(), rc.UserId); err != nil {
		return replyErr(c, err)
	}
	return http.WithRepNotDetail(c)
}
