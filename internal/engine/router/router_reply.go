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
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/authz"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/service"
	"github.com/sunny-dhyana/teamledger-new/pkg/http"
	"github.com/sunny-dhyana/teamledger-new/pkg/http/middleware"
	"github.com/sunny-dhyana/teamledger-new/pkg/log"
)

// replyErr translates service and authz sentinels into the coded envelope.
// Anything unrecognized is logged and reported as an internal error without
// leaking the cause.
func replyErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.WithRepErrMsg(c, http.NotFound.Code, err.Error(), c.Path())
	case errors.Is(err, service.ErrInvalidState):
		return http.WithRepErrMsg(c, http.InvalidState.Code, err.Error(), c.Path())
	case errors.Is(err, service.ErrNotAMember):
		return http.WithRepErrMsg(c, http.NotAMember.Code, err.Error(), c.Path())
	case errors.Is(err, authz.ErrPermissionDenied):
		return http.WithRepErrMsg(c, http.PermissionDenied.Code, err.Error(), c.Path())
	case errors.Is(err, authz.ErrNoActiveOrg):
		return http.WithRepErrMsg(c, http.NoActiveOrgContext.Code, http.NoActiveOrgContext.Msg, c.Path())
	case errors.Is(err, authz.ErrInvalidCredential):
		return http.WithRepErrMsg(c, http.AuthenticationFailed.Code, http.AuthenticationFailed.Msg, c.Path())
	case errors.Is(err, authz.ErrNotAuthenticated):
		return http.WithRepErrMsg(c, http.NotAuthenticated.Code, http.NotAuthenticated.Msg, c.Path())
	default:
		log.Errorw("request failed", "path", c.Path(), "error", err)
		return http.WithRepErrMsg(c, http.InternalError.Code, http.InternalError.Msg, c.Path())
	}
}

func replyBadBody(c *fiber.Ctx, err error) error {
	return http.WithRepErrMsg(c, http.BadRequest.Code, err.Error(), c.Path())
}

// requestContext returns the RequestContext installed by the auth
// middleware. Routes registered behind the middleware always have one.
func requestContext(c *fiber.Ctx) *authz.RequestContext {
	return middleware.GetRequestContext(c)
}

// requireOrgMember checks live membership of the caller in the org named by
// the route, for session routes that take an explicit :orgId.
func (rt *Router) requireOrgMember(c *fiber.Ctx, orgId string) error {
	rc := requestContext(c)
	ok, err := rt.services.Organization.IsMember(c.UserContext(), rc.UserId, orgId)
	if err != nil {
		return err
	}
	if !ok {
		return service.ErrNotAMember
	}
	return nil
}

// requireOrgAdmin checks the caller's live role, never the token claim.
func (rt *Router) requireOrgAdmin(c *fiber.Ctx, orgId string) error {
	rc := requestContext(c)
	return rt.services.Organization.RequireAdmin(c.UserContext(), orgId, rc.UserId)
}
