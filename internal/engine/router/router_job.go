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

	"github.com/sunny-dhyana/teamledger-new/pkg/http"
)

func (rt *Router) jobRouter(r fiber.Router) {
	r.Get("/:jobId", rt.authCtx, rt.getJob)
}

func (rt *Router) getJob(c *fiber.Ctx) error {
	rc := requestContext(c)
	if err := rc.RequireRead(); err != nil {
		return replyErr(c, err)
	}

	j, err := rt.services.Job.GetJob(c.UserContext(), c.Params("jobId"), rc.OrgId)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, j)
}
