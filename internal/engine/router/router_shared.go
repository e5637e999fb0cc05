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

// sharedRouter is the anonymous share-link surface. No credential is read;
// the token in the path is the entire authority, and responses use the
// public-safe projection.
func (rt *Router) sharedRouter(r fiber.Router) {
	r.Get("/:token", rt.getSharedNote)
	r.Put("/:token", rt.updateSharedNote)
}

func (rt *Router) getSharedNote(c *fiber.Ctx) error {
	n, err := rt.services.Note.GetNoteByShareToken(c.UserContext(), c.Params("token"))
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, model.ToSharedNoteResp(n))
}

func (rt *Router) updateSharedNote(c *fiber.Ctx) error {
	var req model.SharedNoteUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return replyBadBody(c, err)
	}

	n, err := rt.services.Note.UpdateSharedNote(c.UserContext(), c.Params("token"), req.Content)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, model.ToSharedNoteResp(n))
}
