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

func (rt *Router) noteRouter(r fiber.Router) {
	r.Post("/", rt.authCtx, rt.createNote)
	r.Get("/", rt.authCtx, rt.listNotes)
	r.Get("/:noteId", rt.authCtx, rt.getNote)
	r.Put("/:noteId", rt.authCtx, rt.updateNote)
	r.Delete("/:noteId", rt.authCtx, rt.deleteNote)
	r.Post("/:noteId/share", rt.authCtx, rt.shareNote)
	r.Delete("/:noteId/share", rt.authCtx, rt.revokeShare)
}

func (rt *Router) createNote(c *fiber.Ctx) error {
	rc := requestContext(c)
	if err := rc.RequireWrite(); err != nil {
		return replyErr(c, err)
	}

	var req model.CreateNoteReq
	if err := c.BodyParser(&req); err != nil {
		return replyBadBody(c, err)
	}

	n, err := rt.services.Note.CreateNote(c.UserContext(), c.Params("projectId"), rc.OrgId, rc.UserId, &req)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, model.ToNoteResp(n))
}

func (rt *Router) listNotes(c *fiber.Ctx) error {
	rc := requestContext(c)
	if err := rc.RequireRead(); err != nil {
		return replyErr(c, err)
	}

	notes, err := rt.services.Note.ListNotes(c.UserContext(), c.Params("projectId"), rc.OrgId)
	if err != nil {
		return replyErr(c, err)
	}
	resp := make([]*model.NoteResp, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, model.ToNoteResp(n))
	}
	return http.WithRepJSON(c, resp)
}

func (rt *Router) getNote(c *fiber.Ctx) error {
	rc := requestContext(c)
	if err := rc.RequireRead(); err != nil {
		return replyErr(c, err)
	}

	n, err := rt.services.Note.GetNote(c.UserContext(), c.Params("noteId"), rc.OrgId)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, model.ToNoteResp(n))
}

func (rt *Router) updateNote(c *fiber.Ctx) error {
	rc := requestContext(c)
	if err := rc.RequireWrite(); err != nil {
		return replyErr(c, err)
	}

	var req model.UpdateNoteReq
	if err := c.BodyParser(&req); err != nil {
		return replyBadBody(c, err)
	}

	n, err := rt.services.Note.UpdateNote(c.UserContext(), c.Params("noteId"), rc.OrgId, &req)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, model.ToNoteResp(n))
}

func (rt *Router) deleteNote(c *fiber.Ctx) error {
	rc := requestContext(c)
	if err := rc.RequireWrite(); err != nil {
		return replyErr(c, err)
	}

	if err := rt.services.Note.DeleteNote(c.UserContext(), c.Params("noteId"), rc.OrgId); err != nil {
		return replyErr(c, err)
	}
	return http.WithRepNotDetail(c)
}

func (rt *Router) shareNote(c *fiber.Ctx) error {
	rc := requestContext(c)
	if err := rc.RequireWrite(); err != nil {
		return replyErr(c, err)
	}

	var req model.ShareNoteReq
	if err := c.BodyParser(&req); err != nil {
		return replyBadBody(c, err)
	}

	token, err := rt.services.Note.GenerateShareToken(c.UserContext(), c.Params("noteId"), rc.OrgId, req.AccessLevel)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, fiber.Map{"shareToken": token, "accessLevel": req.AccessLevel})
}

func (rt *Router) revokeShare(c *fiber.Ctx) error {
	rc := requestContext(c)
	if err := rc.RequireWrite(); err != nil {
		return replyErr(c, err)
	}

	if err := rt.services.Note.RevokeShareToken(c.UserContext(), c.Params("noteId"), rc.OrgId); err != nil {
		return replyErr(c, err)
	}
	return http.WithRepNotDetail(c)
}
