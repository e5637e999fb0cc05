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

package http

import gohttp "net/http"

var (
	Failed                        = failed(500, "Request failed")
	InternalError                 = failed(5000, "Internal error, please contact the administrator")
	RequestParameterParsingFailed = failed(5001, "Request parameter parsing failed")

	// BadRequest 400
	BadRequest   = failed(4000, "Bad request")
	InvalidState = failed(4002, "Invalid state")
	NotFound     = failed(4004, "Not found")

	// NoActiveOrgContext is distinct from invalid-credential failures: the
	// token is valid but carries no organization context yet.
	NoActiveOrgContext = failed(4010, "No active organization context, switch into an organization first")

	// Unauthorized 401
	NotAuthenticated     = failed(4401, "Not authenticated")
	AuthenticationFailed = failed(4402, "Authentication failed")
	InvalidToken         = failed(4405, "Invalid token")
	TokenBeEmpty         = failed(4406, "Token cannot be empty")
	TokenExpired         = failed(4407, "Token is expired")
	TokenFormatIncorrect = failed(4408, "Token format is incorrect")
	InvalidAPIKey        = failed(4409, "Invalid API key")
	APIKeyExpired        = failed(4410, "API key is expired")

	// Forbidden 403
	Forbidden        = failed(4030, "Forbidden")
	PermissionDenied = failed(4031, "Permission denied")
	NotAMember       = failed(4032, "Not a member of this organization")

	UserNotExist          = failed(4041, "User does not exist")
	UserAlreadyExist      = failed(4042, "User already exists")
	UserIncorrectPassword = failed(4043, "User incorrect password")
)

var (
	Success = success(200, "Request Success")
)

// statusOf maps a business code to the HTTP status it rides on. Tenancy
// failures must surface with real transport statuses: a cross-tenant id is a
// 404 and never a 403.
func statusOf(code int) int {
	switch code {
	case Success.Code:
		return gohttp.StatusOK
	case NotFound.Code, UserNotExist.Code:
		return gohttp.StatusNotFound
	case Forbidden.Code, PermissionDenied.Code, NotAMember.Code:
		return gohttp.StatusForbidden
	case NotAuthenticated.Code, AuthenticationFailed.Code, InvalidToken.Code,
		TokenBeEmpty.Code, TokenExpired.Code, TokenFormatIncorrect.Code,
		InvalidAPIKey.Code, APIKeyExpired.Code, UserIncorrectPassword.Code:
		return gohttp.StatusUnauthorized
	case BadRequest.Code, InvalidState.Code, NoActiveOrgContext.Code,
		UserAlreadyExist.Code, RequestParameterParsingFailed.Code:
		return gohttp.StatusBadRequest
	default:
		return gohttp.StatusInternalServerError
	}
}

func failed(code int, msg string) *Response {
	return &Response{
		Code:   code,
		Msg:    msg,
		Detail: nil,
	}
}

func success(code int, msg string) *Response {
	return &Response{
		Code:   code,
		Msg:    msg,
		Detail: nil,
	}
}
