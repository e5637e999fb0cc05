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

package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/authz"
	"github.com/sunny-dhyana/teamledger-new/pkg/http"
	"github.com/sunny-dhyana/teamledger-new/pkg/log"
)

// RequestContextKey is the fiber locals key holding the resolved
// *authz.RequestContext.
const RequestContextKey = "requestContext"

// APIKeyHeader carries the API key credential. Bearer tokens travel in the
// standard Authorization header.
const APIKeyHeader = "X-API-Key"

// MembershipChecker re-verifies that a session principal still belongs to
// the organization baked into its token.
type MembershipChecker interface {
	IsMember(ctx context.Context, userId, orgId string) (bool, error)
}

// SessionChecker reports whether a user session is still live, so logout
// invalidates tokens before their TTL.
type SessionChecker interface {
	IsSessionLive(ctx context.Context, userId string) (bool, error)
}

// UsageRecorder counts API-key traffic per organization.
type UsageRecorder interface {
	Increment(ctx context.Context, orgId, metricName string, delta int64) error
}

type AuthConfig struct {
	Resolver    *authz.Resolver
	Memberships MembershipChecker
	Sessions    SessionChecker
	Usage       UsageRecorder
	// APICallMetric is the usage metric incremented for each API-key
	// request. Left empty, no usage is recorded.
	APICallMetric string
}

// AuthContext resolves the request credential into a RequestContext and
// stores it in fiber locals. Both session tokens and API keys are accepted;
// the API key wins when both are present.
func AuthContext(cfg AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := cfg.Resolver.Resolve(c.UserContext(), bearerToken(c), c.Get(APIKeyHeader))
		if err != nil {
			return rejectAuthErr(c, err)
		}

		if principal.IsAPIKey {
			if cfg.Usage != nil && cfg.APICallMetric != "" {
				if err := cfg.Usage.Increment(c.UserContext(), principal.OrgId, cfg.APICallMetric, 1); err != nil {
					log.Warnw("failed to record api call", "orgId", principal.OrgId, "error", err)
				}
			}
		} else {
			if err := checkSession(c, cfg, principal.UserId); err != nil {
				return err
			}
			// the org claim can outlive the membership; re-verify it
			if cfg.Memberships != nil {
				ok, err := cfg.Memberships.IsMember(c.UserContext(), principal.UserId, principal.OrgId)
				if err != nil {
					log.Errorw("membership check failed", "userId", principal.UserId, "orgId", principal.OrgId, "error", err)
					return http.WithRepErrMsg(c, http.InternalError.Code, http.InternalError.Msg, c.Path())
				}
				if !ok {
					return http.WithRepErrMsg(c, http.NotAMember.Code, http.NotAMember.Msg, c.Path())
				}
			}
		}

		c.Locals(RequestContextKey, authz.NewRequestContext(principal))
		return c.Next()
	}
}

// SessionContext resolves a session token without requiring an organization
// claim. API keys are rejected: the guarded endpoints manage accounts and
// memberships, which machine credentials must never touch.
func SessionContext(cfg AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(APIKeyHeader) != "" {
			return http.WithRepErrMsg(c, http.Forbidden.Code, "session authentication required", c.Path())
		}

		principal, err := cfg.Resolver.ResolveUser(bearerToken(c))
		if err != nil {
			return rejectAuthErr(c, err)
		}
		if err := checkSession(c, cfg, principal.UserId); err != nil {
			return err
		}

		c.Locals(RequestContextKey, authz.NewRequestContext(principal))
		return c.Next()
	}
}

// GetRequestContext returns the RequestContext stored by the auth
// middleware, or nil on unauthenticated routes.
func GetRequestContext(c *fiber.Ctx) *authz.RequestContext {
	rc, _ := c.Locals(RequestContextKey).(*authz.RequestContext)
	return rc
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

func checkSession(c *fiber.Ctx, cfg AuthConfig, userId string) error {
	if cfg.Sessions == nil {
		return nil
	}
	live, err := cfg.Sessions.IsSessionLive(c.UserContext(), userId)
	if err != nil {
		log.Errorw("session check failed", "userId", userId, "error", err)
		return http.WithRepErrMsg(c, http.InternalError.Code, http.InternalError.Msg, c.Path())
	}
	if !live {
		return http.WithRepErrMsg(c, http.TokenExpired.Code, http.TokenExpired.Msg, c.Path())
	}
	return nil
}

func rejectAuthErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, authz.ErrNotAuthenticated):
		return http.WithRepErrMsg(c, http.NotAuthenticated.Code, http.NotAuthenticated.Msg, c.Path())
	case errors.Is(err, authz.ErrNoActiveOrg):
		return http.WithRepErrMsg(c, http.NoActiveOrgContext.Code, http.NoActiveOrgContext.Msg, c.Path())
	case errors.Is(err, authz.ErrInvalidCredential):
		return http.WithRepErrMsg(c, http.AuthenticationFailed.Code, http.AuthenticationFailed.Msg, c.Path())
	default:
		log.Errorw("credential resolution failed", "error", err)
		return http.WithRepErrMsg(c, http.InternalError.Code, http.InternalError.Msg, c.Path())
	}
}
