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

package consts

const (
	// SessionKey prefixes the redis key that marks a user session as live.
	// Logout deletes the key; the auth middleware treats a missing key as a
	// revoked session even when the token itself is still within its TTL.
	SessionKey = "teamledger:session:"

	// API key secrets are prefixed so leaked keys are recognizable in logs
	// and secret scanners.
	APIKeySecretPrefix = "tl_"

	// TokenType is the scheme reported alongside minted access tokens.
	TokenType = "Bearer"
)
