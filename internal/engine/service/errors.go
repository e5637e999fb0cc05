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

package service

import "errors"

// Sentinel errors shared by the service layer. Handlers map these onto the
// response codes in pkg/http; services wrap them with fmt.Errorf("%w: ...")
// to carry the violated constraint.
var (
	// ErrNotFound covers both genuinely absent rows and rows that exist in
	// another organization. The two cases must be indistinguishable to the
	// caller.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidState rejects a mutation whose preconditions do not hold,
	// e.g. demoting the last admin or redeeming an unknown invite token.
	ErrInvalidState = errors.New("invalid state")

	// ErrNotAMember is returned when a user acts on an organization they do
	// not belong to.
	ErrNotAMember = errors.New("not a member of this organization")
)
