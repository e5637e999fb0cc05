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

import (
	"github.com/redis/go-redis/v9"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/repo"
	"github.com/sunny-dhyana/teamledger-new/pkg/http"
)

// Services bundles the service layer for router wiring.
type Services struct {
	Auth         *AuthService
	Organization *OrganizationService
	Project      *ProjectService
	Note         *NoteService
	APIKey       *APIKeyService
	Usage        *UsageService
	Job          *JobService
}

func NewServices(repos *repo.Repositories, rdb *redis.Client, auth http.Auth, exportsDir string) *Services {
	return &Services{
		Auth:         NewAuthService(repos.User, repos.Membership, rdb, auth),
		Organization: NewOrganizationService(repos.Organization, repos.Membership, repos.User),
		Project:      NewProjectService(repos.Project, repos.Note, repos.Usage),
		Note:         NewNoteService(repos.Note, repos.Project, repos.Usage),
		APIKey:       NewAPIKeyService(repos.APIKey),
		Usage:        NewUsageService(repos.Usage),
		Job:          NewJobService(repos.Job, repos.Project, repos.Note, repos.Usage, exportsDir),
	}
}
