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

package repo

import (
	"github.com/sunny-dhyana/teamledger-new/pkg/database"
)

// Repositories bundles every repository behind one constructor so wiring in
// main stays a single call.
type Repositories struct {
	User         IUserRepository
	Organization IOrganizationRepository
	Membership   IMembershipRepository
	Project      IProjectRepository
	Note         INoteRepository
	APIKey       IAPIKeyRepository
	Usage        IUsageRepository
	Job          IJobRepository
}

func NewRepositories(db database.IDatabase) *Repositories {
	return &Repositories{
		User:         NewUserRepo(db),
		Organization: NewOrganizationRepo(db),
		Membership:   NewMembershipRepo(db),
		Project:      NewProjectRepo(db),
		Note:         NewNoteRepo(db),
		APIKey:       NewAPIKeyRepo(db),
		Usage:        NewUsageRepo(db),
		Job:          NewJobRepo(db),
	}
}
