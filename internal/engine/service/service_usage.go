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
	"context"
	"fmt"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/repo"
)

type UsageService struct {
	usageRepo repo.IUsageRepository
}

func NewUsageService(usageRepo repo.IUsageRepository) *UsageService {
	return &UsageService{usageRepo: usageRepo}
}

func (us *UsageService) Increment(ctx context.Context, orgId, metricName string, delta int64) error {
	return us.usageRepo.IncrementMetric(ctx, orgId, metricName, delta)
}

func (us *UsageService) ListMetrics(ctx context.Context, orgId string) ([]*model.UsageMetric, error) {
	metrics, err := us.usageRepo.ListMetricsByOrg(ctx, orgId)
	if err != nil {
		return nil, fmt.Errorf("failed to list usage metrics: %w", err)
	}
	return metrics, nil
}
