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
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/model"
	"github.com/sunny-dhyana/teamledger-new/pkg/database"
)

type IUsageRepository interface {
	IncrementMetric(ctx context.Context, orgId, metricName string, delta int64) error
	ListMetricsByOrg(ctx context.Context, orgId string) ([]*model.UsageMetric, error)
}

type UsageRepo struct {
	database.IDatabase
	metricModel *model.UsageMetric
}

func NewUsageRepo(db database.IDatabase) IUsageRepository {
	return &UsageRepo{IDatabase: db, metricModel: &model.UsageMetric{}}
}

// IncrementMetric upserts on (org_id, metric_name) so concurrent increments
// never lose counts to a read-modify-write race.
func (ur *UsageRepo) IncrementMetric(ctx context.Context, orgId, metricName string, delta int64) error {
	return ur.Database().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "org_id"}, {Name: "metric_name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"value": gorm.Expr("value + ?", delta),
			}),
		}).
		Create(&model.UsageMetric{OrgId: orgId, MetricName: metricName, Value: delta}).Error
}

func (ur *UsageRepo) ListMetricsByOrg(ctx context.Context, orgId string) ([]*model.UsageMetric, error) {
	var metrics []*model.UsageMetric
	err := ur.Database().WithContext(ctx).
		Where("org_id = ?", orgId).
		Order("metric_name ASC").
		Find(&metrics).Error
	return metrics, err
}
