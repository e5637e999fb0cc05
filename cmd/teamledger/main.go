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

package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/sunny-dhyana/teamledger-new/internal/engine/authz"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/conf"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/repo"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/router"
	"github.com/sunny-dhyana/teamledger-new/internal/engine/service"
	"github.com/sunny-dhyana/teamledger-new/pkg/cache"
	"github.com/sunny-dhyana/teamledger-new/pkg/ctx"
	"github.com/sunny-dhyana/teamledger-new/pkg/database"
	"github.com/sunny-dhyana/teamledger-new/pkg/http"
	"github.com/sunny-dhyana/teamledger-new/pkg/log"
	"github.com/sunny-dhyana/teamledger-new/pkg/runner"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "conf", "conf.d/config.toml", "conf file path, e.g. -conf ./conf.d/config.toml")
}

func main() {
	flag.Parse()
	printRunner()

	appConf := conf.NewConf(configFile)

	log.MustInit(&appConf.Log)
	logger := log.GetLogger()

	rdb, err := cache.NewRedis(appConf.Redis)
	if err != nil {
		panic(fmt.Sprintf("redis init failed: %v", err))
	}

	db, err := database.NewDatabase(appConf.Database)
	if err != nil {
		panic(fmt.Sprintf("database init failed: %v", err))
	}

	appCtx := ctx.NewContext(context.Background(), db, rdb, logger)

	repos := repo.NewRepositories(database.NewGormDB(db))
	services := service.NewServices(repos, rdb, appConf.Http.Auth, appConf.Exports.Dir)
	resolver := authz.NewResolver(authz.Config{
		SecretKey:    appConf.Http.Auth.SecretKey,
		AccessExpire: appConf.Http.Auth.AccessExpire,
	}, repos.APIKey)

	route := router.NewRouter(appConf.Http, appCtx, services, resolver)

	shutdown := http.NewHttp(appConf.Http, route.Router())
	shutdown()
}

func printRunner() {
	fmt.Println("runner.pwd:", runner.Pwd)
	fmt.Println("runner.hostname:", runner.Hostname)
}
