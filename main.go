package main

import (
	"net/http"
	"rolegate/authority"
	"rolegate/bizerror"
	"rolegate/common"
	"rolegate/domain"
	"rolegate/domain/role"
	"rolegate/domain/scope"
	"rolegate/event"
	"rolegate/infra/tracing"
	"rolegate/persistence"
	"rolegate/servehttp"
	"rolegate/session"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Infoln("service start")

	dbConfig, err := persistence.ParseDatabaseConfigFromEnv()
	if err != nil {
		logrus.Fatalf("parse database config failed %v", err)
	}

	// create database (no conflict)
	if dbConfig.DriverType == "mysql" {
		if err := persistence.PrepareMysqlDatabase(dbConfig.DriverArgs); err != nil {
			logrus.Fatalf("failed to prepare database %v", err)
		}
	}

	// connect database
	ds := &persistence.DataSourceManager{DatabaseConfig: dbConfig}
	if err := ds.Start(); err != nil {
		logrus.Fatalf("database connection failed %v", err)
	}
	defer ds.Stop()
	persistence.ActiveDataSourceManager = ds

	// database migration (race condition)
	err = ds.GormDB().AutoMigrate(&scope.Scope{}, &role.Role{}, &event.AuditRecord{},
		&domain.Project{}, &domain.ProjectRelation{}).Error
	if err != nil {
		logrus.Fatalf("database migration failed %v", err)
	}

	if err := scope.DefaultScopeConfiguration(); err != nil {
		logrus.Fatalf("scope catalog seeding failed %v", err)
	}

	// custom roles take part in scope resolution
	authority.RoleScopesFunc = role.RoleScopes

	closer, err := tracing.Bootstrap(common.GetServiceName())
	if err != nil {
		logrus.Warnf("tracing is disabled: %v", err)
	} else {
		defer closer.Close()
	}

	event.StartAuditPurgeRunner()

	engine := gin.Default()
	engine.Use(bizerror.ErrorHandling(), tracing.TracingIngress())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "rolegate")
	})

	role.RegisterRolesRestAPI(engine, session.SimpleAuthFilter())

	servehttp.StartHTTPServer(engine)
}
