package app

import (
	"rhplus/internal/activity"
	"rhplus/internal/config"
	"rhplus/internal/contract"
	"rhplus/internal/messaging/kafka"
	"rhplus/internal/payroll"
	"rhplus/internal/payrollitem"
	"rhplus/internal/payrollperiod"
	"rhplus/internal/rbac"
	"rhplus/internal/rbac/infra"
	"rhplus/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	deps *Infra,
	auth gin.HandlerFunc,
	logger *zap.Logger,
) error {
	db, gormDB, rdb := deps.DB, deps.GormDB, deps.Redis

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	itemRepo := payrollitem.NewRepository(gormDB)
	contractRepo := contract.NewRepository(gormDB)
	periodRepo := payrollperiod.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	activityRepo := activity.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBAC.ModelPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	itemService := payrollitem.NewService(db, itemRepo, rdb, logger)
	contractService := contract.NewService(db, contractRepo, counterRepo, logger)
	periodService := payrollperiod.NewService(db, periodRepo, outboxRepo, logger)
	payrollService := payroll.NewService(db, payrollRepo, outboxRepo, deps.Files, logger)
	activityService := activity.NewService(activityRepo, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		payrollitem.RegisterRoutes(api, payrollitem.NewHandler(itemService), rbacService, auth)
		contract.RegisterRoutes(api, contract.NewHandler(contractService), rbacService, auth)
		payrollperiod.RegisterRoutes(api, payrollperiod.NewHandler(periodService), rbacService, auth)
		payroll.RegisterRoutes(api, payroll.NewHandler(payrollService), rbacService, auth, rdb)
		activity.RegisterRoutes(api, activity.NewHandler(activityService), rbacService, auth)
	}

	return nil
}
