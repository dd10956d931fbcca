package app

import (
	"os"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/numbering"
	"go-payroll/internal/payroll"
	"go-payroll/internal/rbac"
	"go-payroll/internal/rbac/infra"
	"go-payroll/internal/salarystructure"
	"go-payroll/internal/statutory"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
) error {
	if err := migrate(db); err != nil {
		return err
	}

	// --- RBAC core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbac.NewRepository(db), enforcer, zap.L())

	// --- Repositories ---
	structureRepo := salarystructure.NewRepository(db)
	payrollRepo := payroll.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)
	directory := employee.NewDirectory(db)
	attendanceProvider := attendance.NewProvider(db)

	// --- Services ---
	var structureService salarystructure.Service
	if rdb != nil {
		structureService = salarystructure.NewServiceWithCache(db, structureRepo, rdb)
	} else {
		structureService = salarystructure.NewService(db, structureRepo)
	}

	numberingService := numbering.NewServiceWithDB(db)

	taxPolicy, err := buildTaxPolicy()
	if err != nil {
		return err
	}

	payrollService := payroll.NewService(
		db,
		payrollRepo,
		structureService,
		directory,
		attendanceProvider,
		numberingService,
		payroll.NewGenerator(taxPolicy),
		outboxRepo,
	)

	// --- Handlers & routes ---
	structureHandler := salarystructure.NewHandler(structureService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)

	api := router.Group("/api/v1")
	{
		salarystructure.RegisterRoutes(api, structureHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
	}

	return nil
}

// buildTaxPolicy loads the PT and TDS slab tables from configuration. Both
// tables empty means neither levy applies.
func buildTaxPolicy() (statutory.TaxPolicy, error) {
	ptBrackets, err := statutory.ParseBrackets(os.Getenv("PT_BRACKETS"))
	if err != nil {
		return nil, err
	}
	tdsBrackets, err := statutory.ParseBrackets(os.Getenv("TDS_BRACKETS"))
	if err != nil {
		return nil, err
	}

	if len(ptBrackets) == 0 && len(tdsBrackets) == 0 {
		return statutory.NewZeroTaxPolicy(), nil
	}
	return statutory.NewBracketTaxPolicy(ptBrackets, tdsBrackets), nil
}

const outboxDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id VARCHAR(64),
	aggregate_type VARCHAR(40) NOT NULL,
	aggregate_id UUID NOT NULL,
	event_type VARCHAR(60) NOT NULL,
	topic VARCHAR(120) NOT NULL,
	payload JSONB NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	error_message VARCHAR(500),
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&salarystructure.SalaryStructure{},
		&salarystructure.SalaryComponent{},
		&employee.Employee{},
		&attendance.Attendance{},
		&payroll.Payroll{},
		&payroll.SalarySlip{},
		&payroll.SlipLine{},
		&numbering.SequenceCounter{},
	); err != nil {
		return err
	}

	return db.Exec(outboxDDL).Error
}
