package consumer

import (
	"context"
	"encoding/json"

	"go-payroll/internal/employee"
	"go-payroll/internal/events"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ConsumeEmployeeLifecycle keeps the local employee directory in sync with
// the HR system of record. Malformed events are committed and skipped;
// transient upsert failures leave the offset uncommitted so the event is
// redelivered.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	directory employee.Directory,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeUpsertedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		emp, err := employeeFromEvent(event)
		if err != nil {
			log.Error("invalid employee lifecycle event, skipping",
				zap.String("employee_id", event.EmployeeID),
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := directory.Upsert(ctx, emp); err != nil {
			log.Error("upsert employee directory row failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("employee directory row synced",
			zap.String("employee_id", event.EmployeeID),
			zap.String("company_id", event.CompanyID),
			zap.String("event_type", event.EventType),
		)
	}
}

func employeeFromEvent(event events.EmployeeUpsertedEvent) (*employee.Employee, error) {
	id, err := uuid.Parse(event.EmployeeID)
	if err != nil {
		return nil, err
	}
	companyID, err := uuid.Parse(event.CompanyID)
	if err != nil {
		return nil, err
	}

	basic, err := decimal.NewFromString(event.BasicSalary)
	if err != nil {
		return nil, err
	}
	gross, err := decimal.NewFromString(event.GrossSalary)
	if err != nil {
		return nil, err
	}
	ctc, err := decimal.NewFromString(event.CTC)
	if err != nil {
		return nil, err
	}

	var structureID *uuid.UUID
	if event.SalaryStructureID != nil && *event.SalaryStructureID != "" {
		parsed, err := uuid.Parse(*event.SalaryStructureID)
		if err != nil {
			return nil, err
		}
		structureID = &parsed
	}

	return &employee.Employee{
		ID:                id,
		CompanyID:         companyID,
		Code:              event.Code,
		FullName:          event.FullName,
		Designation:       event.Designation,
		Department:        event.Department,
		BankAccount:       event.BankAccount,
		PANNumber:         event.PANNumber,
		PFNumber:          event.PFNumber,
		ESINumber:         event.ESINumber,
		BasicSalary:       basic,
		GrossSalary:       gross,
		CTC:               ctc,
		SalaryStructureID: structureID,
		IsActive:          event.IsActive,
	}, nil
}
