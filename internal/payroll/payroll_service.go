package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/numbering"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/salarystructure"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreatePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context, companyID string, filter GetPayrollsFilterRequest) ([]PayrollResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PayrollResponse, error)

	// Process generates one slip per eligible employee inside a single
	// transaction. A failure for any employee rolls the whole batch back and
	// leaves the payroll in DRAFT. Re-running a draft regenerates from
	// scratch.
	Process(ctx context.Context, companyID, id, actorID string) (PayrollResponse, error)
	Verify(ctx context.Context, companyID, id, actorID string) (PayrollResponse, error)
	Approve(ctx context.Context, companyID, id, actorID string) (PayrollResponse, error)
	PostToLedger(ctx context.Context, companyID, id, actorID string, req PostToLedgerRequest) (PayrollResponse, error)
	MarkPaid(ctx context.Context, companyID, id, actorID string, req MarkPaidRequest) (PayrollResponse, error)
	Cancel(ctx context.Context, companyID, id string) (PayrollResponse, error)
	Delete(ctx context.Context, companyID, id string) error

	GetPayAdvice(ctx context.Context, companyID, id string) (PayAdviceResponse, error)
	ListSlips(ctx context.Context, companyID, id string) ([]SlipResponse, error)
	GetSlip(ctx context.Context, companyID, payrollID, slipID string) (SlipResponse, error)
	SendSlips(ctx context.Context, companyID, id string) error
	HoldSlip(ctx context.Context, companyID, payrollID, slipID string) (SlipResponse, error)
	CancelSlip(ctx context.Context, companyID, payrollID, slipID string) (SlipResponse, error)
}

type service struct {
	db         *gorm.DB
	repo       Repository
	structures salarystructure.Service
	directory  employee.Directory
	attendance attendance.Provider
	numbers    numbering.Service
	generator  *Generator
	outbox     kafka.OutboxRepository
}

func NewService(
	db *gorm.DB,
	repo Repository,
	structures salarystructure.Service,
	directory employee.Directory,
	attendanceProvider attendance.Provider,
	numbers numbering.Service,
	generator *Generator,
	outbox kafka.OutboxRepository,
) Service {
	return &service{
		db:         db,
		repo:       repo,
		structures: structures,
		directory:  directory,
		attendance: attendanceProvider,
		numbers:    numbers,
		generator:  generator,
		outbox:     outbox,
	}
}

func (s *service) Create(
	ctx context.Context,
	companyID, actorID string,
	req CreatePayrollRequest,
) (PayrollResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return PayrollResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return PayrollResponse{}, err
	}
	paymentDate, err := parseDate(req.PaymentDate)
	if err != nil {
		return PayrollResponse{}, err
	}
	if endDate.Before(startDate) {
		return PayrollResponse{}, payrollerrors.ErrInvalidPeriodRange
	}

	// numbering is outside the insert so a failed insert leaves a gap in
	// the series, never a collision
	number, err := s.numbers.Next(ctx, companyID, numbering.SeriesPayroll, req.Year)
	if err != nil {
		return PayrollResponse{}, err
	}

	payroll := &Payroll{
		ID:                  uuid.New(),
		CompanyID:           companyUUID,
		PayrollNumber:       number,
		Period:              req.Period,
		Month:               req.Month,
		Year:                req.Year,
		StartDate:           startDate,
		EndDate:             endDate,
		PaymentDate:         paymentDate,
		IncludedDepartments: req.IncludedDepartments,
		ExcludedEmployees:   req.ExcludedEmployees,
		Status:              StatusDraft,
		CreatedBy:           actorUUID,
	}

	if err := s.repo.Create(ctx, payroll); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	return mapPayrollToResponse(*payroll), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
	filter GetPayrollsFilterRequest,
) ([]PayrollResponse, error) {
	payrolls, err := s.repo.FindAllByCompany(ctx, companyID, PayrollQueryFilter{
		Status: filter.Status,
		Year:   filter.Year,
		Month:  filter.Month,
	})
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]PayrollResponse, len(payrolls))
	for i, p := range payrolls {
		resp[i] = mapPayrollToResponse(p)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PayrollResponse, error) {
	payroll, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	return mapPayrollToResponse(*payroll), nil
}

func (s *service) Process(
	ctx context.Context,
	companyID, id, actorID string,
) (PayrollResponse, error) {
	log := contextutil.GetLogger(ctx, zap.L())

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return PayrollResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// row lock serializes concurrent Process calls for the same payroll
	payroll, err := qtx.FindByIDAndCompanyForUpdate(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if payroll.Status != StatusDraft {
		return PayrollResponse{}, payrollerrors.ErrProcessOnlyDraft
	}

	employees, err := s.directory.ActiveEmployees(ctx, companyID, payroll.IncludedDepartments, payroll.ExcludedEmployees)
	if err != nil {
		log.Error("employee directory lookup failed", zap.Error(err))
		return PayrollResponse{}, payrollerrors.ErrEmployeeDirectoryUnavailable
	}
	if len(employees) == 0 {
		return PayrollResponse{}, payrollerrors.ErrNoEligibleEmployees
	}

	// a re-run of a draft regenerates everything from scratch
	if err := qtx.DeleteSlipsByPayroll(ctx, companyID, id); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	slips := make([]SalarySlip, 0, len(employees))
	totals := struct {
		gross, deductions, net, employer, ctc decimal.Decimal
	}{}

	for i := range employees {
		emp := &employees[i]

		slip, err := s.generateFor(ctx, payroll, emp)
		if err != nil {
			return PayrollResponse{}, err
		}

		slips = append(slips, *slip)
		totals.gross = totals.gross.Add(slip.GrossSalary)
		totals.deductions = totals.deductions.Add(slip.TotalDeductions)
		totals.net = totals.net.Add(slip.NetSalary)
		totals.employer = totals.employer.Add(slip.TotalEmployerContributions)
		totals.ctc = totals.ctc.Add(slip.CTC)
	}

	if err := qtx.CreateSlips(ctx, slips); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	now := time.Now().UTC()
	payroll.TotalEmployees = len(employees)
	payroll.ProcessedEmployees = len(slips)
	payroll.TotalGrossSalary = totals.gross
	payroll.TotalDeductions = totals.deductions
	payroll.TotalNetSalary = totals.net
	payroll.TotalEmployerContributions = totals.employer
	payroll.TotalCTC = totals.ctc
	payroll.Status = StatusProcessed
	payroll.ProcessedAt = &now

	if err := qtx.Update(ctx, payroll); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, payroll, events.PayrollProcessedEventType, actorID); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		log.Error("payroll process commit failed",
			zap.String("payroll_id", id),
			zap.Error(err),
		)
		return PayrollResponse{}, payrollerrors.ErrProcessFailed
	}

	log.Info("payroll processed",
		zap.String("payroll_id", id),
		zap.String("payroll_number", payroll.PayrollNumber),
		zap.Int("slips", len(slips)),
	)

	return mapPayrollToResponse(*payroll), nil
}

// generateFor builds the slip for one employee: structure lookup through
// the cache, real attendance counts, then pure computation.
func (s *service) generateFor(
	ctx context.Context,
	payroll *Payroll,
	emp *employee.Employee,
) (*SalarySlip, error) {
	if emp.SalaryStructureID == nil {
		return nil, payrollerrors.ErrEmployeeMissingStructure
	}

	structure, err := s.structures.GetEntity(ctx, payroll.CompanyID.String(), emp.SalaryStructureID.String())
	if err != nil {
		return nil, err
	}
	if !structure.EffectiveOn(payroll.EndDate) {
		return nil, payrollerrors.ErrStructureNotEffective
	}

	counts, err := s.attendance.Counts(ctx, payroll.CompanyID.String(), emp.ID.String(), payroll.StartDate, payroll.EndDate)
	if err != nil {
		return nil, err
	}

	slipNumber, err := s.numbers.Next(ctx, payroll.CompanyID.String(), numbering.SeriesSlip, payroll.Year)
	if err != nil {
		return nil, err
	}

	return s.generator.Generate(GenerateInput{
		Run:        payroll,
		Employee:   emp,
		Structure:  structure,
		Counts:     counts,
		SlipNumber: slipNumber,
	})
}

func (s *service) Verify(
	ctx context.Context,
	companyID, id, actorID string,
) (PayrollResponse, error) {
	return s.transition(ctx, companyID, id, actorID, func(p *Payroll, actor uuid.UUID, now time.Time) (string, error) {
		if p.Status != StatusProcessed {
			return "", payrollerrors.ErrVerifyOnlyProcessed
		}
		p.Status = StatusVerified
		p.VerifiedBy = &actor
		p.VerifiedAt = &now
		return "", nil
	})
}

func (s *service) Approve(
	ctx context.Context,
	companyID, id, actorID string,
) (PayrollResponse, error) {
	return s.transition(ctx, companyID, id, actorID, func(p *Payroll, actor uuid.UUID, now time.Time) (string, error) {
		if p.Status != StatusProcessed && p.Status != StatusVerified {
			return "", payrollerrors.ErrApproveOnlyProcessed
		}
		p.Status = StatusApproved
		p.ApprovedBy = &actor
		p.ApprovedAt = &now
		return events.PayrollApprovedEventType, nil
	})
}

func (s *service) PostToLedger(
	ctx context.Context,
	companyID, id, actorID string,
	req PostToLedgerRequest,
) (PayrollResponse, error) {
	journalRef := ""
	if req.JournalEntryRef != nil {
		journalRef = *req.JournalEntryRef
	}

	return s.transition(ctx, companyID, id, actorID, func(p *Payroll, actor uuid.UUID, now time.Time) (string, error) {
		if p.Status != StatusApproved {
			return "", payrollerrors.ErrPostOnlyApproved
		}

		ref := journalRef
		if ref == "" {
			issued, err := s.numbers.Next(ctx, companyID, numbering.SeriesJournal, p.Year)
			if err != nil {
				return "", err
			}
			ref = issued
		}

		p.Status = StatusPosted
		p.IsPosted = true
		p.PostedBy = &actor
		p.PostedAt = &now
		p.JournalEntryRef = &ref
		return events.PayrollPostedEventType, nil
	})
}

func (s *service) MarkPaid(
	ctx context.Context,
	companyID, id, actorID string,
	req MarkPaidRequest,
) (PayrollResponse, error) {
	return s.transitionWith(ctx, companyID, id, actorID,
		func(p *Payroll, actor uuid.UUID, now time.Time) (string, error) {
			if p.Status != StatusPosted {
				return "", payrollerrors.ErrPayOnlyPosted
			}
			p.Status = StatusPaid
			p.IsPaid = true
			p.PaidBy = &actor
			p.PaidAt = &now
			p.PaymentReference = &req.PaymentReference
			return events.PayrollPaidEventType, nil
		},
		func(qtx Repository, p *Payroll, now time.Time) error {
			return qtx.UpdateSlipStatuses(ctx, companyID, id,
				[]string{SlipStatusGenerated, SlipStatusSent},
				SlipStatusPaid,
				map[string]any{
					"paid_at":           now,
					"payment_reference": req.PaymentReference,
				},
			)
		},
	)
}

func (s *service) Cancel(ctx context.Context, companyID, id string) (PayrollResponse, error) {
	return s.transition(ctx, companyID, id, uuid.Nil.String(), func(p *Payroll, _ uuid.UUID, _ time.Time) (string, error) {
		if p.Status != StatusDraft {
			return "", payrollerrors.ErrCancelOnlyDraft
		}
		p.Status = StatusCancelled
		return "", nil
	})
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payroll, err := qtx.FindByIDAndCompanyForUpdate(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if payroll.Status != StatusDraft {
		return payrollerrors.ErrDeleteOnlyDraft
	}

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit().Error
}

func (s *service) GetPayAdvice(ctx context.Context, companyID, id string) (PayAdviceResponse, error) {
	payroll, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayAdviceResponse{}, mapRepositoryError(err)
	}

	switch payroll.Status {
	case StatusProcessed, StatusVerified, StatusApproved, StatusPosted, StatusPaid:
	default:
		return PayAdviceResponse{}, payrollerrors.ErrPayAdviceNotReady
	}

	return PayAdviceResponse{
		PayrollNumber:  payroll.PayrollNumber,
		Month:          payroll.Month,
		Year:           payroll.Year,
		TotalEmployees: payroll.ProcessedEmployees,
		TotalAmount:    payroll.TotalNetSalary,
		PaymentDate:    payroll.PaymentDate.Format("2006-01-02"),
	}, nil
}

func (s *service) ListSlips(ctx context.Context, companyID, id string) ([]SlipResponse, error) {
	if _, err := s.repo.FindByIDAndCompany(ctx, companyID, id); err != nil {
		return nil, mapRepositoryError(err)
	}

	slips, err := s.repo.ListSlipsByPayroll(ctx, companyID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]SlipResponse, len(slips))
	for i, slip := range slips {
		resp[i] = mapSlipToResponse(slip)
	}
	return resp, nil
}

func (s *service) GetSlip(ctx context.Context, companyID, payrollID, slipID string) (SlipResponse, error) {
	slip, err := s.repo.FindSlipByID(ctx, companyID, payrollID, slipID)
	if err != nil {
		return SlipResponse{}, mapSlipRepositoryError(err)
	}
	return mapSlipToResponse(*slip), nil
}

func (s *service) SendSlips(ctx context.Context, companyID, id string) error {
	payroll, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	switch payroll.Status {
	case StatusApproved, StatusPosted, StatusPaid:
	default:
		return payrollerrors.ErrSendSlipsOnlyApproved
	}

	return s.repo.UpdateSlipStatuses(ctx, companyID, id,
		[]string{SlipStatusGenerated},
		SlipStatusSent,
		nil,
	)
}

func (s *service) HoldSlip(ctx context.Context, companyID, payrollID, slipID string) (SlipResponse, error) {
	return s.moveSlip(ctx, companyID, payrollID, slipID, SlipStatusOnHold)
}

func (s *service) CancelSlip(ctx context.Context, companyID, payrollID, slipID string) (SlipResponse, error) {
	return s.moveSlip(ctx, companyID, payrollID, slipID, SlipStatusCancelled)
}

func (s *service) moveSlip(
	ctx context.Context,
	companyID, payrollID, slipID, toStatus string,
) (SlipResponse, error) {
	slip, err := s.repo.FindSlipByID(ctx, companyID, payrollID, slipID)
	if err != nil {
		return SlipResponse{}, mapSlipRepositoryError(err)
	}

	if slip.Status != SlipStatusGenerated {
		return SlipResponse{}, payrollerrors.ErrSlipNotGenerated
	}

	slip.Status = toStatus
	if err := s.repo.UpdateSlip(ctx, slip); err != nil {
		return SlipResponse{}, mapSlipRepositoryError(err)
	}

	return mapSlipToResponse(*slip), nil
}

// transition runs a guarded payroll state change in one transaction under a
// row lock and enqueues the lifecycle event the mutation names.
func (s *service) transition(
	ctx context.Context,
	companyID, id, actorID string,
	mutate func(p *Payroll, actor uuid.UUID, now time.Time) (string, error),
) (PayrollResponse, error) {
	return s.transitionWith(ctx, companyID, id, actorID, mutate, nil)
}

func (s *service) transitionWith(
	ctx context.Context,
	companyID, id, actorID string,
	mutate func(p *Payroll, actor uuid.UUID, now time.Time) (string, error),
	extra func(qtx Repository, p *Payroll, now time.Time) error,
) (PayrollResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidActorID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return PayrollResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payroll, err := qtx.FindByIDAndCompanyForUpdate(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	now := time.Now().UTC()
	eventType, err := mutate(payroll, actorUUID, now)
	if err != nil {
		return PayrollResponse{}, err
	}

	if err := qtx.Update(ctx, payroll); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if extra != nil {
		if err := extra(qtx, payroll, now); err != nil {
			return PayrollResponse{}, mapRepositoryError(err)
		}
	}

	if eventType != "" {
		if err := s.enqueueLifecycleEvent(ctx, tx, payroll, eventType, actorID); err != nil {
			return PayrollResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return PayrollResponse{}, err
	}

	return mapPayrollToResponse(*payroll), nil
}

// enqueueLifecycleEvent writes the event into the outbox inside the caller's
// transaction so it is published iff the transition commits.
func (s *service) enqueueLifecycleEvent(
	ctx context.Context,
	tx *gorm.DB,
	payroll *Payroll,
	eventType, actorID string,
) error {
	if s.outbox == nil {
		return nil
	}

	event := events.PayrollLifecycleEvent{
		EventType:     eventType,
		PayrollID:     payroll.ID.String(),
		CompanyID:     payroll.CompanyID.String(),
		PayrollNumber: payroll.PayrollNumber,
		Month:         payroll.Month,
		Year:          payroll.Year,
		TotalNet:      payroll.TotalNetSalary.StringFixed(2),
		ActorID:       actorID,
		OccurredAt:    time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll",
		AggregateID:   payroll.ID.String(),
		EventType:     eventType,
		Topic:         events.PayrollLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapSlipRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrSlipNotFound
	}
	return mapRepositoryError(err)
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	return parsed, nil
}

func mapPayrollToResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:            p.ID.String(),
		CompanyID:     p.CompanyID.String(),
		PayrollNumber: p.PayrollNumber,
		Period:        p.Period,
		Month:         p.Month,
		Year:          p.Year,
		StartDate:     p.StartDate.Format("2006-01-02"),
		EndDate:       p.EndDate.Format("2006-01-02"),
		PaymentDate:   p.PaymentDate.Format("2006-01-02"),

		IncludedDepartments: p.IncludedDepartments,
		ExcludedEmployees:   p.ExcludedEmployees,

		TotalEmployees:             p.TotalEmployees,
		ProcessedEmployees:         p.ProcessedEmployees,
		TotalGrossSalary:           p.TotalGrossSalary,
		TotalDeductions:            p.TotalDeductions,
		TotalNetSalary:             p.TotalNetSalary,
		TotalEmployerContributions: p.TotalEmployerContributions,
		TotalCTC:                   p.TotalCTC,

		Status:    p.Status,
		CreatedBy: p.CreatedBy.String(),

		JournalEntryRef:  p.JournalEntryRef,
		PaymentReference: p.PaymentReference,
	}

	resp.ProcessedAt = formatTimePtr(p.ProcessedAt)
	resp.VerifiedBy = formatUUIDPtr(p.VerifiedBy)
	resp.VerifiedAt = formatTimePtr(p.VerifiedAt)
	resp.ApprovedBy = formatUUIDPtr(p.ApprovedBy)
	resp.ApprovedAt = formatTimePtr(p.ApprovedAt)
	resp.PostedBy = formatUUIDPtr(p.PostedBy)
	resp.PostedAt = formatTimePtr(p.PostedAt)
	resp.PaidBy = formatUUIDPtr(p.PaidBy)
	resp.PaidAt = formatTimePtr(p.PaidAt)

	return resp
}

func mapSlipToResponse(slip SalarySlip) SlipResponse {
	resp := SlipResponse{
		ID:         slip.ID.String(),
		PayrollID:  slip.PayrollID.String(),
		EmployeeID: slip.EmployeeID.String(),
		SlipNumber: slip.SlipNumber,

		EmployeeCode: slip.EmployeeCode,
		EmployeeName: slip.EmployeeName,
		Designation:  slip.Designation,
		Department:   slip.Department,
		BankAccount:  slip.BankAccount,
		PANNumber:    slip.PANNumber,
		PFNumber:     slip.PFNumber,
		ESINumber:    slip.ESINumber,

		Month:       slip.Month,
		Year:        slip.Year,
		PaymentDate: slip.PaymentDate.Format("2006-01-02"),

		WorkingDays:   slip.WorkingDays,
		PresentDays:   slip.PresentDays,
		AbsentDays:    slip.AbsentDays,
		LeaveDays:     slip.LeaveDays,
		PaidDays:      slip.PaidDays,
		LOPDays:       slip.LOPDays,
		OvertimeHours: slip.OvertimeHours,

		GrossSalary:     slip.GrossSalary,
		TotalDeductions: slip.TotalDeductions,

		PFEmployeeContribution:  slip.PFEmployeeContribution,
		PFEmployerContribution:  slip.PFEmployerContribution,
		ESIEmployeeContribution: slip.ESIEmployeeContribution,
		ESIEmployerContribution: slip.ESIEmployerContribution,
		ProfessionalTax:         slip.ProfessionalTax,
		TDS:                     slip.TDS,

		Advance:         slip.Advance,
		Loan:            slip.Loan,
		OtherDeductions: slip.OtherDeductions,
		Reimbursements:  slip.Reimbursements,
		Bonus:           slip.Bonus,
		Incentive:       slip.Incentive,
		Arrears:         slip.Arrears,

		TotalEmployerContributions: slip.TotalEmployerContributions,
		CTC:                        slip.CTC,
		NetSalary:                  slip.NetSalary,

		Status:           slip.Status,
		PaymentReference: slip.PaymentReference,
	}

	resp.PaidAt = formatTimePtr(slip.PaidAt)

	resp.Lines = make([]SlipLineResponse, len(slip.Lines))
	for i, line := range slip.Lines {
		resp.Lines[i] = SlipLineResponse{
			LineType:      line.LineType,
			ComponentCode: line.ComponentCode,
			ComponentName: line.ComponentName,
			Amount:        line.Amount,
			Taxable:       line.Taxable,
			DisplayOrder:  line.DisplayOrder,
		}
	}

	return resp
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

func formatUUIDPtr(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	v := id.String()
	return &v
}
