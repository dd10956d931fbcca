package payroll_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/salarystructure"
	"go-payroll/internal/shared/testutil"
	"go-payroll/internal/statutory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePayrollRepository struct {
	createFn             func(ctx context.Context, p *payroll.Payroll) error
	findAllFn            func(ctx context.Context, companyID string, filter payroll.PayrollQueryFilter) ([]payroll.Payroll, error)
	findFn               func(ctx context.Context, companyID, id string) (*payroll.Payroll, error)
	findForUpdateFn      func(ctx context.Context, companyID, id string) (*payroll.Payroll, error)
	updateFn             func(ctx context.Context, p *payroll.Payroll) error
	deleteFn             func(ctx context.Context, companyID, id string) error
	createSlipsFn        func(ctx context.Context, slips []payroll.SalarySlip) error
	deleteSlipsFn        func(ctx context.Context, companyID, payrollID string) error
	listSlipsFn          func(ctx context.Context, companyID, payrollID string) ([]payroll.SalarySlip, error)
	findSlipFn           func(ctx context.Context, companyID, payrollID, slipID string) (*payroll.SalarySlip, error)
	updateSlipFn         func(ctx context.Context, slip *payroll.SalarySlip) error
	updateSlipStatusesFn func(ctx context.Context, companyID, payrollID string, fromStatuses []string, toStatus string, updates map[string]any) error
}

func (r *fakePayrollRepository) WithTx(*gorm.DB) payroll.Repository { return r }

func (r *fakePayrollRepository) Create(ctx context.Context, p *payroll.Payroll) error {
	if r.createFn != nil {
		return r.createFn(ctx, p)
	}
	return nil
}

func (r *fakePayrollRepository) FindAllByCompany(ctx context.Context, companyID string, filter payroll.PayrollQueryFilter) ([]payroll.Payroll, error) {
	if r.findAllFn != nil {
		return r.findAllFn(ctx, companyID, filter)
	}
	return nil, nil
}

func (r *fakePayrollRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*payroll.Payroll, error) {
	if r.findFn != nil {
		return r.findFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePayrollRepository) FindByIDAndCompanyForUpdate(ctx context.Context, companyID, id string) (*payroll.Payroll, error) {
	if r.findForUpdateFn != nil {
		return r.findForUpdateFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePayrollRepository) Update(ctx context.Context, p *payroll.Payroll) error {
	if r.updateFn != nil {
		return r.updateFn(ctx, p)
	}
	return nil
}

func (r *fakePayrollRepository) Delete(ctx context.Context, companyID, id string) error {
	if r.deleteFn != nil {
		return r.deleteFn(ctx, companyID, id)
	}
	return nil
}

func (r *fakePayrollRepository) CreateSlips(ctx context.Context, slips []payroll.SalarySlip) error {
	if r.createSlipsFn != nil {
		return r.createSlipsFn(ctx, slips)
	}
	return nil
}

func (r *fakePayrollRepository) DeleteSlipsByPayroll(ctx context.Context, companyID, payrollID string) error {
	if r.deleteSlipsFn != nil {
		return r.deleteSlipsFn(ctx, companyID, payrollID)
	}
	return nil
}

func (r *fakePayrollRepository) ListSlipsByPayroll(ctx context.Context, companyID, payrollID string) ([]payroll.SalarySlip, error) {
	if r.listSlipsFn != nil {
		return r.listSlipsFn(ctx, companyID, payrollID)
	}
	return nil, nil
}

func (r *fakePayrollRepository) FindSlipByID(ctx context.Context, companyID, payrollID, slipID string) (*payroll.SalarySlip, error) {
	if r.findSlipFn != nil {
		return r.findSlipFn(ctx, companyID, payrollID, slipID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePayrollRepository) UpdateSlip(ctx context.Context, slip *payroll.SalarySlip) error {
	if r.updateSlipFn != nil {
		return r.updateSlipFn(ctx, slip)
	}
	return nil
}

func (r *fakePayrollRepository) UpdateSlipStatuses(ctx context.Context, companyID, payrollID string, fromStatuses []string, toStatus string, updates map[string]any) error {
	if r.updateSlipStatusesFn != nil {
		return r.updateSlipStatusesFn(ctx, companyID, payrollID, fromStatuses, toStatus, updates)
	}
	return nil
}

type fakeStructureService struct {
	getEntityFn func(ctx context.Context, companyID, id string) (*salarystructure.SalaryStructure, error)
}

func (s *fakeStructureService) Create(context.Context, string, salarystructure.CreateSalaryStructureRequest) (salarystructure.SalaryStructureResponse, error) {
	return salarystructure.SalaryStructureResponse{}, nil
}

func (s *fakeStructureService) GetAll(context.Context, string) ([]salarystructure.SalaryStructureResponse, error) {
	return nil, nil
}

func (s *fakeStructureService) GetByID(context.Context, string, string) (salarystructure.SalaryStructureResponse, error) {
	return salarystructure.SalaryStructureResponse{}, nil
}

func (s *fakeStructureService) GetEntity(ctx context.Context, companyID, id string) (*salarystructure.SalaryStructure, error) {
	if s.getEntityFn != nil {
		return s.getEntityFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStructureService) Update(context.Context, string, string, salarystructure.UpdateSalaryStructureRequest) (salarystructure.SalaryStructureResponse, error) {
	return salarystructure.SalaryStructureResponse{}, nil
}

func (s *fakeStructureService) Delete(context.Context, string, string) error { return nil }

type fakeDirectory struct {
	activeFn func(ctx context.Context, companyID string, departments, excludeIDs []string) ([]employee.Employee, error)
}

func (d *fakeDirectory) ActiveEmployees(ctx context.Context, companyID string, departments, excludeIDs []string) ([]employee.Employee, error) {
	if d.activeFn != nil {
		return d.activeFn(ctx, companyID, departments, excludeIDs)
	}
	return nil, nil
}

func (d *fakeDirectory) FindByIDAndCompany(context.Context, string, string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}

func (d *fakeDirectory) Upsert(context.Context, *employee.Employee) error { return nil }

type fakeAttendanceProvider struct {
	countsFn func(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time) (attendance.Counts, error)
}

func (p *fakeAttendanceProvider) Counts(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time) (attendance.Counts, error) {
	if p.countsFn != nil {
		return p.countsFn(ctx, companyID, employeeID, periodStart, periodEnd)
	}
	return attendance.Counts{WorkingDays: 25, PresentDays: 25}, nil
}

type fakeNumberingService struct {
	nextFn func(ctx context.Context, companyID, series string, year int) (string, error)
	issued []string
}

func (n *fakeNumberingService) Next(ctx context.Context, companyID, series string, year int) (string, error) {
	if n.nextFn != nil {
		return n.nextFn(ctx, companyID, series, year)
	}
	number := fmt.Sprintf("%s-%d-%06d", series, year, len(n.issued)+1)
	n.issued = append(n.issued, number)
	return number, nil
}

type fakeOutboxRepository struct {
	created  []kafka.OutboxEvent
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (o *fakeOutboxRepository) WithTx(*gorm.DB) kafka.OutboxRepository { return o }

func (o *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if o.createFn != nil {
		return o.createFn(ctx, event)
	}
	o.created = append(o.created, event)
	return nil
}

func (o *fakeOutboxRepository) ListPending(context.Context, int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (o *fakeOutboxRepository) MarkSent(context.Context, string) error { return nil }

func (o *fakeOutboxRepository) MarkFailed(context.Context, string, string) error { return nil }

type serviceFixture struct {
	mdb        *testutil.MockDB
	repo       *fakePayrollRepository
	structures *fakeStructureService
	directory  *fakeDirectory
	attendance *fakeAttendanceProvider
	numbers    *fakeNumberingService
	outbox     *fakeOutboxRepository
	service    payroll.Service
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	f := &serviceFixture{
		mdb:        testutil.NewMockDB(t),
		repo:       &fakePayrollRepository{},
		structures: &fakeStructureService{},
		directory:  &fakeDirectory{},
		attendance: &fakeAttendanceProvider{},
		numbers:    &fakeNumberingService{},
		outbox:     &fakeOutboxRepository{},
	}
	t.Cleanup(func() { f.mdb.Close() })

	f.service = payroll.NewService(
		f.mdb.DB,
		f.repo,
		f.structures,
		f.directory,
		f.attendance,
		f.numbers,
		payroll.NewGenerator(statutory.NewZeroTaxPolicy()),
		f.outbox,
	)
	return f
}

func (f *serviceFixture) expectTx(commit bool) {
	f.mdb.Mock.ExpectBegin()
	if commit {
		f.mdb.Mock.ExpectCommit()
	} else {
		f.mdb.Mock.ExpectRollback()
	}
}

func validCreateRequest() payroll.CreatePayrollRequest {
	return payroll.CreatePayrollRequest{
		Period:      payroll.PeriodMonthly,
		Month:       3,
		Year:        2026,
		StartDate:   "2026-03-01",
		EndDate:     "2026-03-31",
		PaymentDate: "2026-04-01",
	}
}

func TestCreate_Success(t *testing.T) {
	f := newServiceFixture(t)
	companyID := uuid.New().String()
	actorID := uuid.New().String()

	var created *payroll.Payroll
	f.repo.createFn = func(_ context.Context, p *payroll.Payroll) error {
		created = p
		return nil
	}

	resp, err := f.service.Create(context.Background(), companyID, actorID, validCreateRequest())
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, payroll.StatusDraft, created.Status)
	assert.Equal(t, "PAY-2026-000001", resp.PayrollNumber)
	assert.Equal(t, companyID, resp.CompanyID)
	assert.Equal(t, "2026-03-01", resp.StartDate)
	assert.Equal(t, 3, resp.Month)
}

func TestCreate_InvalidInput(t *testing.T) {
	f := newServiceFixture(t)
	companyID := uuid.New().String()
	actorID := uuid.New().String()

	_, err := f.service.Create(context.Background(), "not-a-uuid", actorID, validCreateRequest())
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidCompanyID)

	_, err = f.service.Create(context.Background(), companyID, "not-a-uuid", validCreateRequest())
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidActorID)

	req := validCreateRequest()
	req.StartDate = "03/01/2026"
	_, err = f.service.Create(context.Background(), companyID, actorID, req)
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidDateFormat)

	req = validCreateRequest()
	req.StartDate = "2026-03-31"
	req.EndDate = "2026-03-01"
	_, err = f.service.Create(context.Background(), companyID, actorID, req)
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriodRange)
}

func TestProcess_OnlyDraft(t *testing.T) {
	f := newServiceFixture(t)
	companyID := uuid.New()
	run := testRun(companyID)
	run.Status = payroll.StatusApproved

	f.repo.findForUpdateFn = func(context.Context, string, string) (*payroll.Payroll, error) {
		return run, nil
	}

	f.expectTx(false)
	_, err := f.service.Process(context.Background(), companyID.String(), run.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, payrollerrors.ErrProcessOnlyDraft)
	f.mdb.ExpectationsWereMet(t)
}

func TestProcess_NoEligibleEmployees(t *testing.T) {
	f := newServiceFixture(t)
	companyID := uuid.New()
	run := testRun(companyID)

	f.repo.findForUpdateFn = func(context.Context, string, string) (*payroll.Payroll, error) {
		return run, nil
	}
	f.directory.activeFn = func(context.Context, string, []string, []string) ([]employee.Employee, error) {
		return nil, nil
	}

	f.expectTx(false)
	_, err := f.service.Process(context.Background(), companyID.String(), run.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, payrollerrors.ErrNoEligibleEmployees)
	f.mdb.ExpectationsWereMet(t)
}

func TestProcess_EmployeeWithoutStructureRollsBack(t *testing.T) {
	f := newServiceFixture(t)
	companyID := uuid.New()
	run := testRun(companyID)
	emp := testEmployee(companyID, nil)

	f.repo.findForUpdateFn = func(context.Context, string, string) (*payroll.Payroll, error) {
		return run, nil
	}
	f.directory.activeFn = func(context.Context, string, []string, []string) ([]employee.Employee, error) {
		return []employee.Employee{*emp}, nil
	}

	var slipsCreated bool
	f.repo.createSlipsFn = func(context.Context, []payroll.SalarySlip) error {
		slipsCreated = true
		return nil
	}

	f.expectTx(false)
	_, err := f.service.Process(context.Background(), companyID.String(), run.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, payrollerrors.ErrEmployeeMissingStructure)
	assert.False(t, slipsCreated)
	f.mdb.ExpectationsWereMet(t)
}

func TestProcess_StructureNotEffectiveRollsBack(t *testing.T) {
	f := newServiceFixture(t)
	companyID := uuid.New()
	run := testRun(companyID)
	structure := testStructure(companyID)
	structure.EffectiveFrom = time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	emp := testEmployee(companyID, &structure.ID)

	f.repo.findForUpdateFn = func(context.Context, string, string) (*payroll.Payroll, error) {
		return run, nil
	}
	f.directory.activeFn = func(context.Context, string, []string, []string) ([]employee.Employee, error) {
		return []employee.Employee{*emp}, nil
	}
	f.structures.getEntityFn = func(context.Context, string, string) (*salarystructure.SalaryStructure, error) {
		return structure, nil
	}

	f.expectTx(false)
	_, err := f.service.Process(context.Background(), companyID.String(), run.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, payrollerrors.ErrStructureNotEffective)
	f.mdb.ExpectationsWereMet(t)
}

func TestProcess_Success(t *testing.T) {
	f := newServiceFixture(t)
	companyID := uuid.New()
	run := testRun(companyID)
	structure := testStructure(companyID)
	emp := testEmployee(companyID, &structure.ID)

	f.repo.findForUpdateFn = func(context.Context, string, string) (*payroll.Payroll, error) {
		return run, nil
	}
	f.directory.activeFn = func(context.Context, string, []string, []string) ([]employee.Employee, error) {
		return []employee.Employee{*emp}, nil
	}
	f.structures.getEntityFn = func(context.Context, string, string) (*salarystructure.SalaryStructure, error) {
		return structure, nil
	}

	var slipsDeleted bool
	f.repo.deleteSlipsFn = func(context.Context, string, string) error {
		slipsDeleted = true
		return nil
	}

	var createdSlips []payroll.SalarySlip
	f.repo.createSlipsFn = func(_ context.Context, slips []payroll.SalarySlip) error {
		createdSlips = slips
		return nil
	}

	f.expectTx(true)
	resp, err := f.service.Process(context.Background(), companyID.String(), run.ID.String(), uuid.New().String())
	require.NoError(t, err)

	assert.True(t, slipsDeleted)
	require.Len(t, createdSlips, 1)
	assert.Equal(t, "25600.00", createdSlips[0].NetSalary.StringFixed(2))

	assert.Equal(t, payroll.StatusProcessed, resp.Status)
	assert.Equal(t, 1, resp.TotalEmployees)
	assert.Equal(t, 1, resp.ProcessedEmployees)
	assert.Equal(t, "28000.00", resp.TotalGrossSalary.StringFixed(2))
	assert.Equal(t, "2400.00", resp.TotalDeductions.StringFixed(2))
	assert.Equal(t, "25600.00", resp.TotalNetSalary.StringFixed(2))
	assert.Equal(t, "30400.00", resp.TotalCTC.StringFixed(2))
	assert.NotNil(t, resp.ProcessedAt)

	require.Len(t, f.outbox.created, 1)
	assert.Equal(t, events.PayrollProcessedEventType, f.outbox.created[0].EventType)
	assert.Equal(t, events.PayrollLifecycleTopic, f.outbox.created[0].Topic)
	assert.Equal(t, run.ID.String(), f.outbox.created[0].AggregateID)
	f.mdb.ExpectationsWereMet(t)
}

func TestTransitions_WrongStateGuards(t *testing.T) {
	companyID := uuid.New()
	actorID := uuid.New().String()

	cases := []struct {
		name    string
		status  string
		call    func(f *serviceFixture, id string) error
		wantErr error
	}{
		{
			name:   "verify requires processed",
			status: payroll.StatusDraft,
			call: func(f *serviceFixture, id string) error {
				_, err := f.service.Verify(context.Background(), companyID.String(), id, actorID)
				return err
			},
			wantErr: payrollerrors.ErrVerifyOnlyProcessed,
		},
		{
			name:   "approve requires processed or verified",
			status: payroll.StatusDraft,
			call: func(f *serviceFixture, id string) error {
				_, err := f.service.Approve(context.Background(), companyID.String(), id, actorID)
				return err
			},
			wantErr: payrollerrors.ErrApproveOnlyProcessed,
		},
		{
			name:   "post requires approved",
			status: payroll.StatusProcessed,
			call: func(f *serviceFixture, id string) error {
				_, err := f.service.PostToLedger(context.Background(), companyID.String(), id, actorID, payroll.PostToLedgerRequest{})
				return err
			},
			wantErr: payrollerrors.ErrPostOnlyApproved,
		},
		{
			name:   "pay requires posted",
			status: payroll.StatusApproved,
			call: func(f *serviceFixture, id string) error {
				_, err := f.service.MarkPaid(context.Background(), companyID.String(), id, actorID, payroll.MarkPaidRequest{PaymentReference: "UTR-1"})
				return err
			},
			wantErr: payrollerrors.ErrPayOnlyPosted,
		},
		{
			name:   "cancel requires draft",
			status: payroll.StatusProcessed,
			call: func(f *serviceFixture, id string) error {
				_, err := f.service.Cancel(context.Background(), companyID.String(), id)
				return err
			},
			wantErr: payrollerrors.ErrCancelOnlyDraft,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newServiceFixture(t)
			run := testRun(companyID)
			run.Status = tc.status

			f.repo.findForUpdateFn = func(context.Context, string, string) (*payroll.Payroll, error) {
				return run, nil
			}

			f.expectTx(false)
			err := tc.call(f, run.ID.String())
			assert.ErrorIs(t, err, tc.wantErr)
			f.mdb.ExpectationsWereMet(t)
		})
	}
}

func TestVerify_Success(t *testing.T) {
	f := newServiceFixture(t)
	companyID := uuid.New()
	actorID := uuid.New().String()
	run := testRun(companyID)
	run.Status = payroll.StatusProcessed

	f.repo.findForUpdateFn = func(context.Context, string, string) (*payroll.Payroll, error) {
		return run, nil
	}

	f.expectTx(true)
	resp, err := f.service.Verify(context.Background(), companyID.String(), run.ID.String(), actorID)
	require.NoError(t, err)

	assert.Equal(t, payroll.StatusVerified, resp.Status)
	require.NotNil(t, resp.VerifiedBy)
	assert.Equal(t, actorID, *resp.VerifiedBy)
	assert.NotNil(t, resp.VerifiedAt)
	assert.Empty(t, f.outbox.created)
	f.mdb.ExpectationsWereMet(t)
}

func TestApprove_FromVerified(t *testing.T) {
	f := newServiceFixture(t)
	companyID := uuid.New()
	run := testRun(companyID)
	run.Status = payroll.StatusVerified

	f.repo.findForUpdateFn = func(context.Context, string, string) (*payroll.Payroll, error) {
		return run, nil
	}

	f.expectTx(true)
	resp, err := f.service.Approve(context.Background(), companyID.String(), run.ID.String(), uuid.New().String())
	require.NoError(t, err)

	assert.Equal(t, payroll.StatusApproved, resp.Status)
	require.Len(t, f.outbox.created, 1)
	assert.Equal(t, events.PayrollApprovedEventType, f.outbox.created[0].EventType)
	f.mdb.ExpectationsWereMet(t)
}

func TestPostToLedger_IssuesJournalReference(t *testing.T) {
	f := newServiceFixture(t)
	companyID := uuid.New()
	run := testRun(companyID)
	run.Status = payroll.StatusApproved

	f.repo.findForUpdateFn = func(context.Context, string, string) (*payroll.Payroll, error) {
		return run, nil
	}

	f.expectTx(true)
	resp, err := f.service.PostToLedger(context.Background(), companyID.String(), run.ID.String(), uuid.New().String(), payroll.PostToLedgerRequest{})
	require.NoError(t, err)

	assert.Equal(t, payroll.StatusPosted, resp.Status)
	require.NotNil(t, resp.JournalEntryRef)
	assert.Equal(t, "JV-2026-000001", *resp.JournalEntryRef)
	f.mdb.ExpectationsWereMet(t)
}

func TestPostToLedger_KeepsProvidedReference(t *testing.T) {
	f := newServiceFixture(t)
	companyID := uuid.New()
	run := testRun(companyID)
	run.Status = payroll.StatusApproved

	f.repo.findForUpdateFn = func(context.Context, string, string) (*payroll.Payroll, error) {
		return run, nil
	}

	ref := "GL-2026-042"
	f.expectTx(true)
	resp, err := f.service.PostToLedger(context.Background(), companyID.String(), run.ID.String(), uuid.New().String(), payroll.PostToLedgerRequest{JournalEntryRef: &ref})
	require.NoError(t, err)

	require.NotNil(t, resp.JournalEntryRef)
	assert.Equal(t, ref, *resp.JournalEntryRef)
	assert.Empty(t, f.numbers.issued)
	f.mdb.ExpectationsWereMet(t)
}

func TestMarkPaid_MovesSlipsToPaid(t *testing.T) {
	f := newServiceFixture(t)
	companyID := uuid.New()
	run := testRun(companyID)
	run.Status = payroll.StatusPosted

	f.repo.findForUpdateFn = func(context.Context, string, string) (*payroll.Payroll, error) {
		return run, nil
	}

	var movedFrom []string
	var movedTo string
	var updates map[string]any
	f.repo.updateSlipStatusesFn = func(_ context.Context, _, _ string, fromStatuses []string, toStatus string, extra map[string]any) error {
		movedFrom = fromStatuses
		movedTo = toStatus
		updates = extra
		return nil
	}

	f.expectTx(true)
	resp, err := f.service.MarkPaid(context.Background(), companyID.String(), run.ID.String(), uuid.New().String(), payroll.MarkPaidRequest{PaymentReference: "UTR-99881"})
	require.NoError(t, err)

	assert.Equal(t, payroll.StatusPaid, resp.Status)
	require.NotNil(t, resp.PaymentReference)
	assert.Equal(t, "UTR-99881", *resp.PaymentReference)

	assert.ElementsMatch(t, []string{payroll.SlipStatusGenerated, payroll.SlipStatusSent}, movedFrom)
	assert.Equal(t, payroll.SlipStatusPaid, movedTo)
	assert.Equal(t, "UTR-99881", updates["payment_reference"])

	require.Len(t, f.outbox.created, 1)
	assert.Equal(t, events.PayrollPaidEventType, f.outbox.created[0].EventType)
	f.mdb.ExpectationsWereMet(t)
}

func TestDelete_OnlyDraft(t *testing.T) {
	f := newServiceFixture(t)
	companyID := uuid.New()
	run := testRun(companyID)
	run.Status = payroll.StatusProcessed

	f.repo.findForUpdateFn = func(context.Context, string, string) (*payroll.Payroll, error) {
		return run, nil
	}

	f.expectTx(false)
	err := f.service.Delete(context.Background(), companyID.String(), run.ID.String())
	assert.ErrorIs(t, err, payrollerrors.ErrDeleteOnlyDraft)
	f.mdb.ExpectationsWereMet(t)
}

func TestGetPayAdvice(t *testing.T) {
	f := newServiceFixture(t)
	companyID := uuid.New()
	run := testRun(companyID)
	run.Status = payroll.StatusDraft

	f.repo.findFn = func(context.Context, string, string) (*payroll.Payroll, error) {
		return run, nil
	}

	_, err := f.service.GetPayAdvice(context.Background(), companyID.String(), run.ID.String())
	assert.ErrorIs(t, err, payrollerrors.ErrPayAdviceNotReady)

	run.Status = payroll.StatusProcessed
	run.ProcessedEmployees = 12
	run.TotalNetSalary = mustDecimal("307200")

	advice, err := f.service.GetPayAdvice(context.Background(), companyID.String(), run.ID.String())
	require.NoError(t, err)
	assert.Equal(t, run.PayrollNumber, advice.PayrollNumber)
	assert.Equal(t, 12, advice.TotalEmployees)
	assert.Equal(t, "307200.00", advice.TotalAmount.StringFixed(2))
	assert.Equal(t, "2026-04-01", advice.PaymentDate)
}

func TestSendSlips(t *testing.T) {
	f := newServiceFixture(t)
	companyID := uuid.New()
	run := testRun(companyID)
	run.Status = payroll.StatusProcessed

	f.repo.findFn = func(context.Context, string, string) (*payroll.Payroll, error) {
		return run, nil
	}

	err := f.service.SendSlips(context.Background(), companyID.String(), run.ID.String())
	assert.ErrorIs(t, err, payrollerrors.ErrSendSlipsOnlyApproved)

	run.Status = payroll.StatusApproved

	var movedFrom []string
	var movedTo string
	f.repo.updateSlipStatusesFn = func(_ context.Context, _, _ string, fromStatuses []string, toStatus string, _ map[string]any) error {
		movedFrom = fromStatuses
		movedTo = toStatus
		return nil
	}

	err = f.service.SendSlips(context.Background(), companyID.String(), run.ID.String())
	require.NoError(t, err)
	assert.Equal(t, []string{payroll.SlipStatusGenerated}, movedFrom)
	assert.Equal(t, payroll.SlipStatusSent, movedTo)
}

func TestHoldSlip(t *testing.T) {
	f := newServiceFixture(t)
	companyID := uuid.New()
	run := testRun(companyID)

	slip := &payroll.SalarySlip{
		ID:         uuid.New(),
		CompanyID:  companyID,
		PayrollID:  run.ID,
		EmployeeID: uuid.New(),
		Status:     payroll.SlipStatusGenerated,
	}

	f.repo.findSlipFn = func(context.Context, string, string, string) (*payroll.SalarySlip, error) {
		return slip, nil
	}

	var updated *payroll.SalarySlip
	f.repo.updateSlipFn = func(_ context.Context, s *payroll.SalarySlip) error {
		updated = s
		return nil
	}

	resp, err := f.service.HoldSlip(context.Background(), companyID.String(), run.ID.String(), slip.ID.String())
	require.NoError(t, err)
	assert.Equal(t, payroll.SlipStatusOnHold, resp.Status)
	require.NotNil(t, updated)
	assert.Equal(t, payroll.SlipStatusOnHold, updated.Status)
}

func TestCancelSlip_OnlyGenerated(t *testing.T) {
	f := newServiceFixture(t)
	companyID := uuid.New()
	run := testRun(companyID)

	slip := &payroll.SalarySlip{
		ID:        uuid.New(),
		CompanyID: companyID,
		PayrollID: run.ID,
		Status:    payroll.SlipStatusPaid,
	}

	f.repo.findSlipFn = func(context.Context, string, string, string) (*payroll.SalarySlip, error) {
		return slip, nil
	}

	_, err := f.service.CancelSlip(context.Background(), companyID.String(), run.ID.String(), slip.ID.String())
	assert.ErrorIs(t, err, payrollerrors.ErrSlipNotGenerated)
}

func TestGetSlip_NotFound(t *testing.T) {
	f := newServiceFixture(t)
	companyID := uuid.New()

	_, err := f.service.GetSlip(context.Background(), companyID.String(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, payrollerrors.ErrSlipNotFound)
}
