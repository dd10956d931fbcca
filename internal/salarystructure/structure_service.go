package salarystructure

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	structureerrors "go-payroll/internal/salarystructure/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const cacheTTL = 10 * time.Minute

//go:generate mockgen -source=structure_service.go -destination=mock/structure_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateSalaryStructureRequest) (SalaryStructureResponse, error)
	GetAll(ctx context.Context, companyID string) ([]SalaryStructureResponse, error)
	GetByID(ctx context.Context, companyID, id string) (SalaryStructureResponse, error)
	// GetEntity returns the full structure for computation. Reads go through
	// the redis cache with singleflight collapse, so a payroll run over
	// hundreds of employees sharing a structure hits the database once.
	GetEntity(ctx context.Context, companyID, id string) (*SalaryStructure, error)
	Update(ctx context.Context, companyID, id string, req UpdateSalaryStructureRequest) (SalaryStructureResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db   *gorm.DB
	repo Repository
	rdb  *redis.Client
	sf   singleflight.Group
}

func NewService(db *gorm.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func NewServiceWithCache(db *gorm.DB, repo Repository, rdb *redis.Client) Service {
	return &service{db: db, repo: repo, rdb: rdb}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateSalaryStructureRequest,
) (SalaryStructureResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SalaryStructureResponse{}, structureerrors.ErrStructureNotFound
	}

	from, to, err := parseWindow(req.EffectiveFrom, req.EffectiveTo)
	if err != nil {
		return SalaryStructureResponse{}, err
	}

	if err := validateRates(req.PFEmployeeRate, req.PFEmployerRate, req.ESIEmployeeRate, req.ESIEmployerRate); err != nil {
		return SalaryStructureResponse{}, err
	}

	structureID := uuid.New()
	components := buildComponents(companyUUID, structureID, req.Components)
	if err := ValidateComponents(components); err != nil {
		return SalaryStructureResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return SalaryStructureResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlappingWindow(ctx, companyID, strings.ToUpper(req.Code), from, to, nil)
	if err != nil {
		return SalaryStructureResponse{}, err
	}
	if overlap {
		return SalaryStructureResponse{}, structureerrors.ErrEffectiveWindowOverlap
	}

	structure := &SalaryStructure{
		ID:                 structureID,
		CompanyID:          companyUUID,
		Code:               strings.ToUpper(req.Code),
		Name:               req.Name,
		EffectiveFrom:      from,
		EffectiveTo:        to,
		PFApplicable:       req.PFApplicable,
		ESIApplicable:      req.ESIApplicable,
		GratuityApplicable: req.GratuityApplicable,
		PTApplicable:       req.PTApplicable,
		LWFApplicable:      req.LWFApplicable,
		PFEmployeeRate:     req.PFEmployeeRate,
		PFEmployerRate:     req.PFEmployerRate,
		PFCeiling:          toNullDecimal(req.PFCeiling),
		ESIEmployeeRate:    req.ESIEmployeeRate,
		ESIEmployerRate:    req.ESIEmployerRate,
		ESICeiling:         toNullDecimal(req.ESICeiling),
		IsActive:           true,
		Components:         components,
	}

	if err := qtx.Create(ctx, structure); err != nil {
		return SalaryStructureResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return SalaryStructureResponse{}, err
	}

	return mapToResponse(*structure), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
) ([]SalaryStructureResponse, error) {
	structures, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]SalaryStructureResponse, len(structures))
	for i, structure := range structures {
		resp[i] = mapToResponse(structure)
	}
	return resp, nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (SalaryStructureResponse, error) {
	structure, err := s.GetEntity(ctx, companyID, id)
	if err != nil {
		return SalaryStructureResponse{}, err
	}
	return mapToResponse(*structure), nil
}

func (s *service) GetEntity(
	ctx context.Context,
	companyID, id string,
) (*SalaryStructure, error) {
	key := cacheKey(companyID, id)

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var structure SalaryStructure
			if err := json.Unmarshal(raw, &structure); err == nil {
				return &structure, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		structure, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		if s.rdb != nil {
			if raw, err := json.Marshal(structure); err == nil {
				if err := s.rdb.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
					contextutil.GetLogger(ctx, zap.L()).Warn("structure cache set failed", zap.Error(err))
				}
			}
		}
		return structure, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*SalaryStructure), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateSalaryStructureRequest,
) (SalaryStructureResponse, error) {
	from, to, err := parseWindow(req.EffectiveFrom, req.EffectiveTo)
	if err != nil {
		return SalaryStructureResponse{}, err
	}

	if err := validateRates(req.PFEmployeeRate, req.PFEmployerRate, req.ESIEmployeeRate, req.ESIEmployerRate); err != nil {
		return SalaryStructureResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return SalaryStructureResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	structure, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return SalaryStructureResponse{}, mapRepositoryError(err)
	}

	components := buildComponents(structure.CompanyID, structure.ID, req.Components)
	if err := ValidateComponents(components); err != nil {
		return SalaryStructureResponse{}, err
	}

	overlap, err := qtx.HasOverlappingWindow(ctx, companyID, structure.Code, from, to, &id)
	if err != nil {
		return SalaryStructureResponse{}, err
	}
	if overlap {
		return SalaryStructureResponse{}, structureerrors.ErrEffectiveWindowOverlap
	}

	structure.Name = req.Name
	structure.EffectiveFrom = from
	structure.EffectiveTo = to
	structure.PFApplicable = req.PFApplicable
	structure.ESIApplicable = req.ESIApplicable
	structure.GratuityApplicable = req.GratuityApplicable
	structure.PTApplicable = req.PTApplicable
	structure.LWFApplicable = req.LWFApplicable
	structure.PFEmployeeRate = req.PFEmployeeRate
	structure.PFEmployerRate = req.PFEmployerRate
	structure.PFCeiling = toNullDecimal(req.PFCeiling)
	structure.ESIEmployeeRate = req.ESIEmployeeRate
	structure.ESIEmployerRate = req.ESIEmployerRate
	structure.ESICeiling = toNullDecimal(req.ESICeiling)
	if req.IsActive != nil {
		structure.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, structure); err != nil {
		return SalaryStructureResponse{}, mapRepositoryError(err)
	}
	if err := qtx.ReplaceComponents(ctx, companyID, id, components); err != nil {
		return SalaryStructureResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return SalaryStructureResponse{}, err
	}

	s.invalidate(ctx, companyID, id)

	structure.Components = components
	return mapToResponse(*structure), nil
}

func (s *service) Delete(
	ctx context.Context,
	companyID, id string,
) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByIDAndCompany(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	s.invalidate(ctx, companyID, id)
	return nil
}

func (s *service) invalidate(ctx context.Context, companyID, id string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cacheKey(companyID, id)).Err(); err != nil {
		contextutil.GetLogger(ctx, zap.L()).Warn("structure cache invalidation failed",
			zap.String("structure_id", id),
			zap.Error(err),
		)
	}
}

func cacheKey(companyID, id string) string {
	return fmt.Sprintf("salary_structure:%s:%s", companyID, id)
}

func parseWindow(fromStr string, toStr *string) (time.Time, *time.Time, error) {
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return time.Time{}, nil, structureerrors.ErrInvalidDateFormat
	}

	var to *time.Time
	if toStr != nil && *toStr != "" {
		parsed, err := time.Parse("2006-01-02", *toStr)
		if err != nil {
			return time.Time{}, nil, structureerrors.ErrInvalidDateFormat
		}
		if parsed.Before(from) {
			return time.Time{}, nil, structureerrors.ErrInvalidEffectiveWindow
		}
		to = &parsed
	}

	return from, to, nil
}

func validateRates(rates ...decimal.Decimal) error {
	for _, rate := range rates {
		if rate.IsNegative() || rate.GreaterThan(oneHundred) {
			return structureerrors.ErrInvalidRate
		}
	}
	return nil
}

func buildComponents(companyID, structureID uuid.UUID, inputs []ComponentInput) []SalaryComponent {
	components := make([]SalaryComponent, len(inputs))
	for i, in := range inputs {
		active := true
		if in.IsActive != nil {
			active = *in.IsActive
		}
		components[i] = SalaryComponent{
			ID:                 uuid.New(),
			StructureID:        structureID,
			CompanyID:          companyID,
			Code:               strings.ToUpper(in.Code),
			Name:               in.Name,
			Type:               in.Type,
			CalculationType:    in.CalculationType,
			Value:              in.Value,
			Formula:            in.Formula,
			Statutory:          in.Statutory,
			Taxable:            in.Taxable,
			Proratable:         in.Proratable,
			PFApplicable:       in.PFApplicable,
			ESIApplicable:      in.ESIApplicable,
			GratuityApplicable: in.GratuityApplic,
			DisplayOrder:       in.DisplayOrder,
			IsActive:           active,
		}
	}
	return components
}

func toNullDecimal(v *decimal.Decimal) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *v, Valid: true}
}

func mapToResponse(structure SalaryStructure) SalaryStructureResponse {
	resp := SalaryStructureResponse{
		ID:                 structure.ID.String(),
		CompanyID:          structure.CompanyID.String(),
		Code:               structure.Code,
		Name:               structure.Name,
		EffectiveFrom:      structure.EffectiveFrom.Format("2006-01-02"),
		IsActive:           structure.IsActive,
		PFApplicable:       structure.PFApplicable,
		ESIApplicable:      structure.ESIApplicable,
		GratuityApplicable: structure.GratuityApplicable,
		PTApplicable:       structure.PTApplicable,
		LWFApplicable:      structure.LWFApplicable,
		PFEmployeeRate:     structure.PFEmployeeRate,
		PFEmployerRate:     structure.PFEmployerRate,
		ESIEmployeeRate:    structure.ESIEmployeeRate,
		ESIEmployerRate:    structure.ESIEmployerRate,
	}

	if structure.EffectiveTo != nil {
		v := structure.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &v
	}
	if structure.PFCeiling.Valid {
		v := structure.PFCeiling.Decimal
		resp.PFCeiling = &v
	}
	if structure.ESICeiling.Valid {
		v := structure.ESICeiling.Decimal
		resp.ESICeiling = &v
	}

	resp.Components = make([]ComponentResponse, len(structure.Components))
	for i, c := range structure.Components {
		resp.Components[i] = ComponentResponse{
			ID:              c.ID.String(),
			Code:            c.Code,
			Name:            c.Name,
			Type:            c.Type,
			CalculationType: c.CalculationType,
			Value:           c.Value,
			Formula:         c.Formula,
			Statutory:       c.Statutory,
			Taxable:         c.Taxable,
			Proratable:      c.Proratable,
			PFApplicable:    c.PFApplicable,
			ESIApplicable:   c.ESIApplicable,
			GratuityApplic:  c.GratuityApplicable,
			DisplayOrder:    c.DisplayOrder,
			IsActive:        c.IsActive,
		}
	}

	return resp
}
